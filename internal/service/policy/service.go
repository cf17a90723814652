package policy

import (
	"context"

	"github.com/aicorp/command-center-go/internal/domain/policy"
)

type PolicyServiceImpl struct {
	repo policy.Repository
}

func NewPolicyService(repo policy.Repository) policy.Service {
	return &PolicyServiceImpl{repo: repo}
}

func (s *PolicyServiceImpl) List(ctx context.Context) (policy.ListDocumentsResponse, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return policy.ListDocumentsResponse{}, err
	}

	resp := policy.ListDocumentsResponse{
		Documents: make([]policy.DocumentResponse, 0, len(docs)),
		Total:     len(docs),
	}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, policy.ToDocumentResponse(doc, false))
	}
	return resp, nil
}

func (s *PolicyServiceImpl) Get(ctx context.Context, id string) (policy.DocumentResponse, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return policy.DocumentResponse{}, err
	}
	return policy.ToDocumentResponse(doc, true), nil
}
