package memory

import (
	"context"

	"github.com/aicorp/command-center-go/internal/domain/policy"
)

// PolicyRepository serves the compiled-in policy documents. The set is
// immutable, so no locking is needed.
type PolicyRepository struct {
	documents []policy.Document
}

func NewPolicyRepository(seed []policy.Document) *PolicyRepository {
	return &PolicyRepository{
		documents: append([]policy.Document(nil), seed...),
	}
}

func (r *PolicyRepository) List(ctx context.Context) ([]policy.Document, error) {
	out := make([]policy.Document, len(r.documents))
	copy(out, r.documents)
	return out, nil
}

func (r *PolicyRepository) GetByID(ctx context.Context, id string) (policy.Document, error) {
	for _, doc := range r.documents {
		if doc.ID == id {
			return doc, nil
		}
	}
	return policy.Document{}, policy.ErrDocumentNotFound
}
