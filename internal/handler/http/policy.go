package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aicorp/command-center-go/internal/domain/policy"
	"github.com/aicorp/command-center-go/internal/handler/http/response"
)

type PolicyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type policyHandlerImpl struct {
	policyService policy.Service
}

func NewPolicyHandler(policyService policy.Service) PolicyHandler {
	return &policyHandlerImpl{
		policyService: policyService,
	}
}

// List implements PolicyHandler.
func (h *policyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.policyService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements PolicyHandler.
func (h *policyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.policyService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
