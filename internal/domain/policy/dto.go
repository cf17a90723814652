package policy

import "time"

type DocumentResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Summary   string `json:"summary"`
	Body      string `json:"body,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

// ToDocumentResponse maps a document. The body is included only when full
// is set; list views carry summaries.
func ToDocumentResponse(doc Document, full bool) DocumentResponse {
	resp := DocumentResponse{
		ID:        doc.ID,
		Title:     doc.Title,
		Category:  doc.Category,
		Summary:   doc.Summary,
		UpdatedAt: doc.UpdatedAt.Format(time.RFC3339),
	}
	if full {
		resp.Body = doc.Body
	}
	return resp
}

type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int                `json:"total"`
}
