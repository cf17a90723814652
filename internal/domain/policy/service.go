package policy

import "context"

type Service interface {
	List(ctx context.Context) (ListDocumentsResponse, error)
	Get(ctx context.Context, id string) (DocumentResponse, error)
}
