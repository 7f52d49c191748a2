package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// StatusOutput is the health check response.
type StatusOutput struct {
	Body StatusResponse
}

// StatusResponse is the health check response body.
type StatusResponse struct {
	Status string `json:"status" doc:"Service status"`
}

// Handler handles GET /status.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Health check",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *struct{}) (*StatusOutput, error) {
	return &StatusOutput{Body: StatusResponse{Status: "ok"}}, nil
}
