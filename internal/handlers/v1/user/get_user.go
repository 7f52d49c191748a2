package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type userGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*service.User, error)
}

type GetUserHandler struct {
	service userGetter
}

func NewGetUserHandler(service userGetter) *GetUserHandler {
	return &GetUserHandler{service: service}
}

func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/v1/users/{id}",
		Summary:     "Get a user",
		Tags:        []string{"Users"},
	}, h.handle)
}

type GetUserInput struct {
	ID string `path:"id" format:"uuid" doc:"User UUID"`
}

type GetUserOutput struct {
	Body struct {
		ID        string `json:"id" doc:"User UUID"`
		Name      string `json:"name" doc:"Display name"`
		Email     string `json:"email" doc:"Notification email"`
		CreatedAt string `json:"createdAt" doc:"RFC 3339 creation time"`
	}
}

func (h *GetUserHandler) handle(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user id", err)
	}

	result, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "user not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get user", err)
	}

	output := &GetUserOutput{}
	output.Body.ID = result.ID.String()
	output.Body.Name = result.Name
	output.Body.Email = result.Email
	output.Body.CreatedAt = result.CreatedAt.Format(time.RFC3339)
	return output, nil
}
