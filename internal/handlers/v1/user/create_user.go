package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type userCreator interface {
	Create(ctx context.Context, name, email string) (uuid.UUID, error)
}

type CreateUserHandler struct {
	service userCreator
}

func NewCreateUserHandler(service userCreator) *CreateUserHandler {
	return &CreateUserHandler{service: service}
}

func (h *CreateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/v1/users",
		Summary:       "Provision a user",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

type CreateUserInput struct {
	Body struct {
		Name  string `json:"name" doc:"Display name"`
		Email string `json:"email" format:"email" doc:"Notification email"`
	}
}

type CreateUserOutput struct {
	Body struct {
		ID string `json:"id" doc:"UUID of the new user"`
	}
}

func (h *CreateUserHandler) handle(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	id, err := h.service.Create(ctx, input.Body.Name, input.Body.Email)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create user", err)
	}

	output := &CreateUserOutput{}
	output.Body.ID = id.String()
	return output, nil
}
