package income

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type incomeLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]service.Income, error)
}

type ListIncomesHandler struct {
	service incomeLister
}

func NewListIncomesHandler(service incomeLister) *ListIncomesHandler {
	return &ListIncomesHandler{service: service}
}

func (h *ListIncomesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-incomes",
		Method:      http.MethodGet,
		Path:        "/v1/incomes",
		Summary:     "List incomes",
		Description: "Lists the caller's incomes, most recent date first.",
		Tags:        []string{"Incomes"},
	}, h.handle)
}

type ListIncomesInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
}

type ListIncomesOutput struct {
	Body struct {
		Incomes []Income `json:"incomes"`
	}
}

func (h *ListIncomesHandler) handle(ctx context.Context, input *ListIncomesInput) (*ListIncomesOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	incomes, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, serviceError(err, "list incomes")
	}

	output := &ListIncomesOutput{}
	output.Body.Incomes = make([]Income, len(incomes))
	for i, in := range incomes {
		output.Body.Incomes[i] = incomeFromService(in)
	}
	return output, nil
}
