package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type categoryReporter interface {
	CategoryWise(ctx context.Context, userID uuid.UUID, month string) ([]service.CategorySpend, error)
}

type CategoryHandler struct {
	service categoryReporter
}

func NewCategoryHandler(service categoryReporter) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-category",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/category",
		Summary:     "Per-category spend for a month",
		Description: "Returns expense totals grouped by category for the month, largest first.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

type CategoryInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	Month  string `query:"month" required:"true" doc:"Month key, YYYY-MM"`
}

type CategorySpend struct {
	Category string `json:"category" doc:"Category label"`
	Total    string `json:"total" doc:"Decimal expense total"`
}

type CategoryOutput struct {
	Body struct {
		Month      string          `json:"month"`
		Categories []CategorySpend `json:"categories"`
	}
}

func (h *CategoryHandler) handle(ctx context.Context, input *CategoryInput) (*CategoryOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	spends, err := h.service.CategoryWise(ctx, userID, input.Month)
	if err != nil {
		return nil, serviceError(err, "compute category report")
	}

	output := &CategoryOutput{}
	output.Body.Month = input.Month
	output.Body.Categories = make([]CategorySpend, len(spends))
	for i, s := range spends {
		output.Body.Categories[i] = CategorySpend{Category: s.Category, Total: s.Total.String()}
	}
	return output, nil
}
