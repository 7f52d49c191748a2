package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type trendReporter interface {
	Last7Days(ctx context.Context, userID uuid.UUID) ([]service.DailyPoint, error)
}

type Last7DaysHandler struct {
	service trendReporter
}

func NewLast7DaysHandler(service trendReporter) *Last7DaysHandler {
	return &Last7DaysHandler{service: service}
}

func (h *Last7DaysHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-last7days",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/last7days",
		Summary:     "Seven-day trend",
		Description: "Returns one income/expense point per day for the last seven days, zero-filled.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

type Last7DaysInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
}

type DailyPoint struct {
	Date    string `json:"date" doc:"Calendar day, YYYY-MM-DD"`
	Income  string `json:"income" doc:"Decimal income total"`
	Expense string `json:"expense" doc:"Decimal expense total"`
}

type Last7DaysOutput struct {
	Body struct {
		Points []DailyPoint `json:"points"`
	}
}

func (h *Last7DaysHandler) handle(ctx context.Context, input *Last7DaysInput) (*Last7DaysOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	points, err := h.service.Last7Days(ctx, userID)
	if err != nil {
		return nil, serviceError(err, "compute seven-day trend")
	}

	output := &Last7DaysOutput{}
	output.Body.Points = make([]DailyPoint, len(points))
	for i, p := range points {
		output.Body.Points[i] = DailyPoint{
			Date:    p.Date,
			Income:  p.Income.String(),
			Expense: p.Expense.String(),
		}
	}
	return output, nil
}
