package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type monthlyReporter interface {
	Monthly(ctx context.Context, userID uuid.UUID, year int) ([]service.MonthlyPoint, error)
}

type MonthlyHandler struct {
	service monthlyReporter
}

func NewMonthlyHandler(service monthlyReporter) *MonthlyHandler {
	return &MonthlyHandler{service: service}
}

func (h *MonthlyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-monthly",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/monthly",
		Summary:     "Monthly income vs expense",
		Description: "Returns twelve points for the year, zero-filled for months with no records.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

type MonthlyInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	Year   int    `query:"year" required:"true" minimum:"1970" maximum:"9999" doc:"Calendar year"`
}

type MonthlyPoint struct {
	Month   int    `json:"month" doc:"Month number, 1 through 12"`
	Income  string `json:"income" doc:"Decimal income total"`
	Expense string `json:"expense" doc:"Decimal expense total"`
}

type MonthlyOutput struct {
	Body struct {
		Year   int            `json:"year"`
		Points []MonthlyPoint `json:"points"`
	}
}

func (h *MonthlyHandler) handle(ctx context.Context, input *MonthlyInput) (*MonthlyOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	points, err := h.service.Monthly(ctx, userID, input.Year)
	if err != nil {
		return nil, serviceError(err, "compute monthly report")
	}

	output := &MonthlyOutput{}
	output.Body.Year = input.Year
	output.Body.Points = make([]MonthlyPoint, len(points))
	for i, p := range points {
		output.Body.Points[i] = MonthlyPoint{
			Month:   p.Month,
			Income:  p.Income.String(),
			Expense: p.Expense.String(),
		}
	}
	return output, nil
}
