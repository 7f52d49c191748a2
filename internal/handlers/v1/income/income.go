package income

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

// Income is the API response model for an income.
type Income struct {
	ID       string `json:"id" doc:"Income UUID"`
	Source   string `json:"source" doc:"Where the money came from"`
	Amount   string `json:"amount" doc:"Decimal amount, always positive"`
	Category string `json:"category" doc:"Category label"`
	Date     string `json:"date" doc:"RFC 3339 timestamp the income was received"`
	Note     string `json:"note" doc:"Free-form note"`
}

func incomeFromService(in service.Income) Income {
	return Income{
		ID:       in.ID.String(),
		Source:   in.Source,
		Amount:   in.Amount.String(),
		Category: in.Category,
		Date:     in.Date.Format(time.RFC3339),
		Note:     in.Note,
	}
}

func parseUserID(raw string) (uuid.UUID, error) {
	userID, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	return userID, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid date, expected RFC 3339", err)
	}
	return date, nil
}

func serviceError(err error, action string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "income not found")
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to "+action, err)
	}
}
