package goal

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

// Goal is the API response model for a savings goal.
type Goal struct {
	ID              string `json:"id" doc:"Goal UUID"`
	Name            string `json:"name" doc:"Goal name"`
	TargetAmount    string `json:"targetAmount" doc:"Decimal target"`
	SavedAmount     string `json:"savedAmount" doc:"Decimal saved so far"`
	ProgressPercent string `json:"progressPercent" doc:"Saved over target as a percentage, clamped to [0, 100]"`
	Deadline        string `json:"deadline,omitempty" doc:"RFC 3339 deadline, absent when open-ended"`
}

// Contribution is the API response model for one payment toward a goal.
type Contribution struct {
	ID     string `json:"id" doc:"Contribution UUID"`
	Amount string `json:"amount" doc:"Decimal contribution amount"`
	Date   string `json:"date" doc:"RFC 3339 timestamp the contribution was made"`
	Note   string `json:"note,omitempty" doc:"Free-form note"`
}

func goalFromService(g service.Goal) Goal {
	converted := Goal{
		ID:              g.ID.String(),
		Name:            g.Name,
		TargetAmount:    g.TargetAmount.String(),
		SavedAmount:     g.SavedAmount.String(),
		ProgressPercent: g.ProgressPercent.StringFixed(2),
	}
	if g.Deadline != nil {
		converted.Deadline = g.Deadline.Format(time.RFC3339)
	}
	return converted
}

func parseUserID(raw string) (uuid.UUID, error) {
	userID, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	return userID, nil
}

func serviceError(err error, action string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "goal not found")
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to "+action, err)
	}
}
