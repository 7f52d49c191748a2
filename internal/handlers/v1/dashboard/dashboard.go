package dashboard

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

func parseUserID(raw string) (uuid.UUID, error) {
	userID, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	return userID, nil
}

func serviceError(err error, action string) error {
	if errors.Is(err, service.ErrValidation) {
		return huma.NewError(http.StatusBadRequest, err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, "failed to "+action, err)
}
