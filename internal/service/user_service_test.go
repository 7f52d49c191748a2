package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/user"
)

func newUserTestService(t *testing.T) (*UserService, *user.MockIUserTable) {
	t.Helper()
	mockUsers := user.NewMockIUserTable(t)
	store := &storage.Storage{Users: mockUsers}
	return NewUserService(store), mockUsers
}

func TestCreateUser_TrimsAndStores(t *testing.T) {
	svc, mockUsers := newUserTestService(t)
	userID := uuid.Must(uuid.NewV4())

	mockUsers.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *user.UserCreate) bool {
		return c.Name == "Priya" && c.Email == "priya@example.com"
	})).Return(userID, nil)

	id, err := svc.Create(context.Background(), "  Priya  ", " priya@example.com ")

	assert.NoError(t, err)
	assert.Equal(t, userID, id)
}

func TestCreateUser_MissingFields(t *testing.T) {
	svc, _ := newUserTestService(t)

	_, err := svc.Create(context.Background(), "", "priya@example.com")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), "Priya", "   ")
	assert.ErrorIs(t, err, ErrValidation)
}
