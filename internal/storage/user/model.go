package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User is the identity a record's owner id points at. Credentials and
// token issuance live outside this service.
type User struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// UserCreate is the input for provisioning a user row.
type UserCreate struct {
	Name  string
	Email string
}

// IUserTable defines the interface for user storage operations.
//
//go:generate mockery --name IUserTable --inpackage
type IUserTable interface {
	Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}
