package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/income"
)

// Income represents an income in the service layer.
type Income struct {
	ID        uuid.UUID
	Source    string
	Amount    decimal.Decimal
	Category  string
	Date      time.Time
	Note      string
	CreatedAt time.Time
}

// IncomeService handles income business logic.
type IncomeService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewIncomeService creates a new IncomeService.
func NewIncomeService(store *storage.Storage) *IncomeService {
	return &IncomeService{storage: store, now: time.Now}
}

// Create records an income. A zero date defaults to now.
func (s *IncomeService) Create(ctx context.Context, userID uuid.UUID, in Income) (*Income, error) {
	if in.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	date := in.Date
	if date.IsZero() {
		date = s.now().UTC()
	}

	amount := in.Amount.Abs()
	id, err := s.storage.Incomes.Insert(ctx, &income.IncomeCreate{
		UserID:   userID,
		Source:   in.Source,
		Amount:   amount,
		Category: in.Category,
		Date:     date,
		Note:     in.Note,
	})
	if err != nil {
		return nil, err
	}

	return &Income{
		ID:       id,
		Source:   in.Source,
		Amount:   amount,
		Category: in.Category,
		Date:     date,
		Note:     in.Note,
	}, nil
}

// List returns the owner's incomes, most recent date first.
func (s *IncomeService) List(ctx context.Context, userID uuid.UUID) ([]Income, error) {
	rows, err := s.storage.Incomes.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	incomes := make([]Income, len(rows))
	for i, row := range rows {
		incomes[i] = Income{
			ID:        row.ID,
			Source:    row.Source,
			Amount:    row.Amount,
			Category:  row.Category,
			Date:      row.Date,
			Note:      row.Note,
			CreatedAt: row.CreatedAt,
		}
	}
	return incomes, nil
}

// Update modifies an owned income. A zero date keeps the stored date.
func (s *IncomeService) Update(ctx context.Context, userID, id uuid.UUID, in Income) error {
	if in.Amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	affected, err := s.storage.Incomes.Update(ctx, userID, id, &income.IncomeUpdate{
		Source: in.Source,
		Amount: in.Amount.Abs(),
		Date:   in.Date,
		Note:   in.Note,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an owned income.
func (s *IncomeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.storage.Incomes.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
