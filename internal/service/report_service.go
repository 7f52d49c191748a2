package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/storage"
)

// Summary is the owner's all-time totals.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// MonthlyPoint is one month of a year's income-vs-expense series.
type MonthlyPoint struct {
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DailyPoint is one day of the last-7-days trend.
type DailyPoint struct {
	Date    string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategorySpend is one category's expense total for a month.
type CategorySpend struct {
	Category string
	Total    decimal.Decimal
}

// ReportService derives dashboard figures from raw records.
type ReportService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store, now: time.Now}
}

// Summary returns the owner's total income, total expense, and balance.
func (s *ReportService) Summary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	totalIncome, err := s.storage.Incomes.SumAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.storage.Expenses.SumAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}, nil
}

// Monthly returns twelve income/expense points for the year, zero-filled
// for months with no records.
func (s *ReportService) Monthly(ctx context.Context, userID uuid.UUID, year int) ([]MonthlyPoint, error) {
	incomes, err := s.storage.Incomes.MonthlyTotals(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	expenses, err := s.storage.Expenses.MonthlyTotals(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	points := make([]MonthlyPoint, 12)
	for m := 1; m <= 12; m++ {
		points[m-1] = MonthlyPoint{
			Month:   m,
			Income:  incomes[m],
			Expense: expenses[m],
		}
	}
	return points, nil
}

// CategoryWise returns per-category expense totals for the month,
// largest first.
func (s *ReportService) CategoryWise(ctx context.Context, userID uuid.UUID, month string) ([]CategorySpend, error) {
	start, end, err := ParseMonthKey(month)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Expenses.CategoryTotalsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	spends := make([]CategorySpend, len(rows))
	for i, row := range rows {
		spends[i] = CategorySpend{Category: row.Category, Total: row.Total}
	}
	return spends, nil
}

// Last7Days returns one zero-filled point per day for today-6 .. today.
func (s *ReportService) Last7Days(ctx context.Context, userID uuid.UUID) ([]DailyPoint, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -6)

	incomes, err := s.storage.Incomes.DailyTotalsSince(ctx, userID, start)
	if err != nil {
		return nil, err
	}
	expenses, err := s.storage.Expenses.DailyTotalsSince(ctx, userID, start)
	if err != nil {
		return nil, err
	}

	points := make([]DailyPoint, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		points[i] = DailyPoint{
			Date:    day,
			Income:  incomes[day],
			Expense: expenses[day],
		}
	}
	return points, nil
}
