package repository

import (
	"context"
	"time"
)

// CalculationRecord is an entry of the calculation log.
type CalculationRecord struct {
	ID        string
	Kind      string
	Input     any
	Result    any
	CreatedAt time.Time
}

type LoanRepository interface {
	Save(ctx context.Context, record CalculationRecord) error
	List(ctx context.Context, kind string) ([]CalculationRecord, error)
}
