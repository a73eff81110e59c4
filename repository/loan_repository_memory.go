package repository

import (
	"context"
	"sync"
)

// defaultMemoryLimit bounds the in-memory log; older records are dropped first.
const defaultMemoryLimit = 1000

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
type LoanRepositoryMemory struct {
	mu    sync.Mutex
	data  []CalculationRecord
	limit int
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory() *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		data:  []CalculationRecord{},
		limit: defaultMemoryLimit,
	}
}

// Save appends the record to the log.
func (r *LoanRepositoryMemory) Save(
	_ context.Context,
	record CalculationRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if len(r.data) > r.limit {
		r.data = r.data[len(r.data)-r.limit:]
	}
	return nil
}

// List returns the records of the given kind, or all of them when kind is empty.
func (r *LoanRepositoryMemory) List(
	_ context.Context,
	kind string,
) ([]CalculationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]CalculationRecord, 0, len(r.data))
	for _, rec := range r.data {
		if kind == "" || rec.Kind == kind {
			out = append(out, rec)
		}
	}
	return out, nil
}
