package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"loan-calculator/domain"
	"loan-calculator/finance"
	"loan-calculator/logger"
	"loan-calculator/repository"
	"loan-calculator/solver"
)

type LoanService struct {
	repo      repository.LoanRepository
	cache     repository.CacheRepository
	log       *logger.Logger
	cacheTTL  time.Duration
	newton    solver.Newton
	bisection solver.Bisection
	now       func() time.Time
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(repo repository.LoanRepository,
	cache repository.CacheRepository,
	log *logger.Logger,
) *LoanService {
	if log == nil {
		log = logger.Nop()
	}
	return &LoanService{
		repo:      repo,
		cache:     cache,
		log:       log,
		cacheTTL:  DefaultCacheTTL,
		newton:    solver.DefaultNewton(),
		bisection: solver.DefaultBisection(),
		now:       time.Now,
	}
}

// WithCacheTTL sets how long cached schedules are kept.
func (s *LoanService) WithCacheTTL(ttl time.Duration) *LoanService {
	s.cacheTTL = ttl
	return s
}

// CalculateLoan returns the periodic payment of a loan and what it costs
// over its whole term.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {
	if err := checkPrincipal(input.Principal); err != nil {
		return domain.LoanResult{}, err
	}
	if err := checkTerm(input.Term); err != nil {
		return domain.LoanResult{}, err
	}
	if err := checkRate(input.Rate); err != nil {
		return domain.LoanResult{}, err
	}

	principal := input.Principal.Float64()
	payment := finance.Payment(principal, input.Term, input.Rate.Float64(), 2)

	result := domain.LoanResult{
		Payment:       payment,
		TotalPayment:  finance.Round(payment*float64(input.Term), 2),
		TotalInterest: finance.TotalInterest(principal, payment, input.Term, 2),
	}

	s.record(ctx, KindPayment, input, result)
	return result, nil
}

// record stores the calculation in the log. Failures are not critical.
func (s *LoanService) record(ctx context.Context, kind string, input, result any) {
	rec := repository.CalculationRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		Input:     input,
		Result:    result,
		CreatedAt: s.now(),
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		s.log.Warnw("failed to save calculation", "kind", kind, "err", err)
		return
	}
	s.log.Debugw("calculation saved", "kind", kind, "id", rec.ID)
}
