package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"loan-calculator/amortization"
	"loan-calculator/domain"
)

// BuildSchedule returns the amortization schedule of a loan. Schedules are
// served from the cache when the same terms were asked for before.
func (s *LoanService) BuildSchedule(
	ctx context.Context,
	input domain.ScheduleInput,
) (domain.Schedule, error) {
	if err := checkPrincipal(input.Principal); err != nil {
		return domain.Schedule{}, err
	}
	if err := checkTerm(input.Term); err != nil {
		return domain.Schedule{}, err
	}
	if err := checkRate(input.Rate); err != nil {
		return domain.Schedule{}, err
	}

	key, err := scheduleKey(input)
	if err != nil {
		return domain.Schedule{}, err
	}
	if cached, ok := s.cache.Get(ctx, key); ok {
		var schedule domain.Schedule
		if err := json.Unmarshal([]byte(cached), &schedule); err == nil {
			s.log.Debugw("schedule cache hit", "key", key)
			return schedule, nil
		}
		s.log.Warnw("discarding unreadable cached schedule", "key", key)
	}

	terms := domain.LoanTerms{
		Principal: input.Principal.Float64(),
		Term:      input.Term,
		Rate:      input.Rate.Float64(),
	}
	schedule, err := amortization.Build(terms, amortization.Options{
		Deferred: input.Deferred,
		From:     input.From,
		To:       input.To,
	})
	if err != nil {
		return domain.Schedule{}, err
	}

	if data, err := json.Marshal(schedule); err == nil {
		if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
			s.log.Warnw("failed to cache schedule", "key", key, "err", err)
		}
	}

	s.record(ctx, KindSchedule, input, schedule.Header)
	return schedule, nil
}

func scheduleKey(input domain.ScheduleInput) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("schedule key: %w", err)
	}
	return fmt.Sprintf("schedule:%016x", xxhash.Sum64(data)), nil
}
