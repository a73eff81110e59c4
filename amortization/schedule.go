// Package amortization builds period-by-period repayment schedules.
package amortization

import (
	"fmt"
	"math"

	"loan-calculator/domain"
	"loan-calculator/finance"
)

// Options selects an interest-only opening period and the window of periods
// returned. Zero From and To mean the first and the last period.
type Options struct {
	Deferred int
	From     int
	To       int
}

// Build returns the amortization schedule of terms. Rows of every period are
// computed, since balances depend on earlier periods, but only those inside
// [From, To] are returned. The schedule stops early if the balance is paid
// off before the last period.
func Build(terms domain.LoanTerms, opts Options) (domain.Schedule, error) {
	from, to, err := window(terms, opts)
	if err != nil {
		return domain.Schedule{}, err
	}

	header := domain.ScheduleHeader{
		Principal: terms.Principal,
		Term:      terms.Term,
		Rate:      terms.Rate,
		Deferred:  opts.Deferred,
		From:      from,
		To:        to,
	}

	var rows []domain.AmortizationRow
	if opts.Deferred == 0 {
		header.Payment = finance.Payment(terms.Principal, terms.Term, terms.Rate, 2)
		rows = amortize(terms.Principal, 1, terms.Term, terms.Rate, header.Payment, finance.NoRounding)
	} else {
		p := finance.Deferred(terms.Principal, terms.Term, terms.Rate, opts.Deferred, 2)
		header.DeferredPayment = p.Deferred
		header.Payment = p.Regular
		rows = make([]domain.AmortizationRow, 0, terms.Term)
		for i := 1; i <= opts.Deferred; i++ {
			rows = append(rows, domain.AmortizationRow{
				Period:         i,
				OpeningBalance: terms.Principal,
				Interest:       p.Deferred,
				ClosingBalance: terms.Principal,
			})
		}
		rows = append(rows, amortize(terms.Principal, opts.Deferred+1, terms.Term, terms.Rate, p.Regular, 2)...)
	}

	return domain.Schedule{Header: header, Rows: slice(rows, from, to)}, nil
}

// amortize produces the rows of periods first..last repaying balance with
// payment m. interestDec rounds the interest of each row.
func amortize(balance float64, first, last int, t, m float64, interestDec int) []domain.AmortizationRow {
	rows := make([]domain.AmortizationRow, 0, last-first+1)
	for i := first; balance > 0 && i <= last; i++ {
		interest := finance.Round(balance*t, interestDec)
		principal := finance.Round(m-interest, 2)
		row := domain.AmortizationRow{
			Period:         i,
			OpeningBalance: balance,
			Interest:       interest,
			Principal:      principal,
			ClosingBalance: finance.Round(balance-principal, 2),
		}
		rows = append(rows, row)
		balance = row.ClosingBalance
	}
	return rows
}

func slice(rows []domain.AmortizationRow, from, to int) []domain.AmortizationRow {
	out := make([]domain.AmortizationRow, 0, to-from+1)
	for _, r := range rows {
		if r.Period >= from && r.Period <= to {
			out = append(out, r)
		}
	}
	return out
}

func window(terms domain.LoanTerms, opts Options) (int, int, error) {
	n := terms.Term
	switch {
	case n <= 0:
		return 0, 0, fmt.Errorf("%w: term must be positive, got %d", domain.ErrInvalidArgument, n)
	case math.IsNaN(terms.Principal) || math.IsInf(terms.Principal, 0):
		return 0, 0, fmt.Errorf("%w: principal must be a number", domain.ErrInvalidArgument)
	case math.IsNaN(terms.Rate) || math.IsInf(terms.Rate, 0):
		return 0, 0, fmt.Errorf("%w: rate must be a number", domain.ErrInvalidArgument)
	case opts.Deferred < 0 || opts.Deferred >= n:
		return 0, 0, fmt.Errorf("%w: deferred periods must be in [0, %d), got %d", domain.ErrInvalidArgument, n, opts.Deferred)
	}

	from, to := opts.From, opts.To
	if from == 0 {
		from = 1
	}
	if to == 0 {
		to = n
	}
	if from < 1 || to > n || from > to {
		return 0, 0, fmt.Errorf("%w: period window [%d, %d] outside [1, %d]", domain.ErrInvalidArgument, from, to, n)
	}
	return from, to, nil
}
