package amortization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"loan-calculator/domain"
)

func TestBuildBalanceInvariant(t *testing.T) {
	s, err := Build(domain.LoanTerms{Principal: 10_000, Term: 24, Rate: 0.01}, Options{})
	require.NoError(t, err)
	require.Equal(t, 470.73, s.Header.Payment)
	require.Equal(t, 1, s.Header.From)
	require.Equal(t, 24, s.Header.To)
	require.Len(t, s.Rows, 24)

	for i, r := range s.Rows {
		require.Equal(t, i+1, r.Period)
		require.InDelta(t, r.OpeningBalance-r.Principal, r.ClosingBalance, 1e-9)
		require.InDelta(t, s.Header.Payment, r.Interest+r.Principal, 0.01)
		if i > 0 {
			require.Equal(t, s.Rows[i-1].ClosingBalance, r.OpeningBalance)
		}
	}
	require.InDelta(t, 0, s.Rows[23].ClosingBalance, 0.5)
}

func TestBuildZeroRate(t *testing.T) {
	s, err := Build(domain.LoanTerms{Principal: 1200, Term: 12}, Options{})
	require.NoError(t, err)
	require.Equal(t, 100.0, s.Header.Payment)
	require.Len(t, s.Rows, 12)
	for _, r := range s.Rows {
		require.Equal(t, 0.0, r.Interest)
		require.Equal(t, 100.0, r.Principal)
	}
	require.Equal(t, 0.0, s.Rows[11].ClosingBalance)
}

func TestBuildDeferred(t *testing.T) {
	s, err := Build(domain.LoanTerms{Principal: 1000, Term: 2, Rate: 0.1}, Options{Deferred: 1})
	require.NoError(t, err)
	require.Equal(t, 100.0, s.Header.DeferredPayment)
	require.Equal(t, 1100.0, s.Header.Payment)
	require.Equal(t, []domain.AmortizationRow{
		{Period: 1, OpeningBalance: 1000, Interest: 100, Principal: 0, ClosingBalance: 1000},
		{Period: 2, OpeningBalance: 1000, Interest: 100, Principal: 1000, ClosingBalance: 0},
	}, s.Rows)
}

func TestBuildDeferredWindow(t *testing.T) {
	terms := domain.LoanTerms{Principal: 12_000, Term: 12, Rate: 0.01}

	full, err := Build(terms, Options{Deferred: 3})
	require.NoError(t, err)
	require.Len(t, full.Rows, 12)
	require.Equal(t, 120.0, full.Header.DeferredPayment)
	require.Equal(t, 1400.88, full.Header.Payment)
	for _, r := range full.Rows[:3] {
		require.Equal(t, 0.0, r.Principal)
		require.Equal(t, 12_000.0, r.ClosingBalance)
	}
	require.Equal(t, 1280.88, full.Rows[3].Principal)
	require.Equal(t, 107.19, full.Rows[4].Interest)

	// The window is inclusive on both ends and keeps deferral rows.
	part, err := Build(terms, Options{Deferred: 3, From: 2, To: 5})
	require.NoError(t, err)
	require.Equal(t, 2, part.Header.From)
	require.Equal(t, 5, part.Header.To)
	require.Equal(t, full.Rows[1:5], part.Rows)
}

func TestBuildWindow(t *testing.T) {
	terms := domain.LoanTerms{Principal: 10_000, Term: 24, Rate: 0.01}
	full, err := Build(terms, Options{})
	require.NoError(t, err)

	part, err := Build(terms, Options{From: 3, To: 5})
	require.NoError(t, err)
	require.Equal(t, full.Rows[2:5], part.Rows)
	require.Equal(t, full.Header.Payment, part.Header.Payment)

	tail, err := Build(terms, Options{From: 20})
	require.NoError(t, err)
	require.Equal(t, full.Rows[19:], tail.Rows)
}

func TestBuildStopsWhenPaidOff(t *testing.T) {
	s, err := Build(domain.LoanTerms{Principal: 0.02, Term: 3}, Options{})
	require.NoError(t, err)
	require.Len(t, s.Rows, 2)
	require.Equal(t, 0.0, s.Rows[1].ClosingBalance)
}

func TestBuildInvalidArguments(t *testing.T) {
	tests := []struct {
		name  string
		terms domain.LoanTerms
		opts  Options
	}{
		{name: "zero term", terms: domain.LoanTerms{Principal: 1000}},
		{name: "nan principal", terms: domain.LoanTerms{Principal: math.NaN(), Term: 12}},
		{name: "nan rate", terms: domain.LoanTerms{Principal: 1000, Term: 12, Rate: math.NaN()}},
		{name: "deferral covers term", terms: domain.LoanTerms{Principal: 1000, Term: 12}, opts: Options{Deferred: 12}},
		{name: "negative deferral", terms: domain.LoanTerms{Principal: 1000, Term: 12}, opts: Options{Deferred: -1}},
		{name: "window past term", terms: domain.LoanTerms{Principal: 1000, Term: 12}, opts: Options{To: 13}},
		{name: "reversed window", terms: domain.LoanTerms{Principal: 1000, Term: 12}, opts: Options{From: 6, To: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.terms, tt.opts)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}
