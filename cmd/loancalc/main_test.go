package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"loan-calculator/amortization"
	"loan-calculator/domain"
)

func TestPrintSchedule(t *testing.T) {
	s, err := amortization.Build(domain.LoanTerms{Principal: 1000, Term: 2, Rate: 0.1}, amortization.Options{Deferred: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printSchedule(&buf, s))

	out := buf.String()
	require.Contains(t, out, "after 1 interest-only payments of 100.00")
	require.Contains(t, out, "periods 1 to 2")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, []string{"2", "1000.00", "100.00", "1000.00", "0.00"}, strings.Fields(lines[5]))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, domain.RateResult{Rate: 0.1, Converged: true, Iterations: 3}))
	require.JSONEq(t, `{"rate": 0.1, "converged": true, "iterations": 3}`, buf.String())
}
