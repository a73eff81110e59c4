package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		dec  int
		want float64
	}{
		{name: "cents", v: 1.2345, dec: 2, want: 1.23},
		{name: "tie up", v: 2.5, dec: 0, want: 3},
		{name: "negative tie toward +inf", v: -2.5, dec: 0, want: -2},
		{name: "nine places", v: 0.1000000004, dec: 9, want: 0.1},
		{name: "no rounding", v: 1.23456, dec: NoRounding, want: 1.23456},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Round(tt.v, tt.dec))
		})
	}
	require.True(t, math.IsNaN(Round(math.NaN(), 2)))
}

func TestToNumber(t *testing.T) {
	require.Equal(t, 1000.5, ToNumber("1 000,5"))
	require.Equal(t, 12.5, ToNumber("12.5"))
	require.Equal(t, 3.0, ToNumber(3))
	require.Equal(t, 0.25, ToNumber(0.25))
	require.True(t, math.IsNaN(ToNumber("abc")))
	require.True(t, math.IsNaN(ToNumber("")))
	require.True(t, math.IsNaN(ToNumber(nil)))
	require.True(t, math.IsNaN(ToNumber(true)))
}

func TestPayment(t *testing.T) {
	type args struct {
		k0 float64
		n  int
		t  float64
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{name: "single period", args: args{k0: 1000, n: 1, t: 0.1}, want: 1100},
		{name: "monthly", args: args{k0: 2_000_000, n: 60, t: 0.08 / 12}, want: 40_552.79},
		{name: "long mortgage", args: args{k0: 1_000_000, n: 360, t: 0.025 / 12}, want: 3951.21},
		{name: "annuity", args: args{k0: 6000, n: 10, t: 0.05}, want: 777.03},
		{name: "zero rate", args: args{k0: 1200, n: 12, t: 0}, want: 100},
		{name: "zero term", args: args{k0: 1200, n: 0, t: 0.01}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Payment(tt.args.k0, tt.args.n, tt.args.t, 2))
		})
	}
}

func TestValues(t *testing.T) {
	require.Equal(t, 1210.0, FutureValue(1000, 2, 0.1, 2))
	require.Equal(t, 1000.0, FutureValue(1000, 2, 0, 2))
	require.Equal(t, 1000.0, PresentValue(1210, 2, 0.1, 2))
	require.Equal(t, 331.0, FutureValueAnnuity(100, 3, 0.1, 2))
	require.Equal(t, 300.0, FutureValueAnnuity(100, 3, 0, 2))
	require.Equal(t, 1000.0, PresentValueAnnuity(1100, 1, 0.1, 2))
	require.Equal(t, 0.1, RateFromValues(1000, 1210, 2, 4))
	require.InDelta(t, 2, TermFromValues(1000, 1210, 0.1), 1e-9)
	require.Equal(t, 0.0, TermFromValues(1000, 1000, 0.1))
	require.InDelta(t, 1, TermFromPayment(1000, 1100, 0.1), 1e-9)
	require.Equal(t, 12.0, TermFromPayment(1200, 100, 0))
	require.Equal(t, 80.0, SavingsPayment(960, 12, 0, 2))
}

func TestAmortizationPrimitives(t *testing.T) {
	require.Equal(t, 476.19, FirstPeriodPrincipal(1000, 2, 0.1, 2))
	require.Equal(t, 523.81, PeriodPrincipal(1000, 2, 0.1, 2, 2))
	require.Equal(t, 523.81, ScalePrincipal(0.1, 476.190476190476, 1, 2, 2))
	require.Equal(t, 1000.0, CumulativePrincipal(1000, 2, 0.1, 1, 2, 2))
	require.Equal(t, 100.0, PeriodInterest(1000, 2, 0.1, 1, 2))
	require.Equal(t, 152.38, CumulativeInterest(1000, 2, 0.1, 1, 2, 2))
	require.Equal(t, 0.0, CumulativeInterest(1200, 12, 0, 1, 12, 2))
	require.Equal(t, 523.81, RemainingBalance(1000, 2, 0.1, 1, 2))
	require.Equal(t, 900.0, RemainingBalanceFromPayment(100, 12, 0, 3, 2))
	require.Equal(t, 476.19, RepaidPrincipal(1000, 2, 0.1, 1, 2))
	require.Equal(t, 1000.0, RepaidPrincipal(1000, 2, 0.1, 2, 2))
	require.Equal(t, 300.0, RepaidPrincipal(1200, 12, 0, 3, 2))
	require.Equal(t, 152.38, TotalInterest(1000, 576.19, 2, 2))

	d := Deferred(1000, 2, 0.1, 1, 2)
	require.Equal(t, DeferredPayments{Deferred: 100, Regular: 1100, DeferredInterest: 100}, d)
}

func TestZeroRateDegeneracy(t *testing.T) {
	for _, n := range []int{1, 4, 12, 60} {
		k0 := 600.0 * float64(n)
		require.Equal(t, k0/float64(n), Payment(k0, n, 0, NoRounding))
		require.Equal(t, 0.0, PeriodInterest(k0, n, 0, 1, 2))
	}
}

func TestNaNPropagates(t *testing.T) {
	nan := math.NaN()
	results := []float64{
		Payment(nan, 12, 0.01, 2),
		Payment(1000, 12, nan, 2),
		FutureValue(nan, 12, 0.01, 2),
		FutureValue(1000, 12, nan, 2),
		PresentValue(nan, 12, 0.01, 2),
		PresentValueAnnuity(100, 12, nan, 2),
		FutureValueAnnuity(nan, 12, 0.01, 2),
		PeriodPrincipal(nan, 12, 0.01, 3, 2),
		RemainingBalance(1000, 12, nan, 3, 2),
		ConvertRate(nan, Monthly, Annual, 4),
		ConvertRate(ToNumber("n/a"), Monthly, Annual, 4),
	}
	for i, r := range results {
		require.Truef(t, math.IsNaN(r), "result %d = %v", i, r)
	}
}

func TestConvertRate(t *testing.T) {
	require.Equal(t, 0.1268, ConvertRate(0.01, Monthly, Annual, 4))
	require.Equal(t, 0.0, ConvertRate(0, Monthly, Annual, 4))
	require.Equal(t, 0.0123456, ConvertRate(0.0123456, Quarterly, Quarterly, 2))
	require.InDelta(t, 0.01, ConvertRate(0.126825, Annual, Monthly, 6), 1e-6)
	require.Equal(t, 0.1025, ConvertRate(0.05, Semiannual, Annual, 4))
}

func TestConversionTable(t *testing.T) {
	all := Conversions()
	require.Len(t, all, 12)
	seen := map[string]bool{}
	for _, c := range all {
		require.NotEqual(t, c.From, c.To)
		seen[c.String()] = true
		got, ok := LookupConversion(c.From, c.To)
		require.True(t, ok)
		require.Equal(t, c, got)
	}
	require.Len(t, seen, 12)

	_, ok := LookupConversion(Monthly, Monthly)
	require.False(t, ok)

	c, ok := LookupConversion(Monthly, Annual)
	require.True(t, ok)
	require.Equal(t, 0.1268, c.Apply(0.01, 4))
	require.Equal(t, "monthly->annual", c.String())
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("Monthly")
	require.NoError(t, err)
	require.Equal(t, Monthly, p)

	p, err = ParsePeriod("4")
	require.NoError(t, err)
	require.Equal(t, Quarterly, p)

	_, err = ParsePeriod("weekly")
	require.Error(t, err)
}
