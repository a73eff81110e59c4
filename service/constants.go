package service

import "time"

const (
	MaxPrincipal = 1_000_000_000.0 // 1 billion
	MaxTerm      = 1200            // 100 years of monthly periods
	MinTerm      = 1
	MaxRate      = 1.0 // 100% per period
	MinRate      = -0.99
	MaxFees      = MaxPrincipal
	MaxDecimals  = 12

	DefaultCacheTTL = 10 * time.Minute
)

// Calculation kinds recorded in the calculation log.
const (
	KindPayment       = "payment"
	KindRate          = "rate"
	KindEffectiveRate = "effective_rate"
	KindSchedule      = "schedule"
	KindConversion    = "conversion"
)
