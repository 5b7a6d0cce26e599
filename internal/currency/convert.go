// Package currency provides fixed-rate salary conversion between currencies.
// Rates are configuration, not constants: callers build a Table once (from
// defaults or config overrides) and inject it into the scorers.
package currency

import "strings"

// Table maps ISO currency codes to their value in SGD. A rate of 1.30 means
// one unit of that currency equals 1.30 SGD.
type Table map[string]float64

// DefaultTable returns the built-in rate table (SGD-based).
func DefaultTable() Table {
	return Table{
		"SGD": 1.0,
		"USD": 1.35,
		"EUR": 1.46,
		"GBP": 1.71,
		"AUD": 0.88,
		"MYR": 0.29,
		"HKD": 0.17,
		"CNY": 0.19,
		"INR": 0.016,
		"JPY": 0.0091,
	}
}

// WithOverrides returns a copy of the table with the given rates applied on top.
func (t Table) WithOverrides(overrides map[string]float64) Table {
	merged := make(Table, len(t)+len(overrides))
	for code, rate := range t {
		merged[code] = rate
	}
	for code, rate := range overrides {
		merged[strings.ToUpper(code)] = rate
	}
	return merged
}

// Convert converts an amount from one currency to another. Unknown currencies
// fall back to a rate of 1.0 so that scoring degrades to a same-currency
// comparison instead of failing.
func (t Table) Convert(amount float64, from, to string) float64 {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == to {
		return amount
	}

	fromRate, ok := t[from]
	if !ok || fromRate <= 0 {
		fromRate = 1.0
	}
	toRate, ok := t[to]
	if !ok || toRate <= 0 {
		toRate = 1.0
	}

	return amount * fromRate / toRate
}
