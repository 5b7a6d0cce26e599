package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert_SameCurrency(t *testing.T) {
	rates := DefaultTable()

	assert.Equal(t, 5000.0, rates.Convert(5000, "SGD", "SGD"))
	assert.Equal(t, 5000.0, rates.Convert(5000, "usd", "USD"))
}

func TestConvert_USDToSGD(t *testing.T) {
	rates := DefaultTable()

	assert.InDelta(t, 6750.0, rates.Convert(5000, "USD", "SGD"), 0.01)
}

func TestConvert_RoundTripSymmetry(t *testing.T) {
	rates := DefaultTable()

	there := rates.Convert(10000, "SGD", "EUR")
	back := rates.Convert(there, "EUR", "SGD")

	assert.InDelta(t, 10000.0, back, 0.01)
}

func TestConvert_UnknownCurrencyFallsBackToParity(t *testing.T) {
	rates := DefaultTable()

	// Unknown codes use a rate of 1.0 so the comparison degrades instead of failing.
	assert.InDelta(t, 5000.0, rates.Convert(5000, "XYZ", "ABC"), 0.01)
	assert.InDelta(t, 6750.0, rates.Convert(5000, "USD", "XYZ"), 0.01)
}

func TestWithOverrides_AppliesOnTopOfDefaults(t *testing.T) {
	rates := DefaultTable().WithOverrides(map[string]float64{"usd": 1.32, "THB": 0.039})

	assert.Equal(t, 1.32, rates["USD"])
	assert.Equal(t, 0.039, rates["THB"])
	assert.Equal(t, 1.46, rates["EUR"])
}

func TestWithOverrides_DoesNotMutateReceiver(t *testing.T) {
	base := DefaultTable()
	base.WithOverrides(map[string]float64{"USD": 99})

	assert.Equal(t, 1.35, base["USD"])
}
