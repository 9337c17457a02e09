package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_AliasesMappedToCanonical(t *testing.T) {
	raw := RawFacts{
		"minorityInterest":   150.0,
		"restricted_cash":    42.0,
		"shares_outstanding": 1000.0,
	}

	out := Normalize(raw)

	assert.Equal(t, 150.0, out[string(NoncontrollingInterest)])
	assert.Equal(t, 42.0, out[string(RestrictedCash)])
	assert.Equal(t, 1000.0, out[string(SharesOutstanding)])

	// Alias keys are kept alongside the canonical copies.
	assert.Equal(t, 150.0, out["minorityInterest"])
}

func TestNormalize_CanonicalKeyNotOverwrittenByAlias(t *testing.T) {
	raw := RawFacts{
		"goodwill":       1.0,
		string(Goodwill): 2.0,
	}

	out := Normalize(raw)
	assert.Equal(t, 2.0, out[string(Goodwill)])
}

func TestNormalize_NumericCoercion(t *testing.T) {
	raw := RawFacts{
		"a": "1,234,567",
		"b": "12.5",
		"c": "(2,500)",
		"d": "(0.75)",
		"e": "-123", // signed integers stay strings
		"f": "n/a",  // non-numeric stays string
		"g": 99.0,   // numbers pass through
	}

	out := Normalize(raw)

	assert.Equal(t, int64(1234567), out["a"])
	assert.Equal(t, 12.5, out["b"])
	assert.Equal(t, -2500.0, out["c"])
	assert.Equal(t, -0.75, out["d"])
	assert.Equal(t, "-123", out["e"])
	assert.Equal(t, "n/a", out["f"])
	assert.Equal(t, 99.0, out["g"])
}

func TestNormalize_NegativeDecimalString(t *testing.T) {
	out := Normalize(RawFacts{"x": "-1.5"})
	assert.Equal(t, -1.5, out["x"])
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := RawFacts{
		"minority_interest": "(1,000)",
		string(Revenue):     "2,000.5",
		"note":              "unparseable",
	}

	once := Normalize(raw)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raw := RawFacts{"x": "1,000"}
	Normalize(raw)
	assert.Equal(t, "1,000", raw["x"])
}

func TestNormalize_Nil(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}
