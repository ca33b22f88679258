package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	assert.True(t, ParseAmount("10.00").IsNumeric())
	assert.Equal(t, "10", ParseAmount("10.00").Major().String())
	assert.Equal(t, "0", ParseAmount("").Major().String())
	assert.False(t, ParseAmount("12abc").IsNumeric())
}

func TestParseAmount_ExponentMagnitude(t *testing.T) {
	assert.Equal(t, "1000", ParseAmount("1e5").Major().String())
	assert.False(t, ParseAmount("1e50000000").IsNumeric())
	assert.False(t, ParseAmount("-1e400").IsNumeric())

	tiny := ParseAmount("1e-50000000")
	assert.True(t, tiny.IsNumeric())
	assert.True(t, tiny.Major().IsZero())
}

func TestFromFloat(t *testing.T) {
	assert.False(t, FromFloat(math.NaN()).IsNumeric())
	assert.False(t, FromFloat(math.Inf(1)).IsNumeric())
	assert.True(t, FromFloat(0).IsNumeric())
}

func TestZeroAmountIsAbsent(t *testing.T) {
	var a Amount
	assert.False(t, a.IsNumeric())
	assert.True(t, Cents(0).IsNumeric())
}

func TestGroup(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"1":       "1",
		"123":     "123",
		"1234":    "1,234",
		"123456":  "123,456",
		"1234567": "1,234,567",
	}

	for in, want := range tests {
		assert.Equal(t, want, group(in, ","), in)
	}
}
