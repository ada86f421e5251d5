package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		amount   float64
		expected string
	}{
		{"zero", "£", 0, "£0.00"},
		{"whole amount", "£", 480, "£480.00"},
		{"rounded to two digits", "£", 12.345, "£12.35"},
		{"thousands separator", "£", 1234567.5, "£1,234,567.50"},
		{"exactly one thousand", "£", 1000, "£1,000.00"},
		{"negative amount", "£", -45.5, "-£45.50"},
		{"other currency symbol", "$", 99.99, "$99.99"},
		{"nan treated as zero", "£", math.NaN(), "£0.00"},
		{"infinity treated as zero", "£", math.Inf(1), "£0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.symbol, tt.amount))
		})
	}
}
