package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCLP(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 0, want: "$0"},
		{amount: 500, want: "$500"},
		{amount: 12000, want: "$12.000"},
		{amount: 150000, want: "$150.000"},
		{amount: 1500000, want: "$1.500.000"},
		{amount: -12000, want: "$-12.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCLP(tt.amount))
	}
}

func TestParseCLPRoundTrip(t *testing.T) {
	for _, amount := range []int64{0, 1, 999, 1000, 12000, 987654321} {
		parsed, err := ParseCLP(FormatCLP(amount))
		require.NoError(t, err)
		assert.Equal(t, amount, parsed)
	}
}

func TestParseCLPRejectsGarbage(t *testing.T) {
	_, err := ParseCLP("$")
	assert.Error(t, err)
}
