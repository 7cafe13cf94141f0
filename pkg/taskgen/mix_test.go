package taskgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines int
		want  map[RequestType]int
	}{
		{"ten", 10, map[RequestType]int{Standard: 7, Priority: 1, FailureRestart: 1, SignalLow: 1}},
		{"three floors special categories to zero", 3, map[RequestType]int{Standard: 2, Priority: 0, FailureRestart: 0, SignalLow: 0}},
		{"one", 1, map[RequestType]int{Standard: 0, Priority: 0, FailureRestart: 0, SignalLow: 0}},
		{"large", 1_000_000, map[RequestType]int{Standard: 700_000, Priority: 100_000, FailureRestart: 100_000, SignalLow: 100_000}},
		{"uneven", 19, map[RequestType]int{Standard: 13, Priority: 1, FailureRestart: 1, SignalLow: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PoolCounts(tt.lines, DefaultMix))
		})
	}
}

func TestBuildPool(t *testing.T) {
	t.Parallel()

	t.Run("ExactCover", func(t *testing.T) {
		pool := BuildPool(10, DefaultMix)
		assert.Equal(t, []RequestType{
			Standard, Standard, Standard, Standard, Standard, Standard, Standard,
			Priority, FailureRestart, SignalLow,
		}, pool)
	})

	t.Run("Shortfall", func(t *testing.T) {
		pool := BuildPool(3, DefaultMix)
		assert.Equal(t, []RequestType{Standard, Standard}, pool)
	})

	t.Run("NeverLongerThanLines", func(t *testing.T) {
		for lines := 1; lines <= 250; lines++ {
			pool := BuildPool(lines, DefaultMix)
			require.LessOrEqual(t, len(pool), lines, "lines=%d", lines)
		}
	})

	t.Run("NonPositive", func(t *testing.T) {
		assert.Empty(t, BuildPool(0, DefaultMix))
		assert.Empty(t, BuildPool(-5, DefaultMix))
	})
}

func TestValidateMix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mix     []Share
		wantErr bool
	}{
		{"default", DefaultMix, false},
		{"empty", nil, false},
		{"partial", []Share{{Priority, 50}}, false},
		{"unknown type", []Share{{"EXPRESS", 10}}, true},
		{"duplicate", []Share{{Priority, 10}, {Priority, 10}}, true},
		{"negative", []Share{{Priority, -1}}, true},
		{"over hundred", []Share{{Standard, 80}, {Priority, 30}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateMix(tt.mix)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMix)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
