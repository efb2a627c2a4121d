package status

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSignal(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", -55, -55},
		{"below floor", -200, -120},
		{"above ceiling", 12, 0},
		{"negative infinity", math.Inf(-1), -120},
		{"positive infinity", math.Inf(1), 0},
		{"not a number", math.NaN(), -120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampSignal(tt.in))
		})
	}
}
