/* conversions_test.go
 * Contains unit tests for conversions.go functions
 */

package logic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightImperial_Known(t *testing.T) {
	tests := []struct {
		cm   int
		want string
	}{
		{170, "5 ft 7 in"},
		{182, "6 ft 0 in"},
		{199, "6 ft 6 in"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HeightImperial(tt.cm).String(), "cm=%d", tt.cm)
	}
}

func TestHeightImperial_WithinRounding(t *testing.T) {
	for cm := 170; cm < 200; cm++ {
		h := HeightImperial(cm)
		total := float64(h.Feet*12 + h.Inches)

		assert.GreaterOrEqual(t, h.Inches, 0)
		assert.Less(t, h.Inches, 12)
		assert.LessOrEqual(t, math.Abs(total-float64(cm)/2.54), 0.5, "cm=%d", cm)
	}
}

func TestWeightImperial_Known(t *testing.T) {
	assert.Equal(t, "220 lbs", WeightImperial(100).String())
	assert.Equal(t, "395 lbs", WeightImperial(179).String())
}

func TestWeightImperial_WithinRounding(t *testing.T) {
	for kg := 100; kg < 180; kg++ {
		w := WeightImperial(kg)
		assert.LessOrEqual(t, math.Abs(float64(w.Pounds)-float64(kg)*2.20462), 0.5, "kg=%d", kg)
	}
}
