/* conversions.go
 * Contains the metric to imperial conversions shown next to a rikishi's height and weight
 */

package logic

import (
	"fmt"
	"math"
)

const (
	cmPerInch = 2.54
	lbsPerKG  = 2.20462
)

// Height is a height in whole feet and inches
type Height struct {
	Feet   int
	Inches int
}

func (h Height) String() string {
	return fmt.Sprintf("%d ft %d in", h.Feet, h.Inches)
}

// HeightImperial converts centimetres to feet and inches. The total is rounded to the nearest inch before it is
// split, so Inches is always between 0 and 11
func HeightImperial(cm int) Height {
	totalInches := int(math.Round(float64(cm) / cmPerInch))
	return Height{Feet: totalInches / 12, Inches: totalInches % 12}
}

// Weight is a weight in whole pounds
type Weight struct {
	Pounds int
}

func (w Weight) String() string {
	return fmt.Sprintf("%d lbs", w.Pounds)
}

// WeightImperial converts kilograms to pounds, rounded to the nearest pound
func WeightImperial(kg int) Weight {
	return Weight{Pounds: int(math.Round(float64(kg) * lbsPerKG))}
}
