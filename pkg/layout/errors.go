package layout

import (
	"fmt"
	"math"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

// Axis names the dimension siblings must agree on.
type Axis string

const (
	AxisWidth  Axis = "width"
	AxisHeight Axis = "height"
)

// MismatchError reports two siblings whose cross-axis sizes differ. First
// and Second describe the siblings; sizes are in output units.
type MismatchError struct {
	Axis       Axis
	First      string
	FirstSize  float64
	Second     string
	SecondSize float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("children have different %ss: %s (%s: %g) and %s (%s: %g)",
		e.Axis, e.First, e.Axis, e.FirstSize, e.Second, e.Axis, e.SecondSize)
}

func mismatch(axis Axis, first string, firstSize float64, second string, secondSize float64) error {
	return kerrors.Wrap(kerrors.ErrCodeGeometryMismatch, &MismatchError{
		Axis:       axis,
		First:      first,
		FirstSize:  firstSize,
		Second:     second,
		SecondSize: secondSize,
	}, "layout")
}

// sameSize compares sizes that went through different float sums.
func sameSize(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
