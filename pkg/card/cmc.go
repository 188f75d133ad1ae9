package card

import (
	"math"

	"github.com/matzehuels/pyregraph/pkg/errors"
)

// CMCFromFloat converts a converted mana cost reported by the lookup service
// into an exact uint8.
//
// Whole values map to themselves (3.0 becomes 3). Values strictly between two
// consecutive integers (1.5, 2.999999) are rejected, as are NaN, negative
// values and values above 255. Rejections carry [errors.ErrCodeDataIntegrity].
func CMCFromFloat(f float64) (uint8, error) {
	if math.IsNaN(f) || f < 0 || f > math.MaxUint8 {
		return 0, errors.New(errors.ErrCodeDataIntegrity, "mana cost %v out of range", f)
	}
	if f != math.Trunc(f) {
		return 0, errors.New(errors.ErrCodeDataIntegrity, "fractional mana cost %v", f)
	}
	return uint8(f), nil
}
