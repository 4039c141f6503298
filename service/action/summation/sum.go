package summation

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/viant/sumuuid/model/types"
)

// Sum returns the base-10 representation of a+b. A carry out of 64 bits is
// reported as types.ErrOverflow instead of wrapping.
func Sum(a, b uint64) (string, error) {
	total, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return "", fmt.Errorf("%w: %d + %d exceeds %d", types.ErrOverflow, a, b, uint64(math.MaxUint64))
	}
	return strconv.FormatUint(total, 10), nil
}
