package sumuuid

import "github.com/viant/sumuuid/model/types"

var (
	// ErrOverflow is returned by SumAsString when a+b does not fit in 64 bits.
	ErrOverflow = types.ErrOverflow
	// ErrEntropyUnavailable is returned by RandomUUIDv4 when the entropy source fails.
	ErrEntropyUnavailable = types.ErrEntropyUnavailable
)
