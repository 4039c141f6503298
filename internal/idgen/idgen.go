package idgen

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/viant/sumuuid/model/types"
)

// NewV4 reads 16 bytes from r and stamps the version 4 and RFC 4122 variant
// bits. Any read failure, including a short read, is reported as
// types.ErrEntropyUnavailable.
func NewV4(r io.Reader) (uuid.UUID, error) {
	if r == nil {
		return uuid.Nil, fmt.Errorf("%w: no random source", types.ErrEntropyUnavailable)
	}
	ret, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", types.ErrEntropyUnavailable, err)
	}
	return ret, nil
}

// IsV4 reports whether u carries version 4 and the RFC 4122 variant.
func IsV4(u uuid.UUID) bool {
	return u[6]&0xf0 == 0x40 && u[8]&0xc0 == 0x80
}
