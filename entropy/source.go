package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"gitlab.com/NebulousLabs/fastrand"
)

const (
	SecureName   = "secure"
	FastRandName = "fastrand"
	SeededName   = "seeded"
)

// Source supplies random bytes.
type Source interface {
	io.Reader
}

// Secure returns the operating system CSPRNG.
func Secure() Source {
	return rand.Reader
}

// FastRand returns a userspace CSPRNG seeded once from the operating system.
// It never fails after initialisation.
func FastRand() Source {
	return fastrand.Reader
}

// Lookup returns the source registered under name. Seed is used by the
// seeded source only.
func Lookup(name string, seed []byte) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SecureName:
		return Secure(), nil
	case FastRandName:
		return FastRand(), nil
	case SeededName:
		if len(seed) == 0 {
			return nil, fmt.Errorf("entropy source %q requires a seed", SeededName)
		}
		return Seeded(seed), nil
	default:
		return nil, fmt.Errorf("unsupported entropy source: %q", name)
	}
}
