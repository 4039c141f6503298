// Package entropy provides the random sources used to generate identifiers.
//
// A Source is injected into the identifier service rather than read from a
// process global, so callers can swap the operating system generator for a
// faster CSPRNG or, in tests, for a deterministic seeded stream:
//
//	srv := sumuuid.New(sumuuid.WithEntropy(entropy.Seeded([]byte("fixture"))))
//
// Every Source returned by this package is safe for concurrent use.
package entropy
