// Package sumuuid provides two stateless utilities behind an explicit
// service façade:
//
//   - summation  – formats the sum of two unsigned integers, failing on overflow
//   - identifier – generates random version 4 UUIDs from an injected entropy source
//
// Typical usage:
//
//	srv := sumuuid.New()
//	sum, err := srv.SumAsString(2, 3)      // "5"
//	id, err := srv.RandomUUIDv4(ctx)        // f47ac10b-58cc-4372-a567-0e02b2c3d479
//
// Both operations are also reachable by name through srv.Call, which is what
// hosts that dispatch dynamically (the sumuuid command for example) use.
package sumuuid
