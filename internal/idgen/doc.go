// Package idgen builds version 4 UUIDs from an arbitrary byte source.
// It lives under `internal` because callers should go through the identifier
// service, which owns the choice of entropy source.
package idgen
