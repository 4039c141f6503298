package identifier

import "github.com/google/uuid"

// Input represents randomUUIDv4 input, the method takes no arguments
type Input struct{}

// Output carries the generated identifier in structured and canonical form
type Output struct {
	UUID uuid.UUID `json:"uuid" yaml:"uuid"`
	Text string    `json:"text" yaml:"text"`
}
