package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatures_Lookup(t *testing.T) {
	signatures := Signatures{{Name: "sumAsString"}, {Name: "randomUUIDv4"}}
	assert.NotNil(t, signatures.Lookup("sumasstring"))
	assert.Equal(t, "randomUUIDv4", signatures.Lookup("randomUUIDv4").Name)
	assert.Nil(t, signatures.Lookup("missing"))
}

func TestErrors(t *testing.T) {
	assert.EqualError(t, NewMethodNotFoundError("x"), "method x not found")
	assert.EqualError(t, NewServiceNotFoundError("y"), "service y not found")
	assert.EqualError(t, NewInvalidInputError(1), "invalid input int")
	assert.EqualError(t, NewInvalidOutputError("s"), "invalid output string")
	assert.NotErrorIs(t, ErrOverflow, ErrEntropyUnavailable)
}
