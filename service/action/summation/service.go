package summation

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/sumuuid/model/types"
)

const Name = "summation"

// Service formats sums of unsigned integers
type Service struct{}

// New creates a new summation service
func New() *Service {
	return &Service{}
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "sumAsString",
			Description: "Returns the sum of two unsigned integers as a decimal string.",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "sumasstring":
		return s.sumAsString, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) sumAsString(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*Input)
	if !ok || input == nil {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok || output == nil {
		return types.NewInvalidOutputError(out)
	}
	return s.SumAsString(ctx, input, output)
}

// SumAsString sets output.Value to the decimal sum of the input operands
func (s *Service) SumAsString(ctx context.Context, input *Input, output *Output) error {
	if input == nil {
		return types.NewInvalidInputError(input)
	}
	if output == nil {
		return types.NewInvalidOutputError(output)
	}
	value, err := Sum(input.A, input.B)
	if err != nil {
		return err
	}
	output.Value = value
	return nil
}
