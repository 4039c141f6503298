package identifier

import (
	"context"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/sumuuid/entropy"
	"github.com/viant/sumuuid/internal/idgen"
	"github.com/viant/sumuuid/model/types"
)

const Name = "identifier"

// Service generates random version 4 identifiers from an injected source
type Service struct {
	source entropy.Source
}

// New creates an identifier service, nil source falls back to entropy.Secure
func New(source entropy.Source) *Service {
	if source == nil {
		source = entropy.Secure()
	}
	return &Service{source: source}
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "randomUUIDv4",
			Description: "Returns a new random version 4 UUID.",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "randomuuidv4":
		return s.randomUUIDv4, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) randomUUIDv4(ctx context.Context, in, out interface{}) error {
	if _, ok := in.(*Input); !ok && in != nil {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok || output == nil {
		return types.NewInvalidOutputError(out)
	}
	id, err := s.RandomUUIDv4(ctx)
	if err != nil {
		return err
	}
	output.UUID = id
	output.Text = id.String()
	return nil
}

// RandomUUIDv4 returns a new version 4 UUID
func (s *Service) RandomUUIDv4(ctx context.Context) (uuid.UUID, error) {
	return idgen.NewV4(s.source)
}
