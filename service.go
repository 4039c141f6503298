package sumuuid

import (
	"context"

	"github.com/google/uuid"
	"github.com/viant/sumuuid/entropy"
	"github.com/viant/sumuuid/extension"
	"github.com/viant/sumuuid/model/types"
	"github.com/viant/sumuuid/service/action/identifier"
	"github.com/viant/sumuuid/service/action/summation"
	"github.com/viant/sumuuid/tracing"
)

// Service exposes the summation and identifier operations
type Service struct {
	actions *extension.Actions
	source  entropy.Source
	proxies []types.Proxy
	err     error
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	if s.source == nil {
		s.source = entropy.Secure()
	}
	s.actions = extension.NewActions(s.proxies...)
	s.actions.Register(summation.New())
	s.actions.Register(identifier.New(s.source))
}

// SumAsString returns the decimal representation of a+b or ErrOverflow
func (s *Service) SumAsString(a, b uint64) (string, error) {
	output := &summation.Output{}
	if err := s.Call(context.Background(), summation.Name, "sumAsString", &summation.Input{A: a, B: b}, output); err != nil {
		return "", err
	}
	return output.Value, nil
}

// RandomUUIDv4 returns a new random version 4 UUID or ErrEntropyUnavailable
func (s *Service) RandomUUIDv4(ctx context.Context) (uuid.UUID, error) {
	output := &identifier.Output{}
	if err := s.Call(ctx, identifier.Name, "randomUUIDv4", &identifier.Input{}, output); err != nil {
		return uuid.Nil, err
	}
	return output.UUID, nil
}

// Err returns the error of an option that could not be applied, the service
// remains usable without the feature the option enabled.
func (s *Service) Err() error {
	return s.err
}

// Actions returns the registry of callable services
func (s *Service) Actions() *extension.Actions {
	return s.actions
}

// Call invokes service method by name, for example Call(ctx, "summation", "sumAsString", in, out)
func (s *Service) Call(ctx context.Context, service, method string, input, output interface{}) error {
	return s.actions.Call(ctx, service, method, input, output)
}

// New creates a service
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}

// NewFromConfig creates a service from config, options are applied after config settings
func NewFromConfig(cfg *Config, options ...Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	source, err := cfg.source()
	if err != nil {
		return nil, err
	}
	var configOptions = []Option{WithEntropy(source)}
	if cfg.Tracing.Enabled {
		if err = tracing.Init(cfg.Tracing.ServiceName, cfg.Tracing.ServiceVersion, cfg.Tracing.OutputFile); err != nil {
			return nil, err
		}
		configOptions = append(configOptions, WithProxies(tracing.Proxy))
	}
	return New(append(configOptions, options...)...), nil
}
