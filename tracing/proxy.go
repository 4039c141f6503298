package tracing

import (
	"context"

	"github.com/viant/sumuuid/model/types"
)

type service struct {
	types.Service
}

// Method returns the base executable wrapped in a "<service>.<method>" span
func (s *service) Method(name string) (types.Executable, error) {
	exec, err := s.Service.Method(name)
	if err != nil {
		return nil, err
	}
	spanName := s.Service.Name() + "." + name
	if signature := s.Service.Methods().Lookup(name); signature != nil {
		spanName = s.Service.Name() + "." + signature.Name
	}
	return func(ctx context.Context, input, output interface{}) (err error) {
		ctx, span := StartSpan(ctx, spanName)
		span.WithAttributes(map[string]string{"action.service": s.Service.Name()})
		defer func() { EndSpan(span, err) }()
		return exec(ctx, input, output)
	}, nil
}

// Proxy decorates base so that every method call is traced.
func Proxy(base types.Service) types.Service {
	return &service{Service: base}
}

var _ types.Proxy = Proxy
