package sumuuid

import (
	"fmt"

	"github.com/viant/sumuuid/entropy"
	"github.com/viant/sumuuid/model/types"
	"github.com/viant/sumuuid/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents a service option
type Option func(s *Service)

// WithEntropy sets the random source used by the identifier service
func WithEntropy(source entropy.Source) Option {
	return func(s *Service) {
		s.source = source
	}
}

// WithProxies decorates every registered action service
func WithProxies(proxies ...types.Proxy) Option {
	return func(s *Service) {
		s.proxies = append(s.proxies, proxies...)
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter writes to os.Stdout; otherwise spans are written to the supplied file path.
// When initialisation fails tracing stays off and the error is reported by Service.Err.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		if err := tracing.Init(serviceName, serviceVersion, outputFile); err != nil {
			s.err = fmt.Errorf("failed to init tracing: %w", err)
			return
		}
		s.proxies = append(s.proxies, tracing.Proxy)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		if err := tracing.InitWithExporter(serviceName, serviceVersion, exporter); err != nil {
			s.err = fmt.Errorf("failed to init tracing: %w", err)
			return
		}
		s.proxies = append(s.proxies, tracing.Proxy)
	}
}
