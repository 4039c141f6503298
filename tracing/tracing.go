package tracing

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/viant/sumuuid"

var errNilExporter = errors.New("tracing: span exporter was nil")

var (
	mux      sync.Mutex
	provider *sdktrace.TracerProvider
	output   io.Closer
)

// exporterFactory builds the exporter and the output it owns, if any.
type exporterFactory func() (sdktrace.SpanExporter, io.Closer, error)

// Init installs a stdout exporter writing to outputFile, or to os.Stdout when
// outputFile is empty. Once a provider is installed later calls return nil
// without touching outputFile, until Shutdown is called.
func Init(serviceName, serviceVersion, outputFile string) error {
	return install(serviceName, serviceVersion, func() (sdktrace.SpanExporter, io.Closer, error) {
		if outputFile == "" {
			exporter, err := stdouttrace.New(stdouttrace.WithWriter(os.Stdout))
			return exporter, nil, err
		}
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, nil, err
		}
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(f))
		if err != nil {
			_ = f.Close()
			return nil, nil, err
		}
		return exporter, f, nil
	})
}

// InitWithExporter installs exporter (OTLP, in-memory ...) under the same
// rules as Init.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return errNilExporter
	}
	return install(serviceName, serviceVersion, func() (sdktrace.SpanExporter, io.Closer, error) {
		return exporter, nil, nil
	})
}

func install(serviceName, serviceVersion string, factory exporterFactory) error {
	mux.Lock()
	defer mux.Unlock()
	if provider != nil {
		return nil
	}
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return err
	}
	exporter, closer, err := factory()
	if err != nil {
		return err
	}
	provider = sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)
	output = closer
	otel.SetTracerProvider(provider)
	return nil
}

// Installed reports whether Init or InitWithExporter has installed a provider.
func Installed() bool {
	mux.Lock()
	defer mux.Unlock()
	return provider != nil
}

// Shutdown flushes and stops the installed provider and closes the file it
// writes to. A subsequent Init installs a new provider.
func Shutdown(ctx context.Context) error {
	mux.Lock()
	defer mux.Unlock()
	if provider == nil {
		return nil
	}
	err := provider.Shutdown(ctx)
	if output != nil {
		if cErr := output.Close(); err == nil {
			err = cErr
		}
	}
	provider, output = nil, nil
	return err
}

// Span is an action call span.
type Span struct {
	span trace.Span
}

// WithAttributes sets string attributes.
func (s *Span) WithAttributes(attrs map[string]string) *Span {
	if s == nil || len(attrs) == 0 {
		return s
	}
	otelAttrs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		otelAttrs = append(otelAttrs, attribute.String(k, v))
	}
	s.span.SetAttributes(otelAttrs...)
	return s
}

// SetStatus marks the span failed with err, or ok when err is nil.
func (s *Span) SetStatus(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
}

// StartSpan opens an internal span, it is a no-op tracer until a provider is installed.
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := otel.Tracer(instrumentationName)
	ctx, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}

// EndSpan records err and ends sp.
func EndSpan(sp *Span, err error) {
	if sp == nil {
		return
	}
	sp.SetStatus(err)
	sp.span.End()
}
