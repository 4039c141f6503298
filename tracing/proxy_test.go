package tracing

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/sumuuid/model/types"
	"github.com/viant/sumuuid/service/action/summation"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var exporter = tracetest.NewInMemoryExporter()

func TestMain(m *testing.M) {
	if err := InitWithExporter("sumuuid", "0.0.1", exporter); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestProxy(t *testing.T) {
	exporter.Reset()
	srv := Proxy(summation.New())
	assert.Equal(t, summation.Name, srv.Name())

	exec, err := srv.Method("sumasstring")
	require.NoError(t, err)

	output := &summation.Output{}
	assert.NoError(t, exec(context.Background(), &summation.Input{A: 1, B: 2}, output))
	assert.Equal(t, "3", output.Value)
	err = exec(context.Background(), &summation.Input{A: math.MaxUint64, B: 2}, output)
	assert.ErrorIs(t, err, types.ErrOverflow)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "summation.sumAsString", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Len(t, spans[1].Events, 1)

	_, err = srv.Method("divide")
	assert.EqualError(t, err, "method divide not found")
}

func TestStartSpan(t *testing.T) {
	exporter.Reset()
	ctx, span := StartSpan(context.Background(), "outer")
	span.WithAttributes(map[string]string{"k": "v"})
	_, child := StartSpan(ctx, "inner")
	EndSpan(child, nil)
	EndSpan(span, nil)
	EndSpan(nil, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "inner", spans[0].Name)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
}
