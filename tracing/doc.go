// Package tracing integrates OpenTelemetry with the action services so that
// every summation or identifier call can be recorded as a span. It is kept
// separate so that applications which do not need tracing pay nothing for it.
package tracing
