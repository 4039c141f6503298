package types

// Service is a service interface
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}

// Proxy decorates a service, for example with tracing.
type Proxy func(base Service) Service
