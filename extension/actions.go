package extension

import (
	"context"
	"sort"
	"sync"

	"github.com/viant/sumuuid/model/types"
)

// Actions provides action service
type Actions struct {
	services map[string]types.Service
	proxies  []types.Proxy
	mux      sync.RWMutex
}

// Lookup returns a service by name
func (s *Actions) Lookup(name string) types.Service {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.services[name]
}

// Register registers a service, applying proxies in registration order
func (s *Actions) Register(service types.Service) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, proxy := range s.proxies {
		service = proxy(service)
	}
	s.services[service.Name()] = service
}

// Names returns sorted registered service names
func (s *Actions) Names() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ret := make([]string, 0, len(s.services))
	for name := range s.services {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Call executes service method with supplied input and output
func (s *Actions) Call(ctx context.Context, service, method string, input, output interface{}) error {
	srv := s.Lookup(service)
	if srv == nil {
		return types.NewServiceNotFoundError(service)
	}
	signature := srv.Methods().Lookup(method)
	if signature == nil {
		return types.NewMethodNotFoundError(method)
	}
	exec, err := srv.Method(signature.Name)
	if err != nil {
		return err
	}
	return exec(ctx, input, output)
}

// NewActions creates a new action service
func NewActions(proxies ...types.Proxy) *Actions {
	return &Actions{
		services: make(map[string]types.Service),
		proxies:  proxies,
	}
}
