package httptesting

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

type RoundTripFunc func(req *http.Request) (*http.Response, error)

// MockTransport routes requests to handlers by method and url path. A handler
// registered with a query ("orders?limit=2") matches only that exact query and
// takes precedence over the handler of the bare path.
type MockTransport struct {
	handlers map[string]map[string]RoundTripFunc
}

func (transport *MockTransport) Handle(method, path string, f RoundTripFunc) {
	if transport.handlers == nil {
		transport.handlers = make(map[string]map[string]RoundTripFunc)
	}

	method = strings.ToUpper(method)
	if transport.handlers[method] == nil {
		transport.handlers[method] = make(map[string]RoundTripFunc)
	}

	transport.handlers[method][path] = f
}

func (transport *MockTransport) GET(path string, f RoundTripFunc) {
	transport.Handle(http.MethodGet, path, f)
}

func (transport *MockTransport) POST(path string, f RoundTripFunc) {
	transport.Handle(http.MethodPost, path, f)
}

func (transport *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	handlers, ok := transport.handlers[strings.ToUpper(req.Method)]
	if !ok {
		return nil, errors.Errorf("unsupported mock transport request method: %s", req.Method)
	}

	f, ok := handlers[req.URL.Path+"?"+req.URL.RawQuery]
	if !ok {
		f, ok = handlers[req.URL.Path]
	}

	if !ok {
		return nil, errors.Errorf("roundtrip mock to %s %s is not defined", req.Method, req.URL.RequestURI())
	}

	resp, err := f(req)
	if resp != nil && resp.Request == nil {
		resp.Request = req
	}

	return resp, err
}

func MockWithJsonReply(path string, rawData interface{}) *http.Client {
	tripFunc := func(_ *http.Request) (*http.Response, error) {
		return BuildResponseJson(http.StatusOK, rawData), nil
	}

	transport := &MockTransport{}
	transport.GET(path, tripFunc)
	transport.POST(path, tripFunc)
	return &http.Client{Transport: transport}
}
