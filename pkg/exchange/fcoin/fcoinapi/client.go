package fcoinapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
)

const defaultHTTPTimeout = time.Second * 15

const (
	RestBaseURL        = "https://api.fcoin.com/v2/"
	SandboxRestBaseURL = "https://api-sandbox.fcoin.com/v2/"
)

const (
	HeaderAccessKey       = "FC-ACCESS-KEY"
	HeaderAccessSignature = "FC-ACCESS-SIGNATURE"
	HeaderAccessTimestamp = "FC-ACCESS-TIMESTAMP"

	JsonContentType = "application/json;charset=UTF-8"
)

// Credentials is the resolved api key, api secret and base uri triple.
type Credentials struct {
	APIKey    string
	APISecret string
	BaseURI   string
}

// Request describes a single call to the rest api.
type Request struct {
	Method string

	// Path is relative to the base uri, e.g. "orders/{id}/submit-cancel"
	Path string

	Params map[string]string

	// Authenticated requests carry the FC-ACCESS-* headers.
	Authenticated bool

	// Endpoint is the route template used as the metrics label, it falls back to Path.
	Endpoint string
}

// IsMutating reports whether the request changes server state. Mutating requests
// send their parameters as a json body instead of a query string.
func (r Request) IsMutating() bool {
	return r.Method != http.MethodGet
}

func (r Request) endpoint() string {
	if r.Endpoint != "" {
		return r.Endpoint
	}

	return r.Path
}

// RestClient is safe for concurrent use, nothing in it changes after construction.
type RestClient struct {
	credentials Credentials
	baseURI     string

	client *http.Client
}

func NewClient(credentials Credentials) (*RestClient, error) {
	return NewClientWithHttpClient(credentials, &http.Client{
		Timeout: defaultHTTPTimeout,
	})
}

func NewClientWithHttpClient(credentials Credentials, httpClient *http.Client) (*RestClient, error) {
	baseURI, err := normalizeBaseURI(credentials.BaseURI)
	if err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	credentials.BaseURI = baseURI
	return &RestClient{
		credentials: credentials,
		baseURI:     baseURI,
		client:      httpClient,
	}, nil
}

func normalizeBaseURI(baseURI string) (string, error) {
	baseURI = strings.TrimSpace(baseURI)
	if baseURI == "" {
		return "", &ConfigurationError{Field: "base_uri", Reason: "empty base uri"}
	}

	u, err := url.Parse(baseURI)
	if err != nil {
		return "", &ConfigurationError{Field: "base_uri", Reason: err.Error()}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &ConfigurationError{Field: "base_uri", Reason: "unsupported scheme " + strconv.Quote(u.Scheme)}
	}

	if u.Host == "" {
		return "", &ConfigurationError{Field: "base_uri", Reason: "missing host"}
	}

	if u.RawQuery != "" || u.Fragment != "" {
		return "", &ConfigurationError{Field: "base_uri", Reason: "base uri must not carry a query or a fragment"}
	}

	// paths are joined by concatenation, both for the url and for the signature
	if !strings.HasSuffix(baseURI, "/") {
		baseURI += "/"
	}

	return baseURI, nil
}

func (c *RestClient) BaseURI() string {
	return c.baseURI
}

// URL returns the full url of the given path, without query string.
func (c *RestClient) URL(path string) string {
	return c.baseURI + strings.TrimPrefix(path, "/")
}

// Do signs (when required) and sends the request, and returns the response body
// unparsed. Non-2xx responses are returned as *HttpStatusError, client failures as
// *TransportError. Nothing is retried.
func (c *RestClient) Do(ctx context.Context, r Request) ([]byte, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	body, statusCode, err := c.sendRequest(req)
	recordRequestMetrics(req.Method, r.endpoint(), statusCode, time.Since(start))
	if err != nil {
		return nil, err
	}

	return body, nil
}

func (c *RestClient) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := strings.ToUpper(r.Method)
	if method == "" {
		method = http.MethodGet
	}
	r.Method = method

	fullURL := c.URL(r.Path)
	query := EncodeParams(r.Params)

	sendURL := fullURL
	var body io.Reader
	if r.IsMutating() {
		if len(r.Params) > 0 {
			payload, err := json.Marshal(r.Params)
			if err != nil {
				return nil, errors.Wrap(err, "fcoin: unable to encode json body")
			}

			body = bytes.NewReader(payload)
		}
	} else if query != "" {
		sendURL += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, method, sendURL, body)
	if err != nil {
		return nil, errors.Wrapf(err, "fcoin: unable to create request %s %s", method, sendURL)
	}

	req.Header.Set("Accept", "application/json")

	if !r.Authenticated {
		return req, nil
	}

	if err := c.attachAuthHeaders(req, r, fullURL); err != nil {
		return nil, err
	}

	return req, nil
}

func (c *RestClient) attachAuthHeaders(req *http.Request, r Request, fullURL string) error {
	if len(c.credentials.APIKey) == 0 {
		return &ConfigurationError{Field: "api_key", Reason: "empty api key"}
	}

	if len(c.credentials.APISecret) == 0 {
		return &ConfigurationError{Field: "api_secret", Reason: "empty api secret"}
	}

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	signature, err := Sign(c.credentials.APISecret, r.Method, fullURL, timestamp, r.Params)
	if err != nil {
		return err
	}

	req.Header.Set(HeaderAccessKey, c.credentials.APIKey)
	req.Header.Set(HeaderAccessSignature, signature)
	req.Header.Set(HeaderAccessTimestamp, timestamp)
	if r.IsMutating() {
		req.Header.Set("Content-Type", JsonContentType)
	}

	return nil
}

// sendRequest returns the body and the status code, the status code is 0 when no
// response was received.
func (c *RestClient) sendRequest(req *http.Request) ([]byte, int, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}

	// NewResponse reads the whole body and closes it
	response, err := requestgen.NewResponse(resp)
	if err != nil {
		return nil, resp.StatusCode, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return response.Body, response.StatusCode, &HttpStatusError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: response.StatusCode,
			Body:       response.Body,
		}
	}

	return response.Body, response.StatusCode, nil
}
