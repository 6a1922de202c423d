package httptesting

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"
)

// RecorderEntry records a single request and response pair.
type RecorderEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Request   *RequestRecord  `json:"request"`
	Response  *ResponseRecord `json:"response"`
	Error     string          `json:"error,omitempty"`
}

type RequestRecord struct {
	Method string      `json:"method"`
	URL    string      `json:"url"`
	Header http.Header `json:"header"`
	Body   string      `json:"body,omitempty"`
}

type ResponseRecord struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Header     http.Header `json:"header"`
	Body       string      `json:"body,omitempty"`
}

// Recorder records request and response pairs to a file, and plays them back
// through a MockTransport.
type Recorder struct {
	entries   []RecorderEntry
	transport http.RoundTripper
}

func NewRecorder(transport http.RoundTripper) *Recorder {
	return &Recorder{
		transport: transport,
	}
}

var credentialHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^authorization$`),
	regexp.MustCompile(`(?i)^cookie$`),
	regexp.MustCompile(`(?i)^fc-access-(key|signature)$`),
	regexp.MustCompile(`(?i)^(x[-_])?api[-_]key$`),
}

// filterCredentials drops the api key and the signature, the timestamp is kept.
func filterCredentials(header http.Header) {
	for key := range header {
		for _, re := range credentialHeaderPatterns {
			if re.MatchString(key) {
				header.Del(key)
				break
			}
		}
	}
}

func (r *Recorder) Entries() []RecorderEntry {
	return r.entries
}

// RecordEntry records a request and response, the request body is restored for the caller.
func (r *Recorder) RecordEntry(req *http.Request, resp *http.Response, err error) {
	entry := RecorderEntry{
		Timestamp: time.Now(),
		Request: &RequestRecord{
			Method: req.Method,
			URL:    req.URL.String(),
			Header: req.Header.Clone(),
		},
	}
	filterCredentials(entry.Request.Header)

	if req.GetBody != nil {
		if body, bodyErr := req.GetBody(); bodyErr == nil {
			bodyBytes, _ := io.ReadAll(body)
			entry.Request.Body = string(bodyBytes)
		}
	}

	if resp != nil {
		entry.Response = &ResponseRecord{
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
		}
		if resp.Body != nil {
			bodyBytes, _ := io.ReadAll(resp.Body)
			entry.Response.Body = string(bodyBytes)
			resp.Body = io.NopCloser(strings.NewReader(entry.Response.Body))
		}
	}

	if err != nil {
		entry.Error = err.Error()
	}

	r.entries = append(r.entries, entry)
}

// RoundTrip records the request and the response of the underlying transport.
func (r *Recorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.transport.RoundTrip(req)
	r.RecordEntry(req, resp, err)
	return resp, err
}

func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.entries)
}

func (r *Recorder) Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}

	defer file.Close()

	var entries []RecorderEntry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		return err
	}

	r.entries = entries
	return nil
}

func BuildResponseFromRecord(respRec *ResponseRecord) *http.Response {
	return &http.Response{
		Status:     respRec.Status,
		StatusCode: respRec.StatusCode,
		Header:     respRec.Header.Clone(),
		Body:       io.NopCloser(strings.NewReader(respRec.Body)),
	}
}

// LoadFromRecorder registers a handler for each recorded method, path and query,
// so that pages of the same endpoint replay their own responses.
func (transport *MockTransport) LoadFromRecorder(recorder *Recorder) error {
	for _, entry := range recorder.entries {
		if entry.Request == nil || entry.Response == nil {
			continue
		}

		u, err := url.Parse(entry.Request.URL)
		if err != nil {
			return err
		}

		route := u.Path
		if u.RawQuery != "" {
			route += "?" + u.RawQuery
		}

		respRec := entry.Response
		transport.Handle(entry.Request.Method, route, func(_ *http.Request) (*http.Response, error) {
			return BuildResponseFromRecord(respRec), nil
		})
	}

	return nil
}
