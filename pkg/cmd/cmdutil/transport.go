package cmdutil

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LoggingTransport logs every api call at debug level. The query string is logged,
// the credential headers are not.
type LoggingTransport struct {
	next   http.RoundTripper
	logger log.FieldLogger
}

func NewLoggingTransport(next http.RoundTripper) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}

	return &LoggingTransport{
		next:   next,
		logger: log.WithField("component", "fcoinapi"),
	}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	started := time.Now()
	resp, err := t.next.RoundTrip(req)

	fields := log.Fields{
		"method":      req.Method,
		"path":        req.URL.Path,
		"query":       req.URL.RawQuery,
		"duration_ms": time.Since(started).Milliseconds(),
	}

	if err != nil {
		t.logger.WithFields(fields).WithError(err).Debug("fcoin api request failed")
		return resp, err
	}

	fields["status"] = resp.StatusCode
	t.logger.WithFields(fields).Debug("fcoin api request")
	return resp, nil
}
