package httptesting

import (
	"encoding/json"
	"net/http"
)

// EchoSave replies every request with the same content and keeps the last request.
type EchoSave struct {
	// saveTo is the address of a caller's local variable, RoundTrip stores the
	// request there so that the test can inspect the headers and the body.
	saveTo     **http.Request
	statusCode int
	content    string
	err        error
}

func (st *EchoSave) RoundTrip(req *http.Request) (*http.Response, error) {
	if st.saveTo != nil {
		*st.saveTo = req
	}

	if st.err != nil {
		return nil, st.err
	}

	statusCode := st.statusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	resp := BuildResponseString(statusCode, st.content)
	resp.Request = req
	SetHeader(resp, "Content-Type", "application/json")
	return resp, nil
}

func HttpClientWithContent(content string) *http.Client {
	return &http.Client{Transport: &EchoSave{content: content}}
}

func HttpClientWithError(err error) *http.Client {
	return &http.Client{Transport: &EchoSave{err: err}}
}

func HttpClientWithStatus(statusCode int, content string) *http.Client {
	return &http.Client{Transport: &EchoSave{statusCode: statusCode, content: content}}
}

// HttpClientSaver saves the last *http.Request into saved.
func HttpClientSaver(saved **http.Request, content string) *http.Client {
	return &http.Client{Transport: &EchoSave{saveTo: saved, content: content}}
}

func HttpClientSaverWithJson(saved **http.Request, jsonData interface{}) *http.Client {
	jsonBytes, err := json.Marshal(jsonData)
	return &http.Client{Transport: &EchoSave{saveTo: saved, err: err, content: string(jsonBytes)}}
}
