package fcoinapi

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"net/url"
)

// EncodeParams encodes the parameters as a form-encoded query string with the keys
// sorted in ascending order. An empty map encodes to an empty string.
//
// The same encoding is used for the signed payload and for the query string that is
// sent, the server recomputes the signature from what it receives.
func EncodeParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}

	// url.Values.Encode sorts by key
	return values.Encode()
}

// CanonicalPayload builds the string that gets signed.
//
//	GET:   METHOD + URL [+ "?" + query] + timestamp
//	other: METHOD + URL + timestamp + body
//
// fullURL is the base URI joined with the endpoint path, without any query string.
func CanonicalPayload(method, fullURL, timestamp string, params map[string]string) string {
	body := EncodeParams(params)

	payload := method + fullURL
	if method == http.MethodGet {
		if body != "" {
			return payload + "?" + body + timestamp
		}

		return payload + timestamp
	}

	return payload + timestamp + body
}

// Sign computes the FC-ACCESS-SIGNATURE value:
//
//	base64(hmac_sha1(secret, base64(payload)))
func Sign(secret, method, fullURL, timestamp string, params map[string]string) (string, error) {
	payload := CanonicalPayload(method, fullURL, timestamp, params)
	encoded := base64.StdEncoding.EncodeToString([]byte(payload))

	mac := hmac.New(sha1.New, []byte(secret))
	if _, err := mac.Write([]byte(encoded)); err != nil {
		return "", &SigningError{Err: err}
	}

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
