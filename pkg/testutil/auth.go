package testutil

import (
	"os"
	"regexp"
	"testing"
)

var secretPattern = regexp.MustCompile(`\b(\w{4})\w+\b`)

func maskSecret(s string) string {
	return secretPattern.ReplaceAllString(s, "$1******")
}

// IntegrationTestConfigured reports whether the integration test of the given prefix
// is enabled, i.e. PREFIX_API_KEY and PREFIX_API_SECRET are set and TEST_PREFIX=1.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, key = %s, secret = %s", maskSecret(key), maskSecret(secret))
	}

	return key, secret, ok
}

// IntegrationTestBaseURI returns PREFIX_API_URI or the fallback.
func IntegrationTestBaseURI(prefix, fallback string) string {
	if uri, ok := os.LookupEnv(prefix + "_API_URI"); ok && uri != "" {
		return uri
	}

	return fallback
}
