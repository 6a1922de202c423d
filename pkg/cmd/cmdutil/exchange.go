package cmdutil

import (
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/c9s/fcoin/pkg/config"
	"github.com/c9s/fcoin/pkg/exchange/fcoin/fcoinapi"
)

const defaultHTTPTimeout = 15 * time.Second

// viperLookup maps FCOIN_API_KEY to the fcoin-api-key key, which covers both the
// flag and the environment variable.
func viperLookup(key string) (string, bool) {
	name := strings.ToLower(strings.ReplaceAll(key, "_", "-"))
	if !viper.IsSet(name) {
		return "", false
	}

	return viper.GetString(name), true
}

// LoadConfig loads the --config file when given, then applies the flags and the env vars.
func LoadConfig() (*config.Config, error) {
	conf := config.Default()

	if configFile := viper.GetString("config"); configFile != "" {
		var err error
		conf, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	}

	conf.ApplyEnv(viperLookup)
	return conf, nil
}

// NewRestClient builds the rest client from the config. Public commands pass
// withCredentials=false so that they work without an api key.
func NewRestClient(conf *config.Config, withCredentials bool) (*fcoinapi.RestClient, error) {
	credentials, err := conf.Credentials(withCredentials)
	if err != nil {
		return nil, err
	}

	timeout := viper.GetDuration("http-timeout")
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: NewLoggingTransport(http.DefaultTransport),
	}

	return fcoinapi.NewClientWithHttpClient(credentials, httpClient)
}
