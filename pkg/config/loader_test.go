package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/c9s/fcoin/pkg/exchange/fcoin/fcoinapi"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		configFile string
		wantErr    bool
		f          func(t *testing.T, config *Config)
	}{
		{
			name:       "sandbox",
			configFile: "testdata/fcoin.yaml",
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, ModeSandbox, config.Mode)
				assert.Equal(t, "THE_KEY", config.APIKey)
				assert.Equal(t, "THE_API_SECRET", config.APISecret)
				assert.Equal(t, "https://api-sandbox.fcoin.com/v2/", config.BaseURI())
				assert.Equal(t, fcoinapi.RestBaseURL, config.APIURI[ModeReal])
				assert.Equal(t, "ethusdt", config.Orders.Symbol)
				assert.Equal(t, StringSlice{"filled", "canceled"}, config.Orders.States)
				assert.Equal(t, 50, config.Orders.Limit)
				assert.NoError(t, config.Validate(true))
			},
		},
		{
			name:       "public only",
			configFile: "testdata/public.yaml",
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, ModeReal, config.Mode)
				assert.Equal(t, fcoinapi.RestBaseURL, config.BaseURI())
				assert.Equal(t, StringSlice{"submitted"}, config.Orders.States)
				assert.NoError(t, config.Validate(false))
				assert.Error(t, config.Validate(true))
			},
		},
		{
			name:       "missing file",
			configFile: "testdata/missing.yaml",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Load(tt.configFile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, config)

			if tt.f != nil {
				tt.f(t, config)
			}
		})
	}
}

func TestLoadBytes_InvalidYaml(t *testing.T) {
	_, err := LoadBytes([]byte("mode: [REAL"))
	assert.Error(t, err)
}

func TestConfig_ApplyEnv(t *testing.T) {
	env := map[string]string{
		"FCOIN_MODE":       "sandbox",
		"FCOIN_API_KEY":    "env-key",
		"FCOIN_API_SECRET": "env-secret",
		"FCOIN_API_URI":    "http://localhost:8080/v2/",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	config := Default()
	config.APIKey = "file-key"
	config.ApplyEnv(lookup)

	assert.Equal(t, ModeSandbox, config.Mode)
	assert.Equal(t, "env-key", config.APIKey)
	assert.Equal(t, "env-secret", config.APISecret)
	assert.Equal(t, "http://localhost:8080/v2/", config.BaseURI())
	assert.Equal(t, fcoinapi.RestBaseURL, config.APIURI[ModeReal])

	credentials, err := config.Credentials(true)
	require.NoError(t, err)
	assert.Equal(t, fcoinapi.Credentials{
		APIKey:    "env-key",
		APISecret: "env-secret",
		BaseURI:   "http://localhost:8080/v2/",
	}, credentials)
}

func TestConfig_Validate(t *testing.T) {
	config := &Config{Mode: "TESTNET"}
	err := config.Validate(true)
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 3)

	var fields []string
	for _, e := range errs {
		var configErr *fcoinapi.ConfigurationError
		if assert.True(t, errors.As(e, &configErr)) {
			fields = append(fields, configErr.Field)
		}
	}
	assert.Equal(t, []string{"mode", "apiKey", "apiSecret"}, fields)

	config = Default()
	config.APIURI[ModeReal] = ""
	_, err = config.Credentials(false)
	var configErr *fcoinapi.ConfigurationError
	if assert.True(t, errors.As(err, &configErr)) {
		assert.Equal(t, "apiURI", configErr.Field)
	}
}

func TestStringSlice(t *testing.T) {
	var s StringSlice
	require.NoError(t, s.UnmarshalJSON([]byte(`"filled, canceled"`)))
	assert.Equal(t, StringSlice{"filled", "canceled"}, s)

	require.NoError(t, s.UnmarshalJSON([]byte(`["submitted", "partial_filled"]`)))
	assert.Equal(t, StringSlice{"submitted", "partial_filled"}, s)
	assert.Equal(t, "submitted,partial_filled", s.String())

	assert.Error(t, s.UnmarshalJSON([]byte(`1`)))
}
