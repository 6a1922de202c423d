package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/fcoin/pkg/exchange/fcoin/fcoinapi"
)

type Mode string

const (
	ModeReal    Mode = "REAL"
	ModeSandbox Mode = "SANDBOX"
)

func (m Mode) Validate() error {
	switch m {
	case ModeReal, ModeSandbox:
		return nil
	}

	return errors.Errorf("unsupported mode %q, valid modes: REAL, SANDBOX", string(m))
}

// OrderDefaults are used by the orders command when the flags are not given.
type OrderDefaults struct {
	Symbol string      `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	States StringSlice `json:"states,omitempty" yaml:"states,omitempty"`
	Limit  int         `json:"limit,omitempty" yaml:"limit,omitempty"`
}

type Config struct {
	Mode      Mode            `json:"mode" yaml:"mode"`
	APIKey    string          `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	APISecret string          `json:"apiSecret,omitempty" yaml:"apiSecret,omitempty"`
	APIURI    map[Mode]string `json:"apiURI,omitempty" yaml:"apiURI,omitempty"`

	Orders OrderDefaults `json:"orders,omitempty" yaml:"orders,omitempty"`
}

func Default() *Config {
	return &Config{
		Mode: ModeReal,
		APIURI: map[Mode]string{
			ModeReal:    fcoinapi.RestBaseURL,
			ModeSandbox: fcoinapi.SandboxRestBaseURL,
		},
		Orders: OrderDefaults{
			Symbol: "btcusdt",
			States: StringSlice{string(fcoinapi.OrderStateSubmitted)},
		},
	}
}

// Load reads the yaml config file on top of the defaults. Base uris that are not
// given in the file keep their default values.
func Load(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	return LoadBytes(data)
}

func LoadBytes(data []byte) (*Config, error) {
	config := Default()
	defaultURIs := config.APIURI

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "config: yaml parsing error")
	}

	if config.APIURI == nil {
		config.APIURI = map[Mode]string{}
	}

	for mode, uri := range defaultURIs {
		if _, ok := config.APIURI[mode]; !ok {
			config.APIURI[mode] = uri
		}
	}

	config.Mode = Mode(strings.ToUpper(string(config.Mode)))
	return config, nil
}

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides the config with FCOIN_MODE, FCOIN_API_KEY, FCOIN_API_SECRET and
// FCOIN_API_URI (the uri of the selected mode).
func (c *Config) ApplyEnv(lookup LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup("FCOIN_MODE"); ok && v != "" {
		c.Mode = Mode(strings.ToUpper(v))
	}

	if v, ok := lookup("FCOIN_API_KEY"); ok && v != "" {
		c.APIKey = v
	}

	if v, ok := lookup("FCOIN_API_SECRET"); ok && v != "" {
		c.APISecret = v
	}

	if v, ok := lookup("FCOIN_API_URI"); ok && v != "" {
		if c.APIURI == nil {
			c.APIURI = map[Mode]string{}
		}

		c.APIURI[c.Mode] = v
	}
}

// BaseURI returns the base uri of the selected mode.
func (c *Config) BaseURI() string {
	return c.APIURI[c.Mode]
}

// Validate checks the mode and the base uri, and the key pair when withCredentials is set.
// All problems are reported at once.
func (c *Config) Validate(withCredentials bool) error {
	var err error

	if modeErr := c.Mode.Validate(); modeErr != nil {
		err = multierr.Append(err, &fcoinapi.ConfigurationError{Field: "mode", Reason: modeErr.Error()})
	} else if strings.TrimSpace(c.BaseURI()) == "" {
		err = multierr.Append(err, &fcoinapi.ConfigurationError{Field: "apiURI", Reason: "no base uri for mode " + string(c.Mode)})
	}

	if withCredentials {
		if c.APIKey == "" {
			err = multierr.Append(err, &fcoinapi.ConfigurationError{Field: "apiKey", Reason: "empty api key"})
		}

		if c.APISecret == "" {
			err = multierr.Append(err, &fcoinapi.ConfigurationError{Field: "apiSecret", Reason: "empty api secret"})
		}
	}

	return err
}

// Credentials resolves the immutable credential triple used by the rest client.
func (c *Config) Credentials(withCredentials bool) (fcoinapi.Credentials, error) {
	if err := c.Validate(withCredentials); err != nil {
		return fcoinapi.Credentials{}, err
	}

	return fcoinapi.Credentials{
		APIKey:    c.APIKey,
		APISecret: c.APISecret,
		BaseURI:   c.BaseURI(),
	}, nil
}
