package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags for environments
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (yaml)")
	flags.String("fcoin-mode", "", "api mode, REAL or SANDBOX")
	flags.String("fcoin-api-key", "", "fcoin api key")
	flags.String("fcoin-api-secret", "", "fcoin api secret")
	flags.String("fcoin-api-uri", "", "override the base uri of the selected mode")
	flags.Duration("http-timeout", 0, "http client timeout, e.g. 10s")
}
