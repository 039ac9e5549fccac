package main

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	powerdns "github.com/jfk9w-go/libdns-powerdns"
)

const (
	apiKeyKey  = "api-key"
	urlKey     = "url"
	serverKey  = "server"
	timeoutKey = "timeout"
	verboseKey = "verbose"
)

type config struct {
	APIKey  string        `mapstructure:"api-key" validate:"required"`
	URL     string        `mapstructure:"url" validate:"required,url"`
	Server  string        `mapstructure:"server" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	Verbose bool          `mapstructure:"verbose"`
}

type app struct {
	v      *viper.Viper
	cfg    config
	client *powerdns.Client
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "pdnsctl",
		Short:        "PowerDNS Authoritative HTTP API client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String(apiKeyKey, "", "API key (env PDNS_API_KEY)")
	flags.String(urlKey, "http://localhost:8081/api/v1/", "API base URL including version (env PDNS_URL)")
	flags.String(serverKey, "localhost", "Server ID (env PDNS_SERVER)")
	flags.Duration(timeoutKey, 0, "Request timeout, 0 for none (env PDNS_TIMEOUT)")
	flags.BoolP(verboseKey, "v", false, "Log requests to stderr")

	root.AddCommand(
		a.serversCmd(),
		a.zonesCmd(),
		a.cryptokeysCmd(),
		a.metadataCmd(),
		a.tsigkeysCmd(),
		a.autoprimariesCmd(),
		a.searchCmd(),
		a.statsCmd(),
		a.cacheCmd(),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("PDNS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := a.v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = errors.Wrapf(err, "bind flag %s", f.Name)
		}
	})

	if bindErr != nil {
		return bindErr
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return errors.Wrap(err, "unmarshal config")
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&a.cfg); err != nil {
		return errors.Wrap(err, "validate config")
	}

	log := zap.NewNop()
	if a.cfg.Verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return errors.Wrap(err, "create logger")
		}
	}

	a.client = powerdns.NewClient(a.cfg.APIKey, a.cfg.URL,
		powerdns.WithTimeout(a.cfg.Timeout),
		powerdns.WithLogger(log),
		powerdns.WithUserAgent("pdnsctl"))

	return nil
}

func printJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func printResult[T any](cmd *cobra.Command) func(T, error) error {
	return func(value T, err error) error {
		if err != nil {
			return err
		}

		return printJSON(cmd, value)
	}
}
