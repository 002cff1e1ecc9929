package main

import (
	"fmt"
	"log/slog"
	"strings"

	parc "github.com/SimonDaKappa/go-parc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config keys, also reachable as PARC_<KEY> environment variables
const (
	grammarKey  = "grammar"
	partialKey  = "partial"
	logLevelKey = "log.level"
)

// app holds the state shared by the subcommands once the root command has
// loaded its configuration.
type app struct {
	v   *viper.Viper
	reg *parc.Registry
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:   viper.New(),
		reg: parc.DefaultRegistry(),
		log: slog.New(slog.DiscardHandler),
	}
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "parc",
		Short:        "Run parser grammars over text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(configFile); err != nil {
				return err
			}

			var level slog.Level
			if err := level.UnmarshalText([]byte(a.v.GetString(logLevelKey))); err != nil {
				return fmt.Errorf("invalid %s: %w", logLevelKey, err)
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	_ = a.v.BindPFlag(logLevelKey, flags.Lookup("log-level"))

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newRunCmd(a))

	return rootCmd
}

// loadConfig layers the optional config file under PARC_ environment
// variables and bound flags.
func (a *app) loadConfig(path string) error {
	a.v.SetEnvPrefix("PARC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	a.v.SetDefault(logLevelKey, "info")
	a.v.SetDefault(partialKey, false)

	if path == "" {
		return nil
	}
	a.v.SetConfigFile(path)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	a.log.Debug("loaded config", slog.String("path", path))
	return nil
}
