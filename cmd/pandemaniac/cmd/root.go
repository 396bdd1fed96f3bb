package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pandemaniac/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	// v holds defaults, env and bound flags for every command.
	v = config.New()
	// configErr is set by initConfig; cobra initializers cannot return errors.
	configErr error
	// logger is built in PersistentPreRunE once the config is known.
	logger *log.Logger
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "pandemaniac",
	Short: "Seed selection for pandemaniac games",
	Long: `pandemaniac picks seed nodes for a graph-infection tournament.

Each strategy ranks or reduces the game graph, picks k seeds and writes
<game>_<tag>.txt with one node per line for every round of the game.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		logger, err = config.NewLogger(cfg.Log, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if used := v.ConfigFileUsed(); used != "" {
			logger.WithField("file", used).Debug("using config file")
		}
		return nil
	},
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		if logger != nil {
			logger.WithError(err).Error("pandemaniac failed")
		} else {
			fmt.Fprintln(RootCmd.ErrOrStderr(), "Error:", err)
		}
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./pandemaniac.yaml)")
	flags.String("log-level", "info", "log level - trace, debug, info, warn, error")
	flags.String("log-format", config.FormatText, "log format - text or json")
	must(v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")))
	must(v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format")))
}

// initConfig reads in the config file if one is set or found.
func initConfig() {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pandemaniac")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("loading config: %w", err)
		}
	}
}
