package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/treeverse/ringview/pkg/config"
	"github.com/treeverse/ringview/pkg/logging"
	"github.com/treeverse/ringview/pkg/version"
)

const (
	envPrefix         = "RINGCTL"
	defaultConfigName = ".ringctl"
)

var cfgFile string

// rootCmd represents the base command when called without any sub-commands
var rootCmd = &cobra.Command{
	Use:   "ringctl",
	Short: "Repeat sequences as cyclic views and inspect how they traverse.",
	Long: `ringctl builds a sequence from its arguments, repeats it a bounded or unbounded
number of times and prints, classifies or benchmarks the resulting ring.`,
	Version: version.Version,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := logging.CloseWriters(); err != nil {
			Warning(fmt.Sprintf("closing log files: %s", err))
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		DieErr(err)
	}
}

//nolint:gochecknoinits
func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.ringctl.yaml)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLoggingLevel, "set logging level")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLoggingFormat, "set logging output format (text, json)")
	rootCmd.PersistentFlags().Bool("no-color", false, "don't use fancy output colors")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"log-level":  config.LoggingLevelKey,
		"log-format": config.LoggingFormatKey,
	})
}

// bindFlags binds each named flag of fs to a configuration key, so a flag
// set on the command line overrides the config file and environment.
func bindFlags(fs *pflag.FlagSet, flagKeys map[string]string) {
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if noColor, _ := rootCmd.PersistentFlags().GetBool("no-color"); noColor {
		DisableColors()
	}
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			DieErr(err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(defaultConfigName)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // support nested config
	viper.AutomaticEnv()                                   // read in environment variables that match

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		DieFmt("error reading config file %s: %s", viper.ConfigFileUsed(), err)
	}
}

// getConfig loads and validates the configuration, and sets up logging.
func getConfig(cmd *cobra.Command) (context.Context, *config.Config) {
	cfg, err := config.NewConfig()
	if err != nil {
		DieErr(err)
	}
	ctx := logging.AddFields(cmd.Context(), logging.Fields{logging.CommandFieldKey: cmd.Name()})
	logging.FromContext(ctx).
		WithFields(cfg.ToLoggerFields()).
		WithField("config_file", viper.ConfigFileUsed()).
		Debug("Config loaded")
	return ctx, cfg
}
