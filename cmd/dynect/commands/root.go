package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/dynect/internal/constants"
)

// envFile is loaded from the working directory before the config file.
const envFile = ".env"

// NewRootCommand creates the dynect command tree with its global flags bound
// to viper.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dynect",
		Short: "Dyn Managed DNS CLI",
		Long: `A command-line interface for the Dyn Managed DNS REST API.

Every command opens a session with the configured credentials, runs and
closes the session again. Record changes stay pending until the zone is
published.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig(cmd)
			configureColor()

			_, err := outputFormat()

			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.dynect/config.yml)")
	flags.StringP("api", "a", "", "API endpoint URL (default "+constants.DefaultAPIEndpoint+")")
	flags.String("customer", "", "customer name")
	flags.StringP("username", "u", "", "user name")
	flags.StringP("password", "p", "", "password, prompted for when missing")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("no-color", false, "disable colored output")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "HTTP request timeout")
	flags.String("nats-url", "", "NATS server to publish change events to")
	flags.String("nats-subject", constants.DefaultEventSubject, "subject prefix of change events")

	for _, name := range []string{
		"config", "api", "customer", "username", "password", "output",
		"verbose", "no-color", "timeout", "nats-url", "nats-subject",
	} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewZonesCommand())
	rootCmd.AddCommand(NewNodesCommand())
	rootCmd.AddCommand(NewARecordsCommand())
	rootCmd.AddCommand(NewCNAMERecordsCommand())
	rootCmd.AddCommand(NewSyncCommand())

	return rootCmd
}

func initConfig(cmd *cobra.Command) {
	// A missing .env file is not an error.
	_ = godotenv.Load(envFile)

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".dynect"))
		}

		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("DYNECT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil && viper.GetBool("verbose") {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}
