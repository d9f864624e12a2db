package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/dynect/internal/constants"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// Config represents the CLI configuration.
type Config struct {
	API          string `json:"api,omitempty"          yaml:"api,omitempty"`
	CustomerName string `json:"customer,omitempty"     yaml:"customer,omitempty"`
	UserName     string `json:"username,omitempty"     yaml:"username,omitempty"`
	Password     string `json:"password,omitempty"     yaml:"password,omitempty"`
	Output       string `json:"output,omitempty"       yaml:"output,omitempty"`
	NoColor      bool   `json:"no-color"               yaml:"no-color"`
	NATSURL      string `json:"nats-url,omitempty"     yaml:"nats-url,omitempty"`
	NATSSubject  string `json:"nats-subject,omitempty" yaml:"nats-subject,omitempty"`
}

// configKeys are the keys accepted by "config set" and "config unset".
var configKeys = []string{
	"api", "customer", "no-color", "nats-subject", "nats-url", "output", "password", "username",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/.dynect/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the password masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Password != "" {
				config.Password = constants.MaskedSecret
			}

			format, err := outputFormat()
			if err != nil {
				return err
			}

			handled, err := writeStructured(cmd.OutOrStdout(), format, config)
			if handled || err != nil {
				return err
			}

			return renderTable(cmd.OutOrStdout(), []string{"Property", "Value"}, [][]string{
				{"API", valueOrNA(config.API)},
				{"Customer", valueOrNA(config.CustomerName)},
				{"Username", valueOrNA(config.UserName)},
				{"Password", valueOrNA(config.Password)},
				{"Output", valueOrNA(config.Output)},
				{"No Color", strconv.FormatBool(config.NoColor)},
				{"NATS URL", valueOrNA(config.NATSURL)},
				{"NATS Subject", valueOrNA(config.NATSSubject)},
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys, ", "),
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := loadConfig()

			err := setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			if key == "password" {
				value = constants.MaskedSecret
			}

			_, _ = okLabel.Fprint(cmd.OutOrStdout(), "OK ")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config := loadConfig()

			err := unsetConfigValue(config, key)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = okLabel.Fprint(cmd.OutOrStdout(), "OK ")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		API:          viper.GetString("api"),
		CustomerName: viper.GetString("customer"),
		UserName:     viper.GetString("username"),
		Password:     viper.GetString("password"),
		Output:       viper.GetString("output"),
		NoColor:      viper.GetBool("no-color"),
		NATSURL:      viper.GetString("nats-url"),
		NATSSubject:  viper.GetString("nats-subject"),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api":
		config.API = value
	case "customer":
		config.CustomerName = value
	case "username":
		config.UserName = value
	case "password":
		config.Password = value
	case "output":
		format := strings.ToLower(value)
		if format != constants.FormatTable && format != constants.FormatJSON && format != constants.FormatYAML {
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, value)
		}

		config.Output = format
	case "no-color":
		noColor, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for no-color: %w", err)
		}

		config.NoColor = noColor
	case "nats-url":
		config.NATSURL = value
	case "nats-subject":
		config.NATSSubject = value
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, value)

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	if !slices.Contains(configKeys, key) {
		return fmt.Errorf("%w: %q", constants.ErrUnknownConfigKey, key)
	}

	switch key {
	case "api":
		config.API = ""
	case "customer":
		config.CustomerName = ""
	case "username":
		config.UserName = ""
	case "password":
		config.Password = ""
	case "output":
		config.Output = ""
	case "no-color":
		config.NoColor = false
	case "nats-url":
		config.NATSURL = ""
	case "nats-subject":
		config.NATSSubject = ""
	}

	if key == "no-color" {
		viper.Set(key, false)
	} else {
		viper.Set(key, "")
	}

	return nil
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".dynect", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// credentialsFromConfig builds API credentials and validates that every
// field is present.
func credentialsFromConfig(config *Config) (dynect.Credentials, error) {
	credentials := dynect.Credentials{
		CustomerName: config.CustomerName,
		UserName:     config.UserName,
		Password:     config.Password,
	}

	if credentials.Empty() {
		return credentials, constants.ErrNoCredentials
	}

	err := validate.Struct(credentials)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			missing := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				missing = append(missing, fieldErr.Field())
			}

			return credentials, fmt.Errorf("%w: missing %s", constants.ErrInvalidCredentials, strings.Join(missing, ", "))
		}

		return credentials, fmt.Errorf("%w: %w", constants.ErrInvalidCredentials, err)
	}

	return credentials, nil
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
