package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dynect/internal/constants"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// LoginInfo is printed after a successful login check.
type LoginInfo struct {
	Customer   string `json:"customer"    yaml:"customer"`
	User       string `json:"user"        yaml:"user"`
	APIVersion string `json:"api_version" yaml:"api_version"`
	Saved      bool   `json:"saved"       yaml:"saved"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials against the API",
		Long: `Open a session with the configured credentials and close it again.

Credentials come from --customer, --username and --password, the DYNECT_*
environment variables, or the config file. With --save the customer,
username and API endpoint are written to the config file. The password is
never saved by this command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
				config := loadConfig()

				info := LoginInfo{
					Customer:   config.CustomerName,
					User:       config.UserName,
					APIVersion: constants.NotAvailable,
				}

				resp, err := dynect.ParseResponse([]byte(client.LastResult()))
				if err == nil {
					session, ok := dynect.DecodeData[dynect.SessionData](resp)
					if ok && session.Version != "" {
						info.APIVersion = session.Version
					}
				}

				if save {
					saved := &Config{
						API:          config.API,
						CustomerName: config.CustomerName,
						UserName:     config.UserName,
						Output:       config.Output,
						NoColor:      config.NoColor,
						NATSURL:      config.NATSURL,
						NATSSubject:  config.NATSSubject,
					}

					err = saveConfigStruct(saved)
					if err != nil {
						return err
					}

					info.Saved = true
				}

				return outputProperties(cmd, info, [][]string{
					{"Customer", info.Customer},
					{"User", info.User},
					{"API Version", info.APIVersion},
					{"Saved", boolString(info.Saved)},
				})
			})
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "save customer, username and API endpoint to the config file")

	return cmd
}

func boolString(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
