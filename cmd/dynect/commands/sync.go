package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dynect/internal/constants"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
	"github.com/fivetwenty-io/dynect/pkg/recordsync"
)

// ExistsResult is printed by "sync exists".
type ExistsResult struct {
	Zone   string            `json:"zone"   yaml:"zone"`
	FQDN   string            `json:"fqdn"   yaml:"fqdn"`
	Type   dynect.RecordType `json:"type"   yaml:"type"`
	Exists bool              `json:"exists" yaml:"exists"`
}

// NewSyncCommand creates the sync command group.
func NewSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile single records",
		Long: `Make a node carry exactly one record of a type, or none.

Each change is published unless --no-publish is given.`,
	}

	cmd.PersistentFlags().Bool("no-publish", false, "leave changes pending instead of publishing the zone")

	cmd.AddCommand(newSyncUpsertCommand())
	cmd.AddCommand(newSyncDeleteCommand())
	cmd.AddCommand(newSyncExistsCommand())

	return cmd
}

func newSyncUpsertCommand() *cobra.Command {
	var ttl int

	cmd := &cobra.Command{
		Use:   "upsert ZONE FQDN TYPE VALUE",
		Short: "Create or replace a record",
		Long:  "Make VALUE the only TYPE record on FQDN. TYPE is A or CNAME. Nothing changes when the record is already in place.",
		Args:  cobra.ExactArgs(constants.FourArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordType, err := parseRecordType(args[2])
			if err != nil {
				return err
			}

			record := recordsync.Record{
				Zone:  args[0],
				FQDN:  args[1],
				Type:  recordType,
				Value: args[3],
				TTL:   ttl,
			}

			err = record.Validate()
			if err != nil {
				return err
			}

			return withSyncer(cmd, func(ctx context.Context, syncer *recordsync.Syncer) error {
				err := syncer.Upsert(ctx, record)
				if err != nil {
					return err
				}

				return outputChange(cmd, "upsert", record.FQDN+" "+string(record.Type)+" "+record.Value)
			})
		},
	}

	cmd.Flags().IntVar(&ttl, "ttl", constants.DefaultRecordTTL, "TTL of the record in seconds")

	return cmd
}

func newSyncDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ZONE FQDN TYPE",
		Short: "Delete every record of a type on a node",
		Args:  cobra.ExactArgs(constants.ThreeArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, fqdn := args[0], args[1]

			recordType, err := parseRecordType(args[2])
			if err != nil {
				return err
			}

			return withSyncer(cmd, func(ctx context.Context, syncer *recordsync.Syncer) error {
				err := syncer.Delete(ctx, zone, fqdn, recordType)
				if err != nil {
					return err
				}

				return outputChange(cmd, string(dynect.ActionDelete), fqdn+" "+string(recordType))
			})
		},
	}
}

func newSyncExistsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exists ZONE FQDN TYPE",
		Short: "Check whether a node has records of a type",
		Args:  cobra.ExactArgs(constants.ThreeArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, fqdn := args[0], args[1]

			recordType, err := parseRecordType(args[2])
			if err != nil {
				return err
			}

			return withSyncer(cmd, func(ctx context.Context, syncer *recordsync.Syncer) error {
				exists, err := syncer.Exists(ctx, zone, fqdn, recordType)
				if err != nil {
					return err
				}

				result := ExistsResult{Zone: zone, FQDN: fqdn, Type: recordType, Exists: exists}

				return outputProperties(cmd, result, [][]string{
					{"Zone", zone},
					{"FQDN", fqdn},
					{"Type", string(recordType)},
					{"Exists", boolString(exists)},
				})
			})
		},
	}
}

func withSyncer(cmd *cobra.Command, fn func(ctx context.Context, syncer *recordsync.Syncer) error) error {
	var opts []recordsync.Option

	noPublish, err := cmd.Flags().GetBool("no-publish")
	if err == nil && noPublish {
		opts = append(opts, recordsync.WithoutPublish())
	}

	logger := newLogger(cmd)

	return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
		return fn(ctx, recordsync.New(client, logger.Logr(), opts...))
	})
}

func parseRecordType(name string) (dynect.RecordType, error) {
	recordType, err := dynect.ParseRecordType(name)
	if errors.Is(err, dynect.ErrUnsupportedRecordType) {
		return "", fmt.Errorf("%w: %q", constants.ErrUnsupportedRecord, name)
	}

	return recordType, err
}
