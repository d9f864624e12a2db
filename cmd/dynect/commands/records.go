package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dynect/internal/constants"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// recordKind binds the record commands to one record type.
type recordKind struct {
	use        string
	aliases    []string
	recordType dynect.RecordType
	valueName  string
	add        func(ctx context.Context, client dynect.Client, zone, fqdn, value string, ttl int) bool
	remove     func(ctx context.Context, client dynect.Client, zone, fqdn, id string) bool
	list       func(ctx context.Context, client dynect.Client, zone, fqdn string) ([]string, bool)
	get        func(ctx context.Context, client dynect.Client, zone, fqdn, id string) (interface{}, []string, bool)
}

var aRecordKind = recordKind{
	use:        "arecords",
	aliases:    []string{"arecord", "a"},
	recordType: dynect.RecordTypeA,
	valueName:  "ADDRESS",
	add: func(ctx context.Context, client dynect.Client, zone, fqdn, value string, ttl int) bool {
		return client.ARecords().Add(ctx, zone, fqdn, value, ttl)
	},
	remove: func(ctx context.Context, client dynect.Client, zone, fqdn, id string) bool {
		return client.ARecords().Delete(ctx, zone, fqdn, id)
	},
	list: func(ctx context.Context, client dynect.Client, zone, fqdn string) ([]string, bool) {
		return client.ARecords().List(ctx, zone, fqdn)
	},
	get: func(ctx context.Context, client dynect.Client, zone, fqdn, id string) (interface{}, []string, bool) {
		record, ok := client.ARecords().Get(ctx, zone, fqdn, id)
		if !ok {
			return nil, nil, false
		}

		return record, recordRow(record.RecordID, record.TTL, record.RData.Address), true
	},
}

var cnameRecordKind = recordKind{
	use:        "cnames",
	aliases:    []string{"cname"},
	recordType: dynect.RecordTypeCNAME,
	valueName:  "TARGET",
	add: func(ctx context.Context, client dynect.Client, zone, fqdn, value string, ttl int) bool {
		return client.CNAMERecords().Add(ctx, zone, fqdn, value, ttl)
	},
	remove: func(ctx context.Context, client dynect.Client, zone, fqdn, id string) bool {
		return client.CNAMERecords().Delete(ctx, zone, fqdn, id)
	},
	list: func(ctx context.Context, client dynect.Client, zone, fqdn string) ([]string, bool) {
		return client.CNAMERecords().List(ctx, zone, fqdn)
	},
	get: func(ctx context.Context, client dynect.Client, zone, fqdn, id string) (interface{}, []string, bool) {
		record, ok := client.CNAMERecords().Get(ctx, zone, fqdn, id)
		if !ok {
			return nil, nil, false
		}

		return record, recordRow(record.RecordID, record.TTL, record.RData.CNAME), true
	},
}

func recordRow(id int64, ttl int, value string) []string {
	return []string{strconv.FormatInt(id, 10), strconv.Itoa(ttl), value}
}

// NewARecordsCommand creates the A record command group.
func NewARecordsCommand() *cobra.Command {
	return newRecordsCommand(aRecordKind)
}

// NewCNAMERecordsCommand creates the CNAME record command group.
func NewCNAMERecordsCommand() *cobra.Command {
	return newRecordsCommand(cnameRecordKind)
}

func newRecordsCommand(kind recordKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:     kind.use,
		Aliases: kind.aliases,
		Short:   "Manage " + string(kind.recordType) + " records",
		Long:    "List, inspect, add and delete " + string(kind.recordType) + " records. Changes are pending until the zone is published.",
	}

	cmd.AddCommand(newRecordsListCommand(kind))
	cmd.AddCommand(newRecordsGetCommand(kind))
	cmd.AddCommand(newRecordsAddCommand(kind))
	cmd.AddCommand(newRecordsDeleteCommand(kind))

	return cmd
}

func newRecordsListCommand(kind recordKind) *cobra.Command {
	return &cobra.Command{
		Use:   "list ZONE FQDN",
		Short: "List record ids on a node",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, fqdn := args[0], args[1]

			return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
				ids, ok := kind.list(ctx, client, zone, fqdn)
				if !ok {
					return failure(constants.ErrRecordListFailed, fqdn, client.LastResult())
				}

				return outputList(cmd, "Record ID", ids)
			})
		},
	}
}

func newRecordsGetCommand(kind recordKind) *cobra.Command {
	return &cobra.Command{
		Use:   "get ZONE FQDN ID",
		Short: "Get a record",
		Args:  cobra.ExactArgs(constants.ThreeArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, fqdn, id := args[0], args[1], args[2]

			return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
				record, row, ok := kind.get(ctx, client, zone, fqdn, id)
				if !ok {
					return failure(constants.ErrRecordGetFailed, fqdn+"/"+id, client.LastResult())
				}

				return outputProperties(cmd, record, [][]string{
					{"Zone", zone},
					{"FQDN", fqdn},
					{"Type", string(kind.recordType)},
					{"Record ID", row[0]},
					{"TTL", row[1]},
					{titleCaser.String(kind.valueName), row[2]},
				})
			})
		},
	}
}

func newRecordsAddCommand(kind recordKind) *cobra.Command {
	var ttl int

	cmd := &cobra.Command{
		Use:   "add ZONE FQDN " + kind.valueName,
		Short: "Add a record",
		Long:  "Add a record to a node. A TTL of 0 uses the zone default.",
		Args:  cobra.ExactArgs(constants.ThreeArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, fqdn, value := args[0], args[1], args[2]

			return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
				if !kind.add(ctx, client, zone, fqdn, value, ttl) {
					return failure(constants.ErrRecordAddFailed, fqdn, client.LastResult())
				}

				return outputChange(cmd, string(dynect.ActionCreate), fqdn+" "+string(kind.recordType)+" "+value)
			})
		},
	}

	cmd.Flags().IntVar(&ttl, "ttl", constants.DefaultRecordTTL, "TTL of the record in seconds")

	return cmd
}

func newRecordsDeleteCommand(kind recordKind) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ZONE FQDN ID",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(constants.ThreeArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, fqdn, id := args[0], args[1], args[2]

			return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
				if !kind.remove(ctx, client, zone, fqdn, id) {
					return failure(constants.ErrRecordDeleteFailed, fqdn+"/"+id, client.LastResult())
				}

				return outputChange(cmd, string(dynect.ActionDelete), fqdn+"/"+id)
			})
		},
	}
}
