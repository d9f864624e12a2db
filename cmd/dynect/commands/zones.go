package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dynect/internal/constants"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// NewZonesCommand creates the zones command group.
func NewZonesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "zones",
		Aliases: []string{"zone"},
		Short:   "Manage zones",
		Long:    "List, inspect, create and delete zones and control zone publishing",
	}

	cmd.AddCommand(newZonesListCommand())
	cmd.AddCommand(newZonesGetCommand())
	cmd.AddCommand(newZonesCreateCommand())
	cmd.AddCommand(newZoneChangeCommand("delete", "Delete a zone", constants.ErrZoneDeleteFailed,
		func(ctx context.Context, zones dynect.ZonesClient, zone string) bool { return zones.Delete(ctx, zone) }))
	cmd.AddCommand(newZoneChangeCommand("publish", "Publish pending zone changes", constants.ErrZonePublishFailed,
		func(ctx context.Context, zones dynect.ZonesClient, zone string) bool { return zones.Publish(ctx, zone) }))
	cmd.AddCommand(newZoneChangeCommand("freeze", "Freeze a zone against changes", constants.ErrZoneFreezeFailed,
		func(ctx context.Context, zones dynect.ZonesClient, zone string) bool { return zones.Freeze(ctx, zone) }))
	cmd.AddCommand(newZoneChangeCommand("thaw", "Thaw a frozen zone", constants.ErrZoneThawFailed,
		func(ctx context.Context, zones dynect.ZonesClient, zone string) bool { return zones.Thaw(ctx, zone) }))

	return cmd
}

func newZonesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List zones",
		Long:  "List the zones of the customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
				zones, ok := client.Zones().List(ctx)
				if !ok {
					return failure(constants.ErrZoneListFailed, "zones", client.LastResult())
				}

				return outputList(cmd, "Zone", zones)
			})
		},
	}
}

func newZonesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ZONE",
		Short: "Get zone details",
		Long:  "Display serial and type of a zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
				zone, ok := client.Zones().Get(ctx, name)
				if !ok {
					return failure(constants.ErrZoneGetFailed, name, client.LastResult())
				}

				return outputProperties(cmd, zone, [][]string{
					{"Zone", zone.Zone},
					{"Serial", strconv.FormatInt(zone.Serial, 10)},
					{"Serial Style", valueOrNA(zone.SerialStyle)},
					{"Type", valueOrNA(zone.ZoneType)},
				})
			})
		},
	}
}

func newZonesCreateCommand() *cobra.Command {
	var ttl int

	cmd := &cobra.Command{
		Use:   "create CONTACT ZONE",
		Short: "Create a zone",
		Long:  "Create a primary zone. CONTACT is the administrative email address of the zone.",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			contact, name := args[0], args[1]

			return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
				if !client.Zones().Create(ctx, contact, name, ttl) {
					return failure(constants.ErrZoneCreateFailed, name, client.LastResult())
				}

				return outputChange(cmd, string(dynect.ActionCreate), name)
			})
		},
	}

	cmd.Flags().IntVar(&ttl, "ttl", constants.DefaultZoneTTL, "default TTL of the zone in seconds")

	return cmd
}

type zoneChange func(ctx context.Context, zones dynect.ZonesClient, zone string) bool

func newZoneChangeCommand(action, short string, errFailed error, change zoneChange) *cobra.Command {
	return &cobra.Command{
		Use:   action + " ZONE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
				if !change(ctx, client.Zones(), name) {
					return failure(errFailed, name, client.LastResult())
				}

				return outputChange(cmd, action, name)
			})
		},
	}
}
