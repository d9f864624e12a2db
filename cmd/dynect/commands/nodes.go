package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dynect/internal/constants"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// NewNodesCommand creates the nodes command group.
func NewNodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"node"},
		Short:   "Manage nodes",
		Long:    "List the nodes of a zone and delete nodes with all their records",
	}

	cmd.AddCommand(newNodesListCommand())
	cmd.AddCommand(newNodesDeleteCommand())

	return cmd
}

func newNodesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list ZONE [FQDN]",
		Short: "List nodes",
		Long:  "List the nodes of ZONE, or the nodes at and below FQDN",
		Args:  cobra.RangeArgs(1, constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone := args[0]

			fqdn := ""
			if len(args) > 1 {
				fqdn = args[1]
			}

			return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
				nodes, ok := client.Nodes().List(ctx, zone, fqdn)
				if !ok {
					return failure(constants.ErrNodeListFailed, zone, client.LastResult())
				}

				return outputList(cmd, "Node", nodes)
			})
		},
	}
}

func newNodesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ZONE FQDN",
		Short: "Delete a node",
		Long:  "Delete a node and every record on it. The change is pending until the zone is published.",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, fqdn := args[0], args[1]

			return withSession(cmd, func(ctx context.Context, client dynect.Client) error {
				if !client.Nodes().Delete(ctx, zone, fqdn) {
					return failure(constants.ErrNodeDeleteFailed, fqdn, client.LastResult())
				}

				return outputChange(cmd, string(dynect.ActionDelete), fqdn)
			})
		},
	}
}
