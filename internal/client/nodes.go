package client

import (
	"context"

	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// NodesClient implements dynect.NodesClient.
type NodesClient struct {
	client *Client
}

// NewNodesClient creates a new nodes client.
func NewNodesClient(client *Client) *NodesClient {
	return &NodesClient{client: client}
}

// Delete removes a node and every record below it.
func (c *NodesClient) Delete(ctx context.Context, zone, fqdn string) bool {
	if !c.client.Execute(ctx, dynect.NodePath(zone, fqdn), dynect.VerbDelete, nil).Success() {
		return false
	}

	c.client.emit(ctx, &dynect.ChangeEvent{
		Action:   dynect.ActionDelete,
		Resource: dynect.ResourceNode,
		Zone:     zone,
		FQDN:     fqdn,
	})

	return true
}

// List returns the node names of a zone. A non-empty fqdn restricts the list
// to that node and its children.
func (c *NodesClient) List(ctx context.Context, zone, fqdn string) ([]string, bool) {
	resp := c.client.Execute(ctx, dynect.NodeListPath(zone, fqdn), dynect.VerbGet, nil)

	nodes, ok := dynect.DecodeData[[]string](resp)
	if !ok {
		return nil, false
	}

	if nodes == nil {
		nodes = []string{}
	}

	return nodes, true
}
