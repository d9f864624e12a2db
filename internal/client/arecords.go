package client

import (
	"context"

	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// ARecordsClient implements dynect.ARecordsClient.
type ARecordsClient struct {
	*RecordsClient[dynect.ARecord]
}

// NewARecordsClient creates a new A records client.
func NewARecordsClient(client *Client) *ARecordsClient {
	return &ARecordsClient{
		RecordsClient: NewRecordsClient[dynect.ARecord](client, dynect.RecordTypeA),
	}
}

// Add creates an A record pointing fqdn at address. A ttl of zero leaves the
// TTL to the zone default.
func (c *ARecordsClient) Add(ctx context.Context, zone, fqdn, address string, ttl int) bool {
	return c.add(ctx, zone, fqdn, dynect.Payload{"address": address}, address, ttl)
}
