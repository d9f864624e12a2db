package client

import (
	"context"

	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// CNAMERecordsClient implements dynect.CNAMERecordsClient.
type CNAMERecordsClient struct {
	*RecordsClient[dynect.CNAMERecord]
}

// NewCNAMERecordsClient creates a new CNAME records client.
func NewCNAMERecordsClient(client *Client) *CNAMERecordsClient {
	return &CNAMERecordsClient{
		RecordsClient: NewRecordsClient[dynect.CNAMERecord](client, dynect.RecordTypeCNAME),
	}
}

// Add creates a CNAME record on fqdn pointing at cname.
func (c *CNAMERecordsClient) Add(ctx context.Context, zone, fqdn, cname string, ttl int) bool {
	return c.add(ctx, zone, fqdn, dynect.Payload{"cname": cname}, cname, ttl)
}
