package client

import (
	"context"

	"github.com/fivetwenty-io/dynect/internal/constants"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// ZonesClient implements dynect.ZonesClient.
type ZonesClient struct {
	client *Client
}

// NewZonesClient creates a new zones client.
func NewZonesClient(client *Client) *ZonesClient {
	return &ZonesClient{client: client}
}

// Create creates a zone owned by contact. Both contact and name are required;
// without them no call is made. A ttl of zero or less uses the default zone
// TTL of 3600 seconds.
func (c *ZonesClient) Create(ctx context.Context, contact, name string, ttl int) bool {
	if contact == "" || name == "" {
		c.client.logger.Warn("Zone create needs a contact and a zone name", map[string]interface{}{
			"contact": contact,
			"zone":    name,
		})

		return false
	}

	if ttl <= 0 {
		ttl = constants.DefaultZoneTTL
	}

	payload := dynect.Payload{
		"rname": contact,
		"zone":  name,
		"ttl":   ttl,
	}

	if !c.client.Execute(ctx, dynect.ZonePath(name), dynect.VerbPost, payload).Success() {
		return false
	}

	c.client.emit(ctx, &dynect.ChangeEvent{
		Action:   dynect.ActionCreate,
		Resource: dynect.ResourceZone,
		Zone:     name,
		Value:    contact,
	})

	return true
}

// Delete deletes a zone.
func (c *ZonesClient) Delete(ctx context.Context, zone string) bool {
	return c.change(ctx, zone, dynect.VerbDelete, nil, dynect.ActionDelete)
}

// Publish publishes pending changes of a zone.
func (c *ZonesClient) Publish(ctx context.Context, zone string) bool {
	return c.change(ctx, zone, dynect.VerbPut, dynect.Payload{"publish": true}, dynect.ActionPublish)
}

// Freeze freezes a zone against further changes.
func (c *ZonesClient) Freeze(ctx context.Context, zone string) bool {
	return c.change(ctx, zone, dynect.VerbPut, dynect.Payload{"freeze": true}, dynect.ActionFreeze)
}

// Thaw unfreezes a zone.
func (c *ZonesClient) Thaw(ctx context.Context, zone string) bool {
	return c.change(ctx, zone, dynect.VerbPut, dynect.Payload{"thaw": true}, dynect.ActionThaw)
}

// Get retrieves a zone.
func (c *ZonesClient) Get(ctx context.Context, zone string) (*dynect.Zone, bool) {
	resp := c.client.Execute(ctx, dynect.ZonePath(zone), dynect.VerbGet, nil)
	if !dynect.HasData(resp) {
		return nil, false
	}

	data, ok := dynect.DecodeData[dynect.Zone](resp)
	if !ok {
		return nil, false
	}

	return &data, true
}

// List returns the names of all zones visible to the session.
func (c *ZonesClient) List(ctx context.Context) ([]string, bool) {
	resp := c.client.Execute(ctx, dynect.ResourceZone, dynect.VerbGet, nil)

	uris, ok := dynect.DecodeData[[]string](resp)
	if !ok {
		return nil, false
	}

	return dynect.StripURIPrefixes(uris, dynect.ZoneURIPrefix()), true
}

func (c *ZonesClient) change(
	ctx context.Context,
	zone string,
	verb dynect.Verb,
	payload dynect.Payload,
	action dynect.ChangeAction,
) bool {
	if !c.client.Execute(ctx, dynect.ZonePath(zone), verb, payload).Success() {
		return false
	}

	c.client.emit(ctx, &dynect.ChangeEvent{
		Action:   action,
		Resource: dynect.ResourceZone,
		Zone:     zone,
	})

	return true
}
