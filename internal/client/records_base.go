package client

import (
	"context"

	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// Record is a record type with typed rdata.
type Record interface {
	dynect.ARecord | dynect.CNAMERecord
}

// RecordsClient provides the operations shared by every record type.
type RecordsClient[T Record] struct {
	client     *Client
	recordType dynect.RecordType
}

// NewRecordsClient creates a new generic records client.
func NewRecordsClient[T Record](client *Client, recordType dynect.RecordType) *RecordsClient[T] {
	return &RecordsClient[T]{
		client:     client,
		recordType: recordType,
	}
}

// Delete deletes one record by id.
func (c *RecordsClient[T]) Delete(ctx context.Context, zone, fqdn, id string) bool {
	path := dynect.RecordIDPath(c.recordType, zone, fqdn, id)
	if !c.client.Execute(ctx, path, dynect.VerbDelete, nil).Success() {
		return false
	}

	c.client.emit(ctx, &dynect.ChangeEvent{
		Action:     dynect.ActionDelete,
		Resource:   c.recordType.Resource(),
		Zone:       zone,
		FQDN:       fqdn,
		RecordType: c.recordType,
		RecordID:   id,
	})

	return true
}

// Get retrieves one record by id.
func (c *RecordsClient[T]) Get(ctx context.Context, zone, fqdn, id string) (*T, bool) {
	resp := c.client.Execute(ctx, dynect.RecordIDPath(c.recordType, zone, fqdn, id), dynect.VerbGet, nil)
	if !dynect.HasData(resp) {
		return nil, false
	}

	record, ok := dynect.DecodeData[T](resp)
	if !ok {
		return nil, false
	}

	return &record, true
}

// List returns the ids of the records of this type on a node. A node without
// such records reports false, the same as a failed call.
func (c *RecordsClient[T]) List(ctx context.Context, zone, fqdn string) ([]string, bool) {
	resp := c.client.Execute(ctx, dynect.RecordPath(c.recordType, zone, fqdn), dynect.VerbGet, nil)
	if !dynect.HasData(resp) {
		return nil, false
	}

	uris, ok := dynect.DecodeData[[]string](resp)
	if !ok {
		return nil, false
	}

	return dynect.StripURIPrefixes(uris, dynect.RecordURIPrefix(c.recordType, zone, fqdn)), true
}

func (c *RecordsClient[T]) add(ctx context.Context, zone, fqdn string, rdata dynect.Payload, value string, ttl int) bool {
	payload := dynect.Payload{
		"rdata": rdata,
		"ttl":   ttl,
	}

	if !c.client.Execute(ctx, dynect.RecordPath(c.recordType, zone, fqdn), dynect.VerbPost, payload).Success() {
		return false
	}

	c.client.emit(ctx, &dynect.ChangeEvent{
		Action:     dynect.ActionCreate,
		Resource:   c.recordType.Resource(),
		Zone:       zone,
		FQDN:       fqdn,
		RecordType: c.recordType,
		Value:      value,
	})

	return true
}
