// Package recordsync reconciles individual A and CNAME records against the
// Dynect API. It sits on top of dynect.Client and turns its boolean results
// into errors, telling "no records" apart from "the call failed".
package recordsync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// Static errors for err113 compliance.
var (
	ErrInvalidRecord  = errors.New("invalid record")
	ErrRecordNotFound = errors.New("no matching record")
	ErrCallFailed     = errors.New("API call failed")
	ErrAddFailed      = errors.New("adding record failed")
	ErrDeleteFailed   = errors.New("deleting record failed")
	ErrPublishFailed  = errors.New("publishing zone failed")
)

// errCodeNotFound is the msgs error code the API uses for a node without
// records of the requested type.
const errCodeNotFound = "NOT_FOUND"

// Record is the desired state of one record.
type Record struct {
	Zone  string
	FQDN  string
	Type  dynect.RecordType
	Value string // IP address for A, target name for CNAME
	TTL   int    // 0 = zone default
}

// Validate checks that the record can be sent to the API.
func (r Record) Validate() error {
	switch {
	case r.Zone == "":
		return fmt.Errorf("%w: zone is required", ErrInvalidRecord)
	case r.FQDN == "":
		return fmt.Errorf("%w: fqdn is required", ErrInvalidRecord)
	case r.Value == "":
		return fmt.Errorf("%w: value is required", ErrInvalidRecord)
	case r.TTL < 0:
		return fmt.Errorf("%w: ttl must not be negative", ErrInvalidRecord)
	case r.Type.Resource() == "":
		return fmt.Errorf("%w: %w %q", ErrInvalidRecord, dynect.ErrUnsupportedRecordType, r.Type)
	}

	return nil
}

// Syncer applies records through a logged-in client.
type Syncer struct {
	client  dynect.Client
	log     logr.Logger
	publish bool
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithoutPublish leaves changes unpublished. By default every change is
// followed by a zone publish.
func WithoutPublish() Option {
	return func(s *Syncer) {
		s.publish = false
	}
}

// New creates a Syncer. The client must already be logged in.
func New(client dynect.Client, log logr.Logger, opts ...Option) *Syncer {
	syncer := &Syncer{
		client:  client,
		log:     log,
		publish: true,
	}

	for _, opt := range opts {
		opt(syncer)
	}

	return syncer
}

// Exists reports whether the node has at least one record of recordType.
func (s *Syncer) Exists(ctx context.Context, zone, fqdn string, recordType dynect.RecordType) (bool, error) {
	s.log.Info("checking if record exists", "zone", zone, "fqdn", fqdn, "type", recordType)

	ids, err := s.recordIDs(ctx, zone, fqdn, recordType)
	if err != nil {
		return false, err
	}

	return len(ids) > 0, nil
}

// Create adds the record without looking at existing ones.
func (s *Syncer) Create(ctx context.Context, record Record) error {
	err := record.Validate()
	if err != nil {
		return err
	}

	s.log.Info("creating record", "zone", record.Zone, "fqdn", record.FQDN, "type", record.Type, "value", record.Value)

	err = s.add(ctx, record)
	if err != nil {
		return err
	}

	return s.publishZone(ctx, record.Zone)
}

// Update replaces every record of the record's type on its node with record.
// It fails with ErrRecordNotFound when there is nothing to replace.
func (s *Syncer) Update(ctx context.Context, record Record) error {
	err := record.Validate()
	if err != nil {
		return err
	}

	s.log.Info("updating record", "zone", record.Zone, "fqdn", record.FQDN, "type", record.Type, "value", record.Value)

	ids, err := s.recordIDs(ctx, record.Zone, record.FQDN, record.Type)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		return fmt.Errorf("%w: %s %s", ErrRecordNotFound, record.Type, record.FQDN)
	}

	return s.replace(ctx, record, ids)
}

// Delete removes every record of recordType on the node.
func (s *Syncer) Delete(ctx context.Context, zone, fqdn string, recordType dynect.RecordType) error {
	if recordType.Resource() == "" {
		return fmt.Errorf("%w: %w %q", ErrInvalidRecord, dynect.ErrUnsupportedRecordType, recordType)
	}

	s.log.Info("deleting record", "zone", zone, "fqdn", fqdn, "type", recordType)

	ids, err := s.recordIDs(ctx, zone, fqdn, recordType)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		return fmt.Errorf("%w: %s %s", ErrRecordNotFound, recordType, fqdn)
	}

	err = s.deleteAll(ctx, zone, fqdn, recordType, ids)
	if err != nil {
		return err
	}

	return s.publishZone(ctx, zone)
}

// Upsert makes record the only record of its type on its node. A node that
// already holds exactly this record is left untouched.
func (s *Syncer) Upsert(ctx context.Context, record Record) error {
	err := record.Validate()
	if err != nil {
		return err
	}

	ids, err := s.recordIDs(ctx, record.Zone, record.FQDN, record.Type)
	if err != nil {
		return fmt.Errorf("upsert check: %w", err)
	}

	if len(ids) == 0 {
		return s.Create(ctx, record)
	}

	if len(ids) == 1 && s.matches(ctx, record, ids[0]) {
		s.log.V(1).Info("record up to date", "zone", record.Zone, "fqdn", record.FQDN, "type", record.Type, "id", ids[0])

		return nil
	}

	s.log.Info("updating record", "zone", record.Zone, "fqdn", record.FQDN, "type", record.Type, "value", record.Value)

	return s.replace(ctx, record, ids)
}

func (s *Syncer) replace(ctx context.Context, record Record, ids []string) error {
	err := s.deleteAll(ctx, record.Zone, record.FQDN, record.Type, ids)
	if err != nil {
		return err
	}

	err = s.add(ctx, record)
	if err != nil {
		return err
	}

	return s.publishZone(ctx, record.Zone)
}

// recordIDs lists the record ids of recordType on a node. A node without such
// records yields an empty list, not an error.
func (s *Syncer) recordIDs(ctx context.Context, zone, fqdn string, recordType dynect.RecordType) ([]string, error) {
	resp := s.client.Execute(ctx, dynect.RecordPath(recordType, zone, fqdn), dynect.VerbGet, nil)
	if resp == nil {
		return nil, fmt.Errorf("%w: listing %s records of %s", ErrCallFailed, recordType, fqdn)
	}

	if !resp.Success() {
		if notFound(resp) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: listing %s records of %s: %s",
			ErrCallFailed, recordType, fqdn, strings.Join(resp.Messages(), "; "))
	}

	uris, ok := dynect.DecodeData[[]string](resp)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected %s list data for %s", ErrCallFailed, recordType, fqdn)
	}

	return dynect.StripURIPrefixes(uris, dynect.RecordURIPrefix(recordType, zone, fqdn)), nil
}

func (s *Syncer) matches(ctx context.Context, record Record, id string) bool {
	var (
		value string
		ttl   int
	)

	switch record.Type {
	case dynect.RecordTypeA:
		current, ok := s.client.ARecords().Get(ctx, record.Zone, record.FQDN, id)
		if !ok {
			return false
		}

		value, ttl = current.RData.Address, current.TTL
	case dynect.RecordTypeCNAME:
		current, ok := s.client.CNAMERecords().Get(ctx, record.Zone, record.FQDN, id)
		if !ok {
			return false
		}

		value, ttl = current.RData.CNAME, current.TTL
	default:
		return false
	}

	if record.TTL != 0 && record.TTL != ttl {
		return false
	}

	return canonicalValue(value) == canonicalValue(record.Value)
}

func (s *Syncer) add(ctx context.Context, record Record) error {
	var ok bool

	switch record.Type {
	case dynect.RecordTypeA:
		ok = s.client.ARecords().Add(ctx, record.Zone, record.FQDN, record.Value, record.TTL)
	case dynect.RecordTypeCNAME:
		ok = s.client.CNAMERecords().Add(ctx, record.Zone, record.FQDN, record.Value, record.TTL)
	}

	if !ok {
		return fmt.Errorf("%w: %s %s -> %s", ErrAddFailed, record.Type, record.FQDN, record.Value)
	}

	s.log.Info("record created", "zone", record.Zone, "fqdn", record.FQDN, "type", record.Type)

	return nil
}

func (s *Syncer) deleteAll(ctx context.Context, zone, fqdn string, recordType dynect.RecordType, ids []string) error {
	for _, id := range ids {
		var ok bool

		switch recordType {
		case dynect.RecordTypeA:
			ok = s.client.ARecords().Delete(ctx, zone, fqdn, id)
		case dynect.RecordTypeCNAME:
			ok = s.client.CNAMERecords().Delete(ctx, zone, fqdn, id)
		}

		if !ok {
			return fmt.Errorf("%w: %s %s id %s", ErrDeleteFailed, recordType, fqdn, id)
		}

		s.log.Info("record deleted", "zone", zone, "fqdn", fqdn, "type", recordType, "id", id)
	}

	return nil
}

func (s *Syncer) publishZone(ctx context.Context, zone string) error {
	if !s.publish {
		return nil
	}

	if !s.client.Zones().Publish(ctx, zone) {
		return fmt.Errorf("%w: %s", ErrPublishFailed, zone)
	}

	s.log.V(1).Info("zone published", "zone", zone)

	return nil
}

func notFound(resp *dynect.RawResponse) bool {
	for _, msg := range resp.Msgs {
		if msg.ErrorCode == errCodeNotFound {
			return true
		}
	}

	return false
}

func canonicalValue(value string) string {
	return strings.ToLower(strings.TrimSuffix(value, "."))
}
