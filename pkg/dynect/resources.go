package dynect

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/dynect/internal/constants"
)

// API resource names.
const (
	ResourceSession     = "Session"
	ResourceZone        = "Zone"
	ResourceNode        = "Node"
	ResourceNodeList    = "NodeList"
	ResourceARecord     = "ARecord"
	ResourceCNAMERecord = "CNAMERecord"
)

// RecordType is a DNS record type supported by the client.
type RecordType string

// Supported record types.
const (
	RecordTypeA     RecordType = "A"
	RecordTypeCNAME RecordType = "CNAME"
)

// ParseRecordType parses a record type name, case-insensitively.
func ParseRecordType(name string) (RecordType, error) {
	switch RecordType(strings.ToUpper(strings.TrimSpace(name))) {
	case RecordTypeA:
		return RecordTypeA, nil
	case RecordTypeCNAME:
		return RecordTypeCNAME, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedRecordType, name)
	}
}

// Resource returns the API resource that manages records of this type, or ""
// for an unsupported type.
func (t RecordType) Resource() string {
	switch t {
	case RecordTypeA:
		return ResourceARecord
	case RecordTypeCNAME:
		return ResourceCNAMERecord
	default:
		return ""
	}
}

// ZonePath returns the resource path of a zone.
func ZonePath(zone string) string {
	return ResourceZone + "/" + zone
}

// NodePath returns the resource path of a node.
func NodePath(zone, fqdn string) string {
	return ResourceNode + "/" + zone + "/" + fqdn
}

// NodeListPath returns the node list path of a zone, optionally rooted at fqdn.
func NodeListPath(zone, fqdn string) string {
	path := ResourceNodeList + "/" + zone
	if fqdn != "" {
		path += "/" + fqdn
	}

	return path
}

// RecordPath returns the path of all records of type t on a node.
func RecordPath(t RecordType, zone, fqdn string) string {
	return t.Resource() + "/" + zone + "/" + fqdn
}

// RecordIDPath returns the path of a single record.
func RecordIDPath(t RecordType, zone, fqdn, id string) string {
	return RecordPath(t, zone, fqdn) + "/" + id
}

// ZoneURIPrefix is the prefix of the zone URIs returned by a zone list.
func ZoneURIPrefix() string {
	return constants.URIPrefix + ResourceZone + "/"
}

// RecordURIPrefix is the prefix of the record URIs returned by a record list.
func RecordURIPrefix(t RecordType, zone, fqdn string) string {
	return constants.URIPrefix + RecordPath(t, zone, fqdn) + "/"
}

// StripURIPrefix turns a resource URI such as "/REST/Zone/example.com/" into
// its bare identifier, here "example.com". Values without the prefix are only
// stripped of trailing slashes.
func StripURIPrefix(uri, prefix string) string {
	return strings.TrimRight(strings.TrimPrefix(uri, prefix), "/")
}

// StripURIPrefixes applies StripURIPrefix to every entry.
func StripURIPrefixes(uris []string, prefix string) []string {
	ids := make([]string, 0, len(uris))
	for _, uri := range uris {
		ids = append(ids, StripURIPrefix(uri, prefix))
	}

	return ids
}
