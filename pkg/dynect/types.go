package dynect

import (
	"time"

	"github.com/fivetwenty-io/dynect/internal/constants"
)

// Verb is the HTTP method of an API call.
type Verb string

// Supported verbs.
const (
	VerbGet    Verb = "GET"
	VerbPost   Verb = "POST"
	VerbPut    Verb = "PUT"
	VerbDelete Verb = "DELETE"
)

// Valid reports whether v is one of the supported verbs.
func (v Verb) Valid() bool {
	switch v {
	case VerbGet, VerbPost, VerbPut, VerbDelete:
		return true
	default:
		return false
	}
}

// Payload is the JSON request body of an API call.
type Payload map[string]interface{}

// Credentials identifies an API user. The fields are posted to the Session
// endpoint as-is.
type Credentials struct {
	CustomerName string `json:"customer_name" yaml:"customer_name" validate:"required"`
	UserName     string `json:"user_name"     yaml:"user_name"     validate:"required"`
	Password     string `json:"password"      yaml:"password"      validate:"required"`
}

// Payload returns the login request body.
func (c Credentials) Payload() Payload {
	return Payload{
		"customer_name": c.CustomerName,
		"user_name":     c.UserName,
		"password":      c.Password,
	}
}

// Empty reports whether no credential field is set.
func (c Credentials) Empty() bool {
	return c.CustomerName == "" && c.UserName == "" && c.Password == ""
}

// String masks the password.
func (c Credentials) String() string {
	return c.CustomerName + "/" + c.UserName + ":" + constants.MaskedSecret
}

// SessionData is the data of a successful login.
type SessionData struct {
	Token   string `json:"token"   yaml:"token"`
	Version string `json:"version" yaml:"version"`
}

// Zone represents a DNS zone.
type Zone struct {
	Zone        string `json:"zone"         yaml:"zone"`
	Serial      int64  `json:"serial"       yaml:"serial"`
	SerialStyle string `json:"serial_style" yaml:"serial_style"`
	ZoneType    string `json:"zone_type"    yaml:"zone_type"`
}

// ARecordData is the rdata of an A record.
type ARecordData struct {
	Address string `json:"address" yaml:"address"`
}

// ARecord represents an A record.
type ARecord struct {
	Zone       string      `json:"zone"        yaml:"zone"`
	FQDN       string      `json:"fqdn"        yaml:"fqdn"`
	RecordType string      `json:"record_type" yaml:"record_type"`
	RecordID   int64       `json:"record_id"   yaml:"record_id"`
	TTL        int         `json:"ttl"         yaml:"ttl"`
	RData      ARecordData `json:"rdata"       yaml:"rdata"`
}

// CNAMERecordData is the rdata of a CNAME record.
type CNAMERecordData struct {
	CNAME string `json:"cname" yaml:"cname"`
}

// CNAMERecord represents a CNAME record.
type CNAMERecord struct {
	Zone       string          `json:"zone"        yaml:"zone"`
	FQDN       string          `json:"fqdn"        yaml:"fqdn"`
	RecordType string          `json:"record_type" yaml:"record_type"`
	RecordID   int64           `json:"record_id"   yaml:"record_id"`
	TTL        int             `json:"ttl"         yaml:"ttl"`
	RData      CNAMERecordData `json:"rdata"       yaml:"rdata"`
}

// ChangeAction names a mutating operation.
type ChangeAction string

// Change actions.
const (
	ActionCreate  ChangeAction = "create"
	ActionDelete  ChangeAction = "delete"
	ActionPublish ChangeAction = "publish"
	ActionFreeze  ChangeAction = "freeze"
	ActionThaw    ChangeAction = "thaw"
)

// ChangeEvent describes a successful mutating call.
type ChangeEvent struct {
	Action     ChangeAction `json:"action"                yaml:"action"`
	Resource   string       `json:"resource"              yaml:"resource"`
	Zone       string       `json:"zone"                  yaml:"zone"`
	FQDN       string       `json:"fqdn,omitempty"        yaml:"fqdn,omitempty"`
	RecordType RecordType   `json:"record_type,omitempty" yaml:"record_type,omitempty"`
	RecordID   string       `json:"record_id,omitempty"   yaml:"record_id,omitempty"`
	Value      string       `json:"value,omitempty"       yaml:"value,omitempty"`
	Time       time.Time    `json:"time"                  yaml:"time"`
}
