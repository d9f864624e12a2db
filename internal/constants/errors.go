package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentials       = errors.New("no credentials configured, set customer, username and password")
	ErrInvalidCredentials  = errors.New("invalid credentials configuration")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
)

// Session errors.
var (
	ErrLoginFailed  = errors.New("login failed, check customer, username and password")
	ErrLogoutFailed = errors.New("logout failed")
)

// Zone errors.
var (
	ErrZoneCreateFailed  = errors.New("zone create failed")
	ErrZoneDeleteFailed  = errors.New("zone delete failed")
	ErrZonePublishFailed = errors.New("zone publish failed")
	ErrZoneFreezeFailed  = errors.New("zone freeze failed")
	ErrZoneThawFailed    = errors.New("zone thaw failed")
	ErrZoneGetFailed     = errors.New("zone lookup failed")
	ErrZoneListFailed    = errors.New("zone list failed")
)

// Node errors.
var (
	ErrNodeDeleteFailed = errors.New("node delete failed")
	ErrNodeListFailed   = errors.New("node list failed")
)

// Record errors.
var (
	ErrRecordAddFailed    = errors.New("record add failed")
	ErrRecordDeleteFailed = errors.New("record delete failed")
	ErrRecordGetFailed    = errors.New("record lookup failed")
	ErrRecordListFailed   = errors.New("no records found or record list failed")
	ErrUnsupportedRecord  = errors.New("unsupported record type, expected A or CNAME")
)
