package dynect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/dynect/internal/constants"
)

// Message is one entry of the msgs array of a response.
type Message struct {
	Info      string `json:"INFO"   yaml:"info"`
	Source    string `json:"SOURCE" yaml:"source"`
	ErrorCode string `json:"ERR_CD" yaml:"error_code"`
	Level     string `json:"LVL"    yaml:"level"`
}

// String implements fmt.Stringer.
func (m Message) String() string {
	if m.ErrorCode != "" {
		return fmt.Sprintf("%s: %s (%s)", m.Source, m.Info, m.ErrorCode)
	}

	return fmt.Sprintf("%s: %s", m.Source, m.Info)
}

// Response is the envelope wrapping every API response. Only Status decides
// success; JobID and Msgs are informational.
type Response[T any] struct {
	Status string    `json:"status"           yaml:"status"`
	Data   T         `json:"data"             yaml:"data"`
	JobID  int64     `json:"job_id,omitempty" yaml:"job_id,omitempty"`
	Msgs   []Message `json:"msgs,omitempty"   yaml:"msgs,omitempty"`
}

// RawResponse is an envelope whose data has not been decoded yet.
type RawResponse = Response[json.RawMessage]

// Success reports whether the envelope status is exactly "success".
// A nil response is never successful.
func (r *Response[T]) Success() bool {
	return r != nil && r.Status == constants.StatusSuccess
}

// Messages renders the response messages, for logging.
func (r *Response[T]) Messages() []string {
	if r == nil {
		return nil
	}

	messages := make([]string, 0, len(r.Msgs))
	for _, msg := range r.Msgs {
		messages = append(messages, msg.String())
	}

	return messages
}

// ParseResponse parses a raw response body into an envelope.
func ParseResponse(body []byte) (*RawResponse, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyResponse
	}

	var resp RawResponse

	err := json.Unmarshal(body, &resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return &resp, nil
}

// DecodeData decodes the data of a successful envelope into T. It returns
// false when the envelope is nil, unsuccessful, lacks a data field, or the
// data does not match T. An explicit null decodes to the zero value.
func DecodeData[T any](resp *RawResponse) (T, bool) {
	var data T

	if !resp.Success() || len(resp.Data) == 0 {
		return data, false
	}

	err := json.Unmarshal(resp.Data, &data)
	if err != nil {
		return data, false
	}

	return data, true
}

// HasData reports whether the envelope carries a non-empty data field. Null,
// "", [] and {} all count as empty.
func HasData(resp *RawResponse) bool {
	if resp == nil {
		return false
	}

	switch strings.TrimSpace(string(resp.Data)) {
	case "", "null", `""`, "[]", "{}", "false", "0":
		return false
	default:
		return true
	}
}
