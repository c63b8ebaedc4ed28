package events

import (
	"encoding/json"
	"time"
)

// Frame names recognized by stream consumers.
const (
	FrameStep     = "step"
	FrameResult   = "result"
	FrameProgress = "progress"
	FramePing     = "ping"
)

// Frame is one unit on a run's event stream: a named event plus its JSON
// payload, delivered to the consumer in exactly the order produced.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// NewFrame marshals payload into a Frame. A marshal failure degrades to an
// empty payload rather than breaking the stream.
func NewFrame(event string, payload any) Frame {
	var raw json.RawMessage
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			raw = b
		}
	}
	return Frame{Event: event, Data: raw}
}

// Envelope is the firehose wire form published through the Hub.
type Envelope struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MakeEvent builds an Envelope JSON string for Hub publication.
func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Envelope{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
