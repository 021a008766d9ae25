// Package ipc carries hub.Action batches and status queries between the
// dome CLI and the daemon over a Unix-domain socket, using a simple
// newline-delimited JSON request/response envelope.
package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/1broseidon/dome/internal/hub"
)

// CommandType names one kind of request the daemon understands.
type CommandType string

const (
	CommandApply     CommandType = "APPLY"      // run a batch of hub.Action
	CommandReload    CommandType = "RELOAD"     // force a config re-read
	CommandGetStatus CommandType = "GET_STATUS"
	CommandSnapshot  CommandType = "SNAPSHOT" // current workspace's placement set
)

// Request is one IPC request from client to server.
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is one IPC response from server to client.
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// ApplyPayload carries the action batch for CommandApply, the same
// shape hub.Event.Actions expects from ApplyEvent.
type ApplyPayload struct {
	Actions []hub.Action `json:"actions"`
}

// StatusData is the data returned by CommandGetStatus.
type StatusData struct {
	UptimeSeconds   int64 `json:"uptime_seconds"`
	MonitorCount    int   `json:"monitor_count"`
	WorkspaceCount  int   `json:"workspace_count"`
	FocusedMonitor  int   `json:"focused_monitor"`
	DaemonRunning   bool  `json:"daemon_running"`
}

// SnapshotData is the data returned by CommandSnapshot.
type SnapshotData struct {
	Snapshot hub.Snapshot `json:"snapshot"`
}

// NewOKResponse builds a successful response, marshalling data if given.
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("marshal response data: %w", err)
		}
		dataBytes = b
	}
	return &Response{Status: "OK", Data: dataBytes}, nil
}

// NewErrorResponse builds an error response carrying msg.
func NewErrorResponse(msg string) *Response {
	return &Response{Status: "ERROR", Error: msg}
}

// ParseRequest decodes a Request from JSON bytes.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}
	return &req, nil
}

// Marshal encodes a Response to JSON bytes.
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
