// Package a2a implements the agent-to-agent protocol over JSON-RPC 2.0.
package a2a

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Version is the JSON-RPC protocol version.
const Version = "2.0"

// Message roles.
const (
	RoleUser   = "user"
	RoleAgent  = "agent"
	RoleSystem = "system"
)

// Message part kinds.
const (
	KindText = "text"
	KindData = "data"
)

// Task states.
const (
	StateWorking       = "working"
	StateCompleted     = "completed"
	StateInputRequired = "input-required"
	StateFailed        = "failed"
)

// Supported methods.
const (
	MethodMessageSend = "message/send"
	MethodExecute     = "execute"
)

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// MessagePart is one piece of a message, either plain text or
// structured data.
type MessagePart struct {
	Kind     string `json:"kind"`
	Text     string `json:"text,omitempty"`
	Data     any    `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// TextPart wraps text in a message part.
func TextPart(text string) MessagePart {
	return MessagePart{Kind: KindText, Text: text}
}

// DataPart wraps structured data in a message part.
func DataPart(data any) MessagePart {
	return MessagePart{Kind: KindData, Data: data}
}

// Message is a single conversation turn.
type Message struct {
	Role      string        `json:"role"`
	Parts     []MessagePart `json:"parts"`
	MessageID string        `json:"messageId"`
	ContextID string        `json:"contextId,omitempty"`
	TaskID    string        `json:"taskId,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewAgentMessage creates an agent message carrying the given parts.
func NewAgentMessage(contextID, taskID string, parts ...MessagePart) Message {
	return Message{
		Role:      RoleAgent,
		Parts:     parts,
		MessageID: uuid.NewString(),
		ContextID: contextID,
		TaskID:    taskID,
		Timestamp: time.Now().UTC(),
	}
}

// TaskStatus tracks the state of a task.
type TaskStatus struct {
	State     string    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
}

// Artifact is an output produced by the agent.
type Artifact struct {
	ArtifactID string        `json:"artifactId"`
	Name       string        `json:"name"`
	Parts      []MessagePart `json:"parts"`
}

// NewArtifact creates a named artifact with the given parts.
func NewArtifact(name string, parts ...MessagePart) Artifact {
	return Artifact{
		ArtifactID: uuid.NewString(),
		Name:       name,
		Parts:      parts,
	}
}

// TaskResult is the outcome of processing one request.
type TaskResult struct {
	TaskID    string     `json:"taskId"`
	ContextID string     `json:"contextId"`
	Status    TaskStatus `json:"status"`
	Artifacts []Artifact `json:"artifacts"`
	History   []Message  `json:"history"`
	Kind      string     `json:"kind"`
}

// Params carries the inputs of a message/send or execute call. Both
// methods share the same shape.
type Params struct {
	ContextID string    `json:"contextId"`
	TaskID    string    `json:"taskId"`
	Messages  []Message `json:"messages"`
}

// Request is a JSON-RPC 2.0 request. The ID is kept raw so string and
// numeric identifiers round-trip unchanged.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  *Params         `json:"params"`
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Response is a JSON-RPC 2.0 response carrying either a result or an
// error.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  *TaskResult     `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// HTTPStatus maps a JSON-RPC error code to an HTTP status code.
func HTTPStatus(code int) int {
	switch code {
	case CodeParseError, CodeInvalidRequest, CodeInvalidParams:
		return http.StatusBadRequest
	case CodeMethodNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
