package a2a

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Handler serves the JSON-RPC 2.0 endpoint.
type Handler struct {
	agent *Agent
}

// NewHandler creates the protocol handler for an agent.
func NewHandler(agent *Agent) *Handler {
	return &Handler{agent: agent}
}

// ServeHTTP handles a JSON-RPC request for the message/send and
// execute methods.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, nil, CodeParseError, "Invalid JSON")
		return
	}

	id := raw["id"]

	var version string
	if err := json.Unmarshal(raw["jsonrpc"], &version); err != nil || version != Version {
		writeError(w, id, CodeInvalidRequest, "Invalid JSON-RPC version, must be '2.0'")
		return
	}
	if len(id) == 0 {
		writeError(w, nil, CodeInvalidRequest, "Missing required field 'id'")
		return
	}

	var req Request
	if err := unmarshalRequest(raw, &req); err != nil {
		writeError(w, id, CodeInvalidRequest, fmt.Sprintf("Invalid request format: %v", err))
		return
	}
	req.ID = id

	log.Printf("a2a: received %s request (id: %s)", req.Method, string(req.ID))

	switch req.Method {
	case MethodMessageSend, MethodExecute:
	default:
		writeError(w, id, CodeMethodNotFound, fmt.Sprintf("Method '%s' not found", req.Method))
		return
	}

	if req.Params == nil {
		writeError(w, id, CodeInvalidParams, "Missing required 'params' field")
		return
	}
	if len(req.Params.Messages) == 0 {
		writeError(w, id, CodeInvalidParams, "At least one message is required")
		return
	}

	result := h.agent.ProcessMessages(r.Context(), req.Params)

	writeJSON(w, http.StatusOK, Response{
		JSONRPC: Version,
		ID:      id,
		Result:  result,
	})
}

func unmarshalRequest(raw map[string]json.RawMessage, req *Request) error {
	var method string
	if err := json.Unmarshal(raw["method"], &method); err != nil {
		return fmt.Errorf("invalid 'method' field")
	}
	req.Method = method
	req.JSONRPC = Version

	if params, ok := raw["params"]; ok {
		req.Params = &Params{}
		if err := json.Unmarshal(params, req.Params); err != nil {
			return fmt.Errorf("invalid 'params' field: %w", err)
		}
	}
	return nil
}

func writeError(w http.ResponseWriter, id json.RawMessage, code int, message string) {
	log.Printf("a2a: request error %d: %s", code, message)
	writeJSON(w, HTTPStatus(code), Response{
		JSONRPC: Version,
		ID:      id,
		Error:   &Error{Code: code, Message: message},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("a2a: encoding response failed: %v", err)
	}
}
