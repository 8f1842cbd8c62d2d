// Package bridge connects the front end's invoke() calls to the command registry.
package bridge

import "encoding/json"

// Request is one invocation sent by the front-end shim.
type Request struct {
	ID   string          `json:"id"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response answers a Request. Result is set only when OK, Error only when not.
type Response struct {
	ID     string `json:"id"`
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func failure(id string, err error) Response {
	return Response{ID: id, OK: false, Error: err.Error()}
}
