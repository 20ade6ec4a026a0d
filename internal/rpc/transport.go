package rpc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// StdioTransport handles JSON-RPC communication over line-delimited JSON
type StdioTransport struct {
	scanner *bufio.Scanner
	out     io.Writer
	handler *Handler
}

// NewStdioTransport creates a transport reading requests from in and
// writing responses to out
func NewStdioTransport(handler *Handler, in io.Reader, out io.Writer) *StdioTransport {
	return &StdioTransport{
		scanner: bufio.NewScanner(in),
		out:     out,
		handler: handler,
	}
}

// Start reads requests until in is exhausted
func (t *StdioTransport) Start() error {
	for t.scanner.Scan() {
		line := t.scanner.Text()

		var req JSONRPCRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			t.sendError(nil, -32700, "Parse error")
			continue
		}

		response := t.handler.Handle(&req)

		respJSON, _ := json.Marshal(response)
		fmt.Fprintln(t.out, string(respJSON))
	}
	return t.scanner.Err()
}

func (t *StdioTransport) sendError(id interface{}, code int, message string) {
	response := &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &JSONRPCError{
			Code:    code,
			Message: message,
		},
	}
	respJSON, _ := json.Marshal(response)
	fmt.Fprintln(t.out, string(respJSON))
}
