// Package rpc serves catalogue queries to AI assistants over JSON-RPC 2.0
// on stdin/stdout.
package rpc

import (
	"context"
)

// Tool is one callable catalogue operation
type Tool interface {
	Execute(ctx context.Context, args map[string]interface{}) (interface{}, error)
	GetSchema() map[string]interface{}
}

// Handler dispatches JSON-RPC requests to registered tools
type Handler struct {
	tools map[string]Tool
}

// NewHandler creates a new handler with no tools registered
func NewHandler() *Handler {
	return &Handler{
		tools: make(map[string]Tool),
	}
}

// RegisterTool registers a tool under a name
func (h *Handler) RegisterTool(name string, tool Tool) {
	h.tools[name] = tool
}

// Handle processes a JSON-RPC request
func (h *Handler) Handle(req *JSONRPCRequest) *JSONRPCResponse {
	switch req.Method {
	case "initialize":
		return h.handleInitialize(req)
	case "tools/list":
		return h.handleToolsList(req)
	case "tools/call":
		return h.handleToolCall(req)
	default:
		return &JSONRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &JSONRPCError{
				Code:    -32601,
				Message: "Method not found",
			},
		}
	}
}

func (h *Handler) handleInitialize(req *JSONRPCRequest) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "1.0",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]string{
				"name":    "gofcat-server",
				"version": "0.1.0",
			},
		},
	}
}

func (h *Handler) handleToolsList(req *JSONRPCRequest) *JSONRPCResponse {
	toolsList := []map[string]interface{}{}

	for name, tool := range h.tools {
		toolsList = append(toolsList, map[string]interface{}{
			"name":   name,
			"schema": tool.GetSchema(),
		})
	}

	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": toolsList,
		},
	}
}

func (h *Handler) handleToolCall(req *JSONRPCRequest) *JSONRPCResponse {
	toolName, ok := req.Params["name"].(string)
	if !ok {
		return &JSONRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &JSONRPCError{
				Code:    -32602,
				Message: "Invalid params: 'name' is required",
			},
		}
	}

	tool, exists := h.tools[toolName]
	if !exists {
		return &JSONRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &JSONRPCError{
				Code:    -32602,
				Message: "Tool not found: " + toolName,
			},
		}
	}

	args, ok := req.Params["arguments"].(map[string]interface{})
	if !ok {
		args = make(map[string]interface{})
	}

	ctx := context.Background()
	result, err := tool.Execute(ctx, args)
	if err != nil {
		return &JSONRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &JSONRPCError{
				Code:    -32603,
				Message: "Tool execution error: " + err.Error(),
			},
		}
	}

	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
}
