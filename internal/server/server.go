package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/skin-preview-mcp/internal/imaging"
)

// ServerName and ServerVersion are reported in the initialize handshake.
const (
	ServerName    = "skin-preview-mcp"
	ServerVersion = "0.1.0"
)

const (
	jsonRPCVersion  = "2.0"
	protocolVersion = "2024-11-05"

	// maxLineBytes bounds one request line. Tool arguments are paths and
	// small point lists, so requests stay far below it.
	maxLineBytes = 1024 * 1024
)

// JSON-RPC error codes returned by the server.
const (
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	// CodeToolFailed is used for every error returned by a skin tool.
	CodeToolFailed = -32000
)

// Server answers MCP requests for the skin tools. Decoded skins are kept in
// a cache shared by all tools for the lifetime of the server.
type Server struct {
	cache *imaging.ImageCache
	debug bool
}

// MCPRequest is one JSON-RPC request line. Requests without an ID are
// notifications and get no response.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse carries either Result or Error.
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError is a JSON-RPC error object. Data holds the Go error text.
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// InitializeResult is the handshake reply.
type InitializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	ServerInfo      ServerInfo             `json:"serverInfo"`
}

// ServerInfo names this server in the handshake.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// New creates a server with an empty skin cache.
func New() *Server {
	return &Server{
		cache: imaging.NewImageCache(),
	}
}

// SetDebug enables per-request debug logging on stderr.
func (s *Server) SetDebug(debug bool) {
	s.debug = debug
}

// Run serves requests from stdin to stdout until stdin is closed.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads newline-delimited JSON-RPC requests from r and writes one
// response line per request to w until r is exhausted.
//
// Lines that are not valid JSON are logged and skipped.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Skipping malformed request line: %v", err)
			continue
		}
		if s.debug {
			log.Printf("Request %v: %s", req.ID, req.Method)
		}

		resp := s.handleRequest(&req)
		if resp == nil {
			continue
		}
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response %v: %w", req.ID, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read requests: %w", err)
	}
	return nil
}

// handleRequest routes one request by method. It returns nil for
// notifications.
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return resultResponse(req.ID, map[string]interface{}{})
	default:
		return errorResponse(req.ID, CodeMethodNotFound, "Method not found: "+req.Method, "")
	}
}

func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return resultResponse(req.ID, &InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities: map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		ServerInfo: ServerInfo{Name: ServerName, Version: ServerVersion},
	})
}

func resultResponse(id interface{}, result interface{}) *MCPResponse {
	return &MCPResponse{JSONRPC: jsonRPCVersion, ID: id, Result: result}
}

// errorResponse builds an error reply. An empty data is omitted.
func errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{JSONRPC: jsonRPCVersion, ID: id, Error: e}
}
