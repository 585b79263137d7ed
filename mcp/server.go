package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/oronp/talk-to-figma-mcp/logger"
)

const (
	ProtocolVersion = "2024-11-05"
	ServerName      = "TalkToFigmaMCP"
	ServerVersion   = "1.0.0"
)

// CommandSender is the surface of the Figma client used by tool handlers.
type CommandSender interface {
	SendCommand(ctx context.Context, command string, params map[string]any) (json.RawMessage, error)
	JoinChannel(ctx context.Context, channel string) (json.RawMessage, error)
}

// Server implements the MCP stdio server exposing the Figma tool surface.
// One JSON-RPC message per line on stdin, one response per line on stdout.
type Server struct {
	reader *bufio.Reader
	writer io.Writer
	figma  CommandSender
	mu     sync.Mutex
	log    *slog.Logger
}

// NewServer creates a new MCP server reading requests from r and writing
// responses to w. Commands are forwarded to Figma through sender.
func NewServer(r io.Reader, w io.Writer, sender CommandSender) *Server {
	return &Server{
		reader: bufio.NewReader(r),
		writer: w,
		figma:  sender,
		log:    logger.WithComponent("mcp"),
	}
}

// Run starts the MCP server loop. It returns nil on EOF.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("server starting")

	for {
		line, err := s.reader.ReadString('\n')
		if err == io.EOF {
			s.log.Info("EOF received, shutting down")
			return nil
		}
		if err != nil {
			s.log.Error("read error", "error", err)
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.log.Debug("received message", "line", line)

		var req JSONRPCRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			s.log.Error("JSON parse error", "error", err)
			s.sendError(nil, -32700, "Parse error", nil)
			continue
		}

		s.handleRequest(ctx, &req)
	}
}

func (s *Server) handleRequest(ctx context.Context, req *JSONRPCRequest) {
	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "initialized", "notifications/initialized":
		// Notification, no response needed
		s.log.Debug("initialized notification received")
	case "tools/list":
		s.handleToolsList(req)
	case "tools/call":
		s.handleToolsCall(ctx, req)
	default:
		s.log.Warn("unknown method", "method", req.Method)
		s.sendError(req.ID, -32601, "Method not found", nil)
	}
}

func (s *Server) handleInitialize(req *JSONRPCRequest) {
	result := InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: Capability{
			Tools: &ToolCapability{},
		},
		ServerInfo: ServerInfo{
			Name:    ServerName,
			Version: ServerVersion,
		},
		Instructions: "This server exposes tools for reading and editing the current Figma document. Call join_channel first to connect to the Figma plugin.",
	}

	s.sendResult(req.ID, result)
}

func (s *Server) handleToolsList(req *JSONRPCRequest) {
	s.sendResult(req.ID, ToolsListResult{Tools: allTools})
}

func (s *Server) handleToolsCall(ctx context.Context, req *JSONRPCRequest) {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.log.Error("failed to parse tool call params", "error", err)
		s.sendError(req.ID, -32602, "Invalid params", nil)
		return
	}

	s.log.Info("tool call", "tool", params.Name)

	result := s.dispatch(ctx, params.Name, params.Arguments)
	s.sendResult(req.ID, result)
}

func (s *Server) sendResult(id any, result any) {
	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}

	s.send(resp)
}

func (s *Server) sendError(id any, code int, message string, data any) {
	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}

	s.send(resp)
}

func (s *Server) send(resp JSONRPCResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.Error("failed to marshal response", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = fmt.Fprintf(s.writer, "%s\n", data)
	if err != nil {
		s.log.Error("failed to write response", "error", err)
	} else {
		s.log.Debug("sent response", "data", string(data))
	}
}
