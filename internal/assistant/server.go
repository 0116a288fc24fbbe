// Package assistant exposes the analytics over a JSON-RPC stdio loop in the
// MCP tool dialect, so an LLM host can query the dashboard conversationally.
package assistant

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"deskpulse/internal/ingest"
	"deskpulse/internal/insights"
	"deskpulse/internal/stats"
	"deskpulse/internal/store"

	"github.com/rs/zerolog/log"
)

// JSONRPCRequest represents a standard MCP/JSON-RPC request.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse represents a standard MCP/JSON-RPC response.
type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// Server holds the state for the assistant server.
type Server struct {
	store       *store.Store
	generator   insights.Generator
	ticketsFile string

	in  io.Reader
	out io.Writer
}

// NewServer creates an assistant server bound to the ticket store. The
// generator produces narrative insights; ticketsFile is where imports are
// persisted.
func NewServer(st *store.Store, gen insights.Generator, ticketsFile string) *Server {
	return &Server{
		store:       st,
		generator:   gen,
		ticketsFile: ticketsFile,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// Serve starts the JSON-RPC loop over the configured streams.
func (s *Server) Serve() error {
	reader := bufio.NewReader(s.in)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal request")
			continue
		}

		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req JSONRPCRequest) {
	var result interface{}
	var errRes interface{}

	switch req.Method {
	case "initialize":
		result = map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities":    map[string]interface{}{},
			"serverInfo": map[string]interface{}{
				"name":    "deskpulse",
				"version": "0.1.0",
			},
		}
	case "tools/list":
		result = s.listTools()
	case "tools/call":
		result, errRes = s.callTool(req.Params)
	default:
		errRes = map[string]interface{}{
			"code":    -32601,
			"message": fmt.Sprintf("Method %s not found", req.Method),
		}
	}

	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
		Error:   errRes,
	}

	out, _ := json.Marshal(resp)
	fmt.Fprintf(s.out, "%s\n", out)
}

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	var data interface{}
	var err error

	switch call.Name {
	case "get_dashboard_stats":
		data, err = s.handleDashboardStats(call.Arguments)
	case "get_agent_metrics":
		data, err = s.handleAgentMetrics(call.Arguments)
	case "get_trends":
		data, err = s.handleTrends(call.Arguments)
	case "generate_insights":
		data, err = s.handleGenerateInsights(call.Arguments)
	case "import_file":
		data, err = s.handleImportFile(call.Arguments)
	case "reset_data":
		data, err = s.handleResetData()
	default:
		return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
	}

	if err != nil {
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": s.formatResult(data),
			},
		},
	}, nil
}

func (s *Server) rangeArg(args map[string]interface{}) (stats.Range, error) {
	label, _ := args["range"].(string)
	if label == "" {
		return stats.RangeAll, nil
	}
	return stats.ParseRange(label)
}

func (s *Server) handleDashboardStats(args map[string]interface{}) (interface{}, error) {
	rng, err := s.rangeArg(args)
	if err != nil {
		return nil, err
	}
	tickets := stats.FilterByRange(s.store.All(), rng, time.Now())
	return stats.Aggregate(tickets), nil
}

func (s *Server) handleAgentMetrics(args map[string]interface{}) (interface{}, error) {
	rng, err := s.rangeArg(args)
	if err != nil {
		return nil, err
	}
	tickets := stats.FilterByRange(s.store.All(), rng, time.Now())
	return stats.AgentRollup(tickets), nil
}

func (s *Server) handleTrends(args map[string]interface{}) (interface{}, error) {
	rng, err := s.rangeArg(args)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	tickets := s.store.All()
	current := stats.Aggregate(stats.FilterByRange(tickets, rng, now))
	previous := stats.Aggregate(stats.PreviousPeriod(tickets, rng, now))
	return stats.CompareOverview(current, previous), nil
}

func (s *Server) handleGenerateInsights(args map[string]interface{}) (interface{}, error) {
	rng, err := s.rangeArg(args)
	if err != nil {
		return nil, err
	}
	req := insights.BuildRequest(s.store.All(), rng, time.Now())
	return s.generator.Generate(context.Background(), req)
}

func (s *Server) handleImportFile(args map[string]interface{}) (interface{}, error) {
	path, _ := args["path"].(string)
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}

	rows, err := ingest.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tickets, err := ingest.BuildTickets(rows)
	if err != nil {
		return nil, err
	}

	s.store.Replace(tickets)
	if err := s.store.Save(s.ticketsFile); err != nil {
		log.Warn().Err(err).Msg("Failed to persist imported tickets")
	}

	return map[string]interface{}{
		"imported": len(tickets),
		"rows":     len(rows),
	}, nil
}

func (s *Server) handleResetData() (interface{}, error) {
	s.store.Reset()
	if err := s.store.Save(s.ticketsFile); err != nil {
		log.Warn().Err(err).Msg("Failed to persist reset")
	}
	return map[string]interface{}{"reset": true}, nil
}

func (s *Server) formatResult(data interface{}) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}
