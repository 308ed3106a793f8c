package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/picture-tools-mcp/internal/config"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
	if s.cfg == nil {
		t.Fatal("New() did not initialize config")
	}
}

func TestNewWithConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Edge.Distance = 42

	s := NewWithConfig(cfg)
	if s.cfg.Edge.Distance != 42 {
		t.Errorf("Edge.Distance: got %v, want 42", s.cfg.Edge.Distance)
	}

	if NewWithConfig(nil).cfg == nil {
		t.Error("NewWithConfig(nil) should fall back to defaults")
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
			if req.JSONRPC != "2.0" {
				t.Errorf("JSONRPC: got %s, want 2.0", req.JSONRPC)
			}
		})
	}
}

func TestMCPResponse_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(MCPResponse{
		JSONRPC: "2.0",
		ID:      1,
		Error:   &MCPError{Code: -32601, Message: "Method not found"},
	})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	if strings.Contains(string(data), `"result"`) {
		t.Errorf("error response should omit result: %s", data)
	}
	if strings.Contains(string(data), `"data"`) {
		t.Errorf("error without data should omit data: %s", data)
	}
}

func TestHandleRequest(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		wantError int // 0 means success
	}{
		{"initialize", "initialize", 0},
		{"ping", "ping", 0},
		{"tools list", "tools/list", 0},
		{"unknown method", "nonexistent/method", -32601},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: "req-1", Method: tt.method})
			if resp == nil {
				t.Fatal("handleRequest returned nil")
			}
			if resp.ID != "req-1" {
				t.Errorf("ID: got %v, want req-1", resp.ID)
			}

			if tt.wantError == 0 {
				if resp.Error != nil {
					t.Fatalf("Unexpected error: %v", resp.Error)
				}
				return
			}
			if resp.Error == nil {
				t.Fatal("Expected error response")
			}
			if resp.Error.Code != tt.wantError {
				t.Errorf("Error code: got %d, want %d", resp.Error.Code, tt.wantError)
			}
		})
	}
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	if len(toolsList) != len(GetToolDefinitions()) {
		t.Errorf("got %d tools, want %d", len(toolsList), len(GetToolDefinitions()))
	}
}

func TestHandleRequest_NotificationsInitialized(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	}

	// Notifications don't get responses
	if resp := s.handleRequest(req); resp != nil {
		t.Error("notifications/initialized should return nil response")
	}
}

func TestHandleInitialize(t *testing.T) {
	s := New()
	resp := s.handleInitialize(&MCPRequest{JSONRPC: "2.0", ID: "init-1"})

	if resp.ID != "init-1" {
		t.Errorf("ID: got %v, want init-1", resp.ID)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != "picture-tools-mcp" {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
	if serverInfo["version"] != ServerVersion {
		t.Errorf("serverInfo.version: got %v", serverInfo["version"])
	}
}

func TestServe(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`this is not json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":3,"method":"bogus"}`,
	}, "\n")

	var out bytes.Buffer
	if err := New().Serve(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	var responses []MCPResponse
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var resp MCPResponse
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response line %q: %v", scanner.Text(), err)
		}
		responses = append(responses, resp)
	}

	// The notification, the blank line and the malformed line produce no output.
	if len(responses) != 3 {
		t.Fatalf("got %d responses, want 3: %s", len(responses), out.String())
	}

	wantIDs := []float64{1, 2, 3}
	for i, resp := range responses {
		if resp.ID != wantIDs[i] {
			t.Errorf("response %d: ID got %v, want %v", i, resp.ID, wantIDs[i])
		}
	}
	if responses[2].Error == nil || responses[2].Error.Code != -32601 {
		t.Errorf("bogus method should produce -32601, got %+v", responses[2].Error)
	}
}

func TestServe_DebugLogging(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Level = "debug"

	var out bytes.Buffer
	err := NewWithConfig(cfg).Serve(strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`), &out)
	if err != nil {
		t.Fatalf("Serve failed: %v", err)
	}
	if !strings.Contains(out.String(), `"id":1`) {
		t.Errorf("expected ping response, got %s", out.String())
	}
}
