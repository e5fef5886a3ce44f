package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-skiff/skiff/pkg/rendertree"
)

// RenderTreeNode represents a node in the serialized render tree.
type RenderTreeNode struct {
	Kind     string           `json:"kind"`
	Value    string           `json:"value,omitempty"`
	Font     string           `json:"font,omitempty"`
	FontSize SafeFloat        `json:"fontSize,omitempty"`
	Bold     bool             `json:"bold,omitempty"`
	Depth    int              `json:"depth"`
	Children []RenderTreeNode `json:"children,omitempty"`
}

// SafeFloat wraps a float64 to handle Inf/NaN in JSON encoding.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// SerializeTree converts a render tree into its JSON-safe representation.
// Returns nil for a nil or released tree.
func SerializeTree(tree *rendertree.Tree) *RenderTreeNode {
	if tree == nil || tree.Root() == nil {
		return nil
	}
	node := serializeNode(tree.Root(), 0)
	return &node
}

func serializeNode(n rendertree.Node, depth int) RenderTreeNode {
	out := RenderTreeNode{
		Kind:  n.Kind().String(),
		Depth: depth,
	}
	if text, ok := n.(*rendertree.TextNode); ok {
		out.Value = text.Value
		out.Font = text.Font
		out.FontSize = SafeFloat(text.FontSize)
		out.Bold = text.Bold
	}
	n.VisitChildren(func(child rendertree.Node) {
		out.Children = append(out.Children, serializeNode(child, depth+1))
	})
	return out
}

// Server exposes engine state over HTTP for inspection.
//
// GET  /render-tree  returns the most recently rendered tree as JSON.
// POST /render-tree  renders the request body and returns its tree as JSON.
// GET  /health       is a liveness probe with pipeline counters.
type Server struct {
	engine *Engine

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewServer creates a debug server for the given engine.
func NewServer(e *Engine) *Server {
	return &Server{engine: e}
}

// Start binds the server on the given port and serves in the background.
// Returns the actual port (useful when port=0 for ephemeral allocation).
func (s *Server) Start(port int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		if s.listener != nil {
			return s.listener.Addr().(*net.TCPAddr).Port, nil
		}
		return port, nil
	}

	// Bind listener first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return 0, fmt.Errorf("debug server listen: %w", err)
	}
	actualPort := listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.HandleFunc("/render-tree", s.handleRenderTree)
	mux.HandleFunc("/health", s.handleHealth)

	server := &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.server = server
	s.listener = listener

	go func() {
		_ = server.Serve(listener)
	}()

	return actualPort, nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

func (s *Server) handleRenderTree(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		tree := s.engine.LastTree()
		if tree == nil {
			http.Error(w, "no tree rendered yet", http.StatusNotFound)
			return
		}
		writeJSON(w, SerializeTree(tree))

	case http.MethodPost:
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}
		tree, err := s.engine.RenderHTML(string(body))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		writeJSON(w, SerializeTree(tree))

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.engine.Stats()
	writeJSON(w, map[string]any{
		"status":     "ok",
		"treesBuilt": stats.TreesBuilt,
		"cacheHits":  stats.CacheHits,
		"parseMs":    stats.ParseTime.Milliseconds(),
		"buildMs":    stats.BuildTime.Milliseconds(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode: "+err.Error(), http.StatusInternalServerError)
	}
}
