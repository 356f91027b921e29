// Package stats exposes live render statistics over HTTP: a JSON
// snapshot endpoint and a WebSocket feed that streams every published
// update.
package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Snapshot is one frame's worth of viewer statistics.
type Snapshot struct {
	FPS            float64 `json:"fps"`
	Mode           string  `json:"mode"`
	TotalChunks    int     `json:"total_chunks"`
	VisibleChunks  int     `json:"visible_chunks"`
	TotalVertices  int     `json:"total_vertices"`
	TotalTriangles int     `json:"total_triangles"`
	DrawnVertices  int     `json:"drawn_vertices"`
	DrawnTriangles int     `json:"drawn_triangles"`
	CameraDistance float32 `json:"camera_distance"`
	CameraAzimuth  float32 `json:"camera_azimuth"`
	CameraElev     float32 `json:"camera_elevation"`
}

// Server broadcasts snapshots to WebSocket subscribers. Each
// connection gets its own write lock so a slow client cannot corrupt
// frames written from the broadcast loop.
type Server struct {
	log  *zap.Logger
	addr string

	upgrader websocket.Upgrader
	httpSrv  *http.Server

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
	last    Snapshot
	hasLast bool
}

// NewServer creates a stats server listening on addr once started.
func NewServer(log *zap.Logger, addr string) *Server {
	return &Server{
		log:  log,
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/stats", s.handleSnapshot)
	mux.HandleFunc("/ws", s.handleWebSocket)

	s.httpSrv = &http.Server{Addr: s.addr, Handler: mux}
	s.log.Info("stats endpoint listening", zap.String("addr", s.addr))

	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("stats server failed", zap.Error(err))
		}
	}()
}

// Close shuts the server down and drops all subscribers.
func (s *Server) Close(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/stats", s.handleSnapshot)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Publish records the latest snapshot and pushes it to every
// subscriber. Failed connections are dropped.
func (s *Server) Publish(snap Snapshot) {
	s.mu.Lock()
	s.last = snap
	s.hasLast = true
	s.mu.Unlock()

	s.mu.RLock()
	var failed []*websocket.Conn
	for conn, lock := range s.clients {
		lock.Lock()
		err := conn.WriteJSON(snap)
		lock.Unlock()
		if err != nil {
			failed = append(failed, conn)
		}
	}
	s.mu.RUnlock()

	if len(failed) > 0 {
		s.mu.Lock()
		for _, conn := range failed {
			delete(s.clients, conn)
			conn.Close()
		}
		s.mu.Unlock()
	}
}

// Subscribers returns the number of connected WebSocket clients.
func (s *Server) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	snap, ok := s.last, s.hasLast
	s.mu.RUnlock()

	if !ok {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	lock := &sync.Mutex{}
	s.mu.Lock()
	s.clients[conn] = lock
	last, hasLast := s.last, s.hasLast
	s.mu.Unlock()

	s.log.Debug("stats subscriber connected", zap.String("remote", conn.RemoteAddr().String()))

	if hasLast {
		lock.Lock()
		_ = conn.WriteJSON(last)
		lock.Unlock()
	}

	// Read loop exists only to notice the close.
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
