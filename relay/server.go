package relay

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/oronp/talk-to-figma-mcp/logger"
)

// Server runs the WebSocket relay over HTTP. Every connection that
// upgrades is handed to the hub.
type Server struct {
	hub      *Hub
	httpSrv  *http.Server
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewServer creates a relay server listening on the given port.
func NewServer(port int) *Server {
	s := &Server{
		hub: NewHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The Figma plugin connects from the figma.com origin, so
			// origin checking has to stay open.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: logger.WithComponent("relay"),
	}
	s.httpSrv = &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", port),
		Handler: s.Handler(),
	}
	return s
}

// Handler returns the HTTP handler that upgrades connections into the hub.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.log.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}
		go s.hub.run(conn)
	})
	return mux
}

// Hub returns the server's hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// ListenAndServe blocks serving WebSocket connections until the server
// is shut down. Returns nil after a clean Shutdown.
func (s *Server) ListenAndServe() error {
	s.log.Info("relay listening", "addr", s.httpSrv.Addr)
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting new connections, closes the listener, then
// closes every live client connection.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err := s.httpSrv.Shutdown(shutdownCtx)
	s.hub.CloseAll()
	return err
}
