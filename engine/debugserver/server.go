// Package debugserver exposes the live container state and layout metrics
// over HTTP while the sandbox runs.
//
// The render loop publishes snapshots into a SnapshotStore once per frame;
// handlers only ever read the store, never the containers themselves.
package debugserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hubastard/flexbox/engine/ui"
)

type SnapshotStore struct {
	mu        sync.RWMutex
	snaps     []ui.Snapshot
	frame     uint64
	published time.Time
}

// Publish replaces the stored snapshots. Called from the render loop.
func (s *SnapshotStore) Publish(frame uint64, snaps []ui.Snapshot) {
	s.mu.Lock()
	s.snaps = snaps
	s.frame = frame
	s.published = time.Now()
	s.mu.Unlock()
}

func (s *SnapshotStore) Load() (uint64, []ui.Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame, s.snaps
}

// NewHandler routes /containers, /containers/{name}, /health and, when
// metrics is non-nil, /metrics.
func NewHandler(store *SnapshotStore, metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/containers", func(w http.ResponseWriter, _ *http.Request) {
		frame, snaps := store.Load()
		body := struct {
			Frame      uint64          `json:"frame"`
			Containers []containerJSON `json:"containers"`
		}{Frame: frame, Containers: make([]containerJSON, len(snaps))}
		for i, s := range snaps {
			body.Containers[i] = toJSON(s)
		}
		writeJSON(w, http.StatusOK, body)
	})
	r.Get("/containers/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		_, snaps := store.Load()
		for _, s := range snaps {
			if s.Name == name {
				writeJSON(w, http.StatusOK, toJSON(s))
				return
			}
		}
		http.Error(w, fmt.Sprintf("container %q not found", name), http.StatusNotFound)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// Serve listens on addr and serves h until ctx is cancelled. The listener is
// bound before Serve returns so port conflicts fail fast; the returned
// address is the one actually bound (useful with ":0").
func Serve(ctx context.Context, addr string, h http.Handler, log *slog.Logger) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("debugserver: listen %s: %w", addr, err)
	}
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("debug server stopped", "err", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info("debug server listening", "addr", ln.Addr().String())
	return ln.Addr(), nil
}
