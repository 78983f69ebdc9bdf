// Package site implements the gateway's read-only operator HTTP surface:
// a home page, config/metadata lookups, and a server-sent-events stream of
// stats-bus activity, per spec.md §6. It is a collaborator of the gateway
// core, not part of it: its only contract with the pipeline is subscribing
// to the stats bus and mapping each event to a named SSE frame.
package site

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/siso-dis/cdis-gateway/internal/gateway"
)

// Server is the site's chi-routed HTTP handler plus the config/metadata it
// reports, mirroring cdis-gateway/src/site.rs's SiteState.
type Server struct {
	config gateway.Config
	stats  *gateway.StatsBus
	router chi.Router
}

// NewServer builds the router described in spec.md §6: GET /, /config,
// /meta, /sse.
func NewServer(config gateway.Config, stats *gateway.StatsBus) *Server {
	s := &Server{config: config, stats: stats}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", s.home)
	r.Get("/config", s.configInfo)
	r.Get("/meta", s.metaInfo)
	r.Get("/sse", s.sse)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<html><body><h1>%s</h1><p>DIS &#8596; C-DIS gateway</p></body></html>", s.config.Metadata.Name)
}

func (s *Server) configInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"dis_port":%d,"cdis_port":%d,"unknown_policy":%q,"channel_capacity":%d}`,
		s.config.DIS.Port, s.config.CDIS.Port, s.config.UnknownPolicy, s.config.ChannelCapacity)
}

func (s *Server) metaInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"name":%q,"author":%q,"version":%q}`,
		s.config.Metadata.Name, s.config.Metadata.Author, s.config.Metadata.Version)
}

// sse streams stats-bus events as named server-sent events, one per
// gateway.StatEdge, the only contract spec.md §6 places on this surface.
func (s *Server) sse(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ctx := r.Context()
	events := s.stats.Subscribe(ctx)

	fmt.Fprintf(w, "event: status\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: {\"count\":%d,\"rejected\":%t,\"reason\":%q}\n\n",
				event.Edge, event.Count, event.Rejected, event.Reason)
			flusher.Flush()
		case <-ctx.Done():
			return
		}
	}
}
