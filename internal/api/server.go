package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/netutil"

	"github.com/radix-engine/backend/internal/engine"
	"github.com/radix-engine/backend/internal/politeness"
)

type Server struct {
	Engine *engine.Engine
	Logger *logrus.Entry
	Router *http.ServeMux
	Robots *politeness.RobotsPolicy

	httpServer *http.Server
	drained    chan struct{}
	closeOnce  sync.Once
}

func NewServer(eng *engine.Engine, robots *politeness.RobotsPolicy, logger *logrus.Entry) *Server {
	s := &Server{
		Engine:  eng,
		Logger:  logger,
		Router:  http.NewServeMux(),
		Robots:  robots,
		drained: make(chan struct{}),
	}
	s.routes()
	s.httpServer = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  eng.Config.Server.ReadTimeout,
		WriteTimeout: eng.Config.Server.WriteTimeout,
	}
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("/api/lookup", s.handleLookup)
	s.Router.HandleFunc("/api/word", s.handleWord)
	s.Router.HandleFunc("/api/v1/status", s.handleStatus)
	s.Router.HandleFunc("/robots.txt", s.handleRobots)
}

// Handler is the router wrapped with CORS and request logging
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       s.Engine.Config.Server.CORSOrigins,
		AllowedMethods:       []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type"},
		OptionsSuccessStatus: http.StatusOK,
	})
	return s.logRequests(c.Handler(s.Router))
}

// Start listens on addr and serves until Shutdown is called
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln. After Shutdown it returns only once
// in-flight requests have drained or the shutdown context expired.
func (s *Server) Serve(ln net.Listener) error {
	if limit := s.Engine.Config.Server.MaxConnections; limit > 0 {
		ln = netutil.LimitListener(ln, limit)
		s.Logger.Infof("Limiting API Server to %d concurrent connections", limit)
	}

	s.Logger.Infof("Starting API Server on %s", ln.Addr())
	err := s.httpServer.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-s.drained
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	defer s.closeOnce.Do(func() { close(s.drained) })
	return s.httpServer.Shutdown(ctx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		if s.Robots != nil {
			s.Robots.Check(r.UserAgent(), r.URL.Path)
		}
		s.Logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("Handled request")
	})
}

// allowRead answers OPTIONS with an empty 200 and rejects anything but GET.
// It reports whether the handler should go on.
func allowRead(w http.ResponseWriter, r *http.Request) bool {
	switch r.Method {
	case http.MethodGet:
		return true
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return false
	default:
		jsonResponse(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return false
	}
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func textResponse(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(body))
}
