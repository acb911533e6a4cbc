// Package httpapi serves the planner, wellness, import and tutor use cases as
// a JSON API for a browser front end.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/studyflow/internal/service"
	"github.com/rs/cors"
)

const (
	defaultShutdownTimeout = 5 * time.Second
	maxBodyBytes           = 1 << 20
)

// Services are the use cases the API exposes.
type Services struct {
	Tasks    service.TaskService
	Import   service.ImportService
	Wellness service.WellnessService
	Plan     service.PlanService
	Tutor    service.TutorService
}

type Options struct {
	Addr           string
	AllowedOrigins []string
	Logger         *slog.Logger
	// Now is the clock passed to every use case. Defaults to time.Now.
	Now             func() time.Time
	ShutdownTimeout time.Duration
}

type Server struct {
	svc     Services
	opts    Options
	logger  *slog.Logger
	handler http.Handler
}

func NewServer(svc Services, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}
	s := &Server{svc: svc, opts: opts, logger: opts.Logger}
	s.handler = s.routes()
	return s
}

// Handler returns the full middleware chain: CORS, request logging, routes.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /tasks", s.handleListTasks)
	mux.HandleFunc("POST /tasks/import", s.handleImport)
	mux.HandleFunc("POST /parse", s.handleParse)
	mux.HandleFunc("GET /plan", s.handlePlan)
	mux.HandleFunc("POST /wellness", s.handleCheckIn)
	mux.HandleFunc("GET /wellness/latest", s.handleLatestWellness)
	mux.HandleFunc("POST /tutor", s.handleTutor)

	c := cors.New(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.logRequests(mux))
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http shutdown", slog.String("error", err.Error()))
		}
	}()

	s.logger.Info("http listening", slog.String("addr", ln.Addr().String()))
	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		return nil
	}
	return err
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
		s.logger.InfoContext(r.Context(), "http_request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	})
}
