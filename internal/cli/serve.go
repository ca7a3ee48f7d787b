package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/pipesmith/pipesmith/pkg/buildinfo"
	pserrors "github.com/pipesmith/pipesmith/pkg/errors"
	"github.com/pipesmith/pipesmith/pkg/generate"
	"github.com/pipesmith/pipesmith/pkg/httputil"
	"github.com/pipesmith/pipesmith/pkg/pipeline"
	"github.com/pipesmith/pipesmith/pkg/requirements"
	"github.com/pipesmith/pipesmith/pkg/session"
)

// cleanupInterval is how often the in-memory result store sweeps
// expired entries.
const cleanupInterval = 10 * time.Minute

// serveFlags holds the flag values for the serve command.
type serveFlags struct {
	addr  string
	redis string
	ttl   time.Duration
}

func (c *CLI) serveCommand() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run an HTTP API exposing the configuration pipeline.

Results are stored under a generated id so clients can re-fetch them.
By default results live in memory; pass --redis to share them across
instances.`,
		Example: `  # Serve on the default address with in-memory results
  pipesmith serve

  # Serve behind Redis with a custom result lifetime
  pipesmith serve --addr :9000 --redis localhost:6379 --ttl 1h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&flags.redis, "redis", "", "redis address for a shared result store")
	cmd.Flags().DurationVar(&flags.ttl, "ttl", session.DefaultTTL, "how long generation results are kept")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, flags serveFlags) error {
	store, err := newStore(ctx, flags.redis)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &apiServer{
		runner: c.newRunner(),
		store:  store,
		ttl:    flags.ttl,
		logger: c.Logger,
	}

	httpServer := &http.Server{
		Addr:         flags.addr,
		Handler:      srv.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go srv.cleanupLoop(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	c.Logger.Info("serving", "addr", flags.addr, "store", storeName(flags.redis))
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newStore(ctx context.Context, redisAddr string) (session.Store, error) {
	if redisAddr == "" {
		return session.NewMemoryStore(), nil
	}
	store := session.NewRedisStore(session.RedisConfig{Addr: redisAddr})
	if err := store.Ping(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func storeName(redisAddr string) string {
	if redisAddr == "" {
		return "memory"
	}
	return "redis"
}

// =============================================================================
// API server
// =============================================================================

// apiServer serves the configuration pipeline over HTTP.
type apiServer struct {
	runner *pipeline.Runner
	store  session.Store
	ttl    time.Duration
	logger *log.Logger
}

func (s *apiServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Get("/results/{id}", s.handleResult)
	})

	return r
}

// generateResponse is the wire shape of a successful generation.
type generateResponse struct {
	ID        string                    `json:"id"`
	Model     requirements.Requirements `json:"model"`
	Files     generate.Files            `json:"files"`
	Questions []requirements.Question   `json:"questions,omitempty"`
	ExpiresAt time.Time                 `json:"expires_at"`
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *apiServer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := httputil.DecodeJSON(r, &opts); err != nil {
		httputil.WriteError(w, err)
		return
	}
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	res := session.NewResult(result.Model, result.Files, s.ttl)
	if err := s.store.Set(r.Context(), res); err != nil {
		s.logger.Error("storing result", "error", err)
		httputil.WriteError(w, pserrors.Wrap(pserrors.ErrCodeInternal, err, "storing result"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, generateResponse{
		ID:        res.ID,
		Model:     result.Model,
		Files:     result.Files,
		Questions: requirements.MissingInfo(result.Model),
		ExpiresAt: res.ExpiresAt,
	})
}

func (s *apiServer) handleResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := s.store.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, pserrors.Wrap(pserrors.ErrCodeInternal, err, "loading result"))
		return
	}
	if res == nil {
		httputil.WriteError(w, pserrors.New(pserrors.ErrCodeResultNotFound, "no result with id %q", id))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, generateResponse{
		ID:        res.ID,
		Model:     res.Model,
		Files:     res.Files,
		Questions: requirements.MissingInfo(res.Model),
		ExpiresAt: res.ExpiresAt,
	})
}

// cleanupLoop periodically removes expired results. Redis expires keys
// itself, so its Cleanup is a no-op.
func (s *apiServer) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.store.Cleanup(ctx); err != nil {
				s.logger.Warn("result cleanup failed", "error", err)
			}
		}
	}
}
