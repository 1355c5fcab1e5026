// Package gin provides the HTTP entry point: bearer-token authenticated
// JSON endpoints for course creation, content ingestion, reading courses,
// chapters and quizzes, and progress tracking.
package gin

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/coursegen/coursegen"
	"github.com/coursegen/coursegen/ingest"
	"github.com/gin-gonic/gin"
)

// ShutdownTimeout is the time given to in-flight requests on Close.
const ShutdownTimeout = 5 * time.Second

// userKey is the gin context key under which the authenticated user is
// stored by the auth middleware.
const userKey = "coursegen_user"

// Server wraps a gin engine with the coursegen routes. Services must be set
// before Open; the zero value is not usable.
type Server struct {
	ln     net.Listener
	server *http.Server
	engine *gin.Engine

	// Addr is the bind address for Open, e.g. ":8080".
	Addr string

	TokenService    coursegen.TokenService
	CourseService   coursegen.CourseService
	ChapterService  coursegen.ChapterService
	QuizService     coursegen.QuizService
	ProgressService coursegen.ProgressService

	// Pipeline runs content ingestion for POST /api/ingest.
	Pipeline *ingest.Pipeline

	Logger *slog.Logger
}

// NewServer returns a server with all routes registered.
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine: gin.New(),
		Logger: slog.New(slog.DiscardHandler),
	}
	s.engine.Use(gin.Recovery())
	s.server = &http.Server{Handler: s.engine}

	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api")
	api.Use(s.authenticate())
	{
		api.POST("/courses", s.handleCourseCreate)
		api.GET("/courses", s.handleCourseList)
		api.GET("/courses/:id", s.handleCourseShow)
		api.POST("/ingest", s.handleIngest)
		api.GET("/chapters/:id/quizzes", s.handleQuizList)
		api.POST("/progress", s.handleProgressUpsert)
	}

	return s
}

// ServeMedia registers a static file route, used to serve narration audio
// written by the filesystem blob store.
func (s *Server) ServeMedia(prefix, dir string) {
	s.engine.Static(prefix, dir)
}

// ServeHTTP serves a single request; it exists so tests can exercise the
// router without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Open begins listening on Addr and serves in a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server terminated", "error", err)
		}
	}()
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL the server is listening on. Only valid after Open.
func (s *Server) URL() string {
	return "http://" + s.ln.Addr().String()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// authenticate resolves the bearer token to a user before any handler runs.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			s.abortError(c, coursegen.Errorf(coursegen.EUNAUTHORIZED, "missing bearer token"))
			return
		}
		user, err := s.TokenService.AuthenticateToken(c.Request.Context(), token)
		if err != nil {
			s.abortError(c, err)
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// userFrom returns the authenticated user stored by the auth middleware.
func userFrom(c *gin.Context) *coursegen.User {
	return c.MustGet(userKey).(*coursegen.User)
}

// error writes err as a JSON response with the HTTP status its code maps to.
// Internal errors are logged and masked.
func (s *Server) error(c *gin.Context, err error) {
	code, message := coursegen.ErrorCode(err), coursegen.ErrorMessage(err)
	if code == coursegen.EINTERNAL {
		s.Logger.Error("internal error", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(errorStatusCode(code), gin.H{"error": message})
}

func (s *Server) abortError(c *gin.Context, err error) {
	s.error(c, err)
	c.Abort()
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	coursegen.ECONFLICT:     http.StatusConflict,
	coursegen.EINVALID:      http.StatusBadRequest,
	coursegen.ENOTFOUND:     http.StatusNotFound,
	coursegen.EUNAUTHORIZED: http.StatusUnauthorized,
	coursegen.EUNAVAILABLE:  http.StatusBadGateway,
	coursegen.EINTERNAL:     http.StatusInternalServerError,
}

func errorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}
