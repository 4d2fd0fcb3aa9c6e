package report

import (
	"net/http"
)

// Authorizer guards the submission endpoints.
type Authorizer interface {
	Require(next http.HandlerFunc) http.HandlerFunc
}

// Server handles HTTP requests for citations and arrests
type Server struct {
	service    *Service
	authorizer Authorizer
	metrics    *Metrics
	mux        *http.ServeMux
}

// NewServer creates a new Server with default mux. A nil authorizer leaves
// submissions open; nil metrics disables /metrics.
func NewServer(service *Service, authorizer Authorizer, metrics *Metrics) *Server {
	return NewServerWithMux(service, authorizer, metrics, http.NewServeMux())
}

// NewServerWithMux creates a new Server with a custom mux for testing
func NewServerWithMux(service *Service, authorizer Authorizer, metrics *Metrics, mux *http.ServeMux) *Server {
	s := &Server{
		service:    service,
		authorizer: authorizer,
		metrics:    metrics,
		mux:        mux,
	}
	s.registerRoutes()
	return s
}

// corsMiddleware adds CORS headers to responses
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)

		// Handle preflight OPTIONS requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// setCORSHeaders sets CORS headers on a response
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Replit-User-Id, X-Replit-User-Name, X-Replit-User-Roles")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// gated runs next behind the authorizer and counts rejected callers.
func (s *Server) gated(kind string, next http.HandlerFunc) http.HandlerFunc {
	if s.authorizer == nil {
		return next
	}
	guarded := s.authorizer.Require(next)
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		guarded(rec, r)
		if rec.status == http.StatusUnauthorized || rec.status == http.StatusForbidden {
			s.metrics.observe(kind, outcomeForbidden)
		}
	}
}

// registerRoutes registers all API routes on the server's mux
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/citations/{id}", s.handleGetCitation)
	s.mux.HandleFunc("GET /api/citations", s.handleListCitations)
	s.mux.HandleFunc("POST /api/citations", s.gated(kindCitation, s.handleSubmitCitation))

	s.mux.HandleFunc("GET /api/arrests", s.handleListArrests)
	s.mux.HandleFunc("POST /api/arrests", s.gated(kindArrest, s.handleSubmitArrest))

	s.mux.HandleFunc("GET /api/penal-codes/{catalog}", s.handlePenalCodes)

	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /metrics", s.metrics.Handler())
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.corsMiddleware(s.mux).ServeHTTP(w, r)
}
