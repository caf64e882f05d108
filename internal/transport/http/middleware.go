package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Middleware struct holds dependencies for middleware functions
type Middleware struct {
	Logger     hclog.Logger
	corsConfig *CORSConfig
}

// CORSConfig holds configuration for CORS middleware
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	MaxAge           int  // Cache preflight requests
	AllowCredentials bool // Allow credentials like cookies
}

// DefaultCORSConfig allows the local front-end dev server to call the read-only API
func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With"},
		MaxAge:           86400, // 24 hours
		AllowCredentials: false,
	}
}

// NewMiddleware creates a new Middleware instance
func NewMiddleware(logger hclog.Logger, corsConfig *CORSConfig) *Middleware {
	if corsConfig == nil {
		corsConfig = DefaultCORSConfig()
	}
	return &Middleware{
		Logger:     logger,
		corsConfig: corsConfig,
	}
}

func (m *Middleware) CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		allowed := false
		for _, allowedOrigin := range m.corsConfig.AllowedOrigins {
			if allowedOrigin == "*" || allowedOrigin == origin {
				allowed = true
				w.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}

		if !allowed {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Methods", strings.Join(m.corsConfig.AllowedMethods, ","))
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(m.corsConfig.AllowedHeaders, ","))

		if m.corsConfig.AllowCredentials {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			if m.corsConfig.MaxAge > 0 {
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(m.corsConfig.MaxAge))
			}
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ContentTypeMiddleware sets the Content-Type header to application/json
func (m *Middleware) ContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		// Add the request ID to the response header
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", time.Since(start),
		)
	})
}
