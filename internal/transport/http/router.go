package http

import (
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	websocketTransport "github.com/kahvecikaan/storefront/internal/transport/websocket"
)

func NewRouter(
	ph *ProductHandler,
	logger hclog.Logger,
	wsh *websocketTransport.Handler,
) *mux.Router {
	router := mux.NewRouter()

	mw := NewMiddleware(logger, nil) // nil for default CORS config

	router.Use(handlers.RecoveryHandler(
		handlers.RecoveryLogger(logger.StandardLogger(&hclog.StandardLoggerOptions{ForceLevel: hclog.Error})),
	))
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.CORSMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")
	router.HandleFunc("/ws", wsh.HandleWebSocket).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(mw.ContentTypeMiddleware)
	api.HandleFunc("/products", ph.ListProducts).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}", ph.GetProduct).Methods("GET")
	api.HandleFunc("/currencies", ph.ListCurrencies).Methods("GET")
	api.HandleFunc("/pages", ph.PageWindow).Methods("GET")

	// swagger.yaml lives at the module root
	_, filename, _, _ := runtime.Caller(0)
	rootDir := filepath.Join(filepath.Dir(filename), "..", "..", "..")
	swaggerFilePath := filepath.Join(rootDir, "swagger.yaml")

	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerFilePath)
	}).Methods("GET")

	swaggerHandler := middleware.Redoc(middleware.RedocOpts{SpecURL: "/swagger.yaml"}, nil)
	router.Handle("/docs", swaggerHandler).Methods("GET")

	// HTML storefront
	site := router.Methods("GET").Subrouter()
	site.Use(handlers.CompressHandler)
	site.HandleFunc("/", ph.ListPage)
	site.HandleFunc("/products", ph.ListPage)
	site.HandleFunc("/products/{id:[0-9]+}", ph.DetailPage)

	return router
}
