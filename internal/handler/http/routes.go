package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.GetHead)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))

	router.Route("/bestreads", func(r chi.Router) {
		r.Use(middleware.StripSlashes)
		r.Get("/description/{item_id}", h.getDescription)
		r.Get("/info/{item_id}", h.getInfo)
		r.Get("/reviews/{item_id}", h.getReviews)
		r.Get("/version", h.getServerVersion)
		r.Get("/"+h.catalog.Collection, h.listCatalog)
	})

	router.Get("/health", h.health)

	if h.public != nil {
		fileServer(router, "/", h.public)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// fileServer mounts a static file server at path.
func fileServer(r chi.Router, path string, root http.FileSystem) {
	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		rctx := chi.RouteContext(req.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, req)
	})
}
