package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/controleponto/ponto/internal/web/handlers"
	"github.com/controleponto/ponto/internal/web/middleware"
	"github.com/controleponto/ponto/internal/web/static"
)

func (s *Server) setupRoutes(sessionManager *middleware.SessionManager) {
	// Create handlers
	verifier := handlers.StaticCredentials{
		Username: s.config.Dashboard.Username,
		Password: s.config.Dashboard.Password,
	}
	authHandler := handlers.NewAuthHandler(verifier, sessionManager)
	recordsHandler := handlers.NewRecordsHandler(s.dataset)
	chartsHandler := handlers.NewChartsHandler(s.dataset)
	reportHandler := handlers.NewReportHandler(s.dataset, s.renderer())

	// Health check (no auth required)
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Auth routes
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/status", authHandler.Status)

		// All other routes require authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(sessionManager))

			// Records
			r.Get("/records", recordsHandler.List)
			r.Get("/records/employees", recordsHandler.Employees)
			r.Get("/records/bounds", recordsHandler.Bounds)
			r.Post("/records/refresh", recordsHandler.Refresh)

			// Charts
			r.Get("/charts/irregularities", chartsHandler.Irregularities)
			r.Get("/charts/status-distribution", chartsHandler.StatusDistribution)

			// PDF report
			r.Get("/report", reportHandler.Generate)
		})
	})

	// Serve static files for frontend (SPA)
	s.router.Get("/*", s.serveSPA)
}

// serveSPA serves the single-page application
func (s *Server) serveSPA(w http.ResponseWriter, r *http.Request) {
	// Check if we have embedded frontend assets
	if static.HasDist() {
		// Try to serve the requested file
		fs := static.GetFileSystem()
		path := r.URL.Path
		if path == "/" {
			path = "/index.html"
		}

		// Try to open the file
		f, err := fs.Open(path)
		if err == nil {
			defer f.Close()

			stat, err := f.Stat()
			if err == nil && !stat.IsDir() {
				// Set content type based on extension
				contentType := "application/octet-stream"
				switch {
				case strings.HasSuffix(path, ".html"):
					contentType = "text/html; charset=utf-8"
				case strings.HasSuffix(path, ".css"):
					contentType = "text/css; charset=utf-8"
				case strings.HasSuffix(path, ".js"):
					contentType = "application/javascript; charset=utf-8"
				case strings.HasSuffix(path, ".json"):
					contentType = "application/json"
				case strings.HasSuffix(path, ".svg"):
					contentType = "image/svg+xml"
				case strings.HasSuffix(path, ".png"):
					contentType = "image/png"
				case strings.HasSuffix(path, ".ico"):
					contentType = "image/x-icon"
				}

				w.Header().Set("Content-Type", contentType)

				// Add cache headers for static assets
				if strings.HasPrefix(path, "/assets/") {
					w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
				}

				w.WriteHeader(http.StatusOK)
				io.Copy(w, f)
				return
			}
		}

		// For SPA routing, serve index.html for non-asset paths
		if !strings.HasPrefix(path, "/assets/") {
			indexFile, err := fs.Open("/index.html")
			if err == nil {
				defer indexFile.Close()
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				io.Copy(w, indexFile)
				return
			}
		}
	}

	// Fallback: return placeholder page if no frontend is built
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Controle de Ponto</title>
    <style>
        body { font-family: system-ui, sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; background: #f4f6f8; color: #222; }
        .container { text-align: center; }
        h1 { color: #1a3c6e; }
        p { color: #666; }
        a { color: #1a3c6e; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Controle de Ponto</h1>
        <p>O painel ainda não foi gerado.</p>
        <p>API disponível em <a href="/api/v1/health">/api/v1/health</a></p>
    </div>
</body>
</html>`))
}
