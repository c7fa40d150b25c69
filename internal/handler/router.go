package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the handlers and settings the router needs.
type RouterConfig struct {
	ContactHandler *ContactHandler
	PublicDir      string
}

// NewRouter builds the gin engine: open CORS, the contact API and the
// static/SPA fallback for everything else.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	api := router.Group("/api")
	{
		api.POST("/contact", cfg.ContactHandler.Submit)
		api.GET("/contact", cfg.ContactHandler.List)
	}

	router.NoRoute(spaFallback(cfg.PublicDir))

	return router
}

// spaFallback serves files from publicDir and falls back to index.html for
// client-side routes. Unmatched /api paths stay JSON 404s.
func spaFallback(publicDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.String(http.StatusNotFound, "Not found")
			return
		}

		// Clean rooted at "/" so a crafted path cannot escape publicDir.
		name := filepath.Join(publicDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}

		index := filepath.Join(publicDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.String(http.StatusNotFound, "Not found")
	}
}
