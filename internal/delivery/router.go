package delivery

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type routeRegistrar interface {
	RegisterRoutes(router gin.IRouter)
}

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Product  *ProductHandler
	Category *CategoryHandler
	Cart     *CartHandler
	Session  *SessionHandler
	Admin    *AdminHandler
}

// NewRouter builds the HTTP API. An empty origin list turns CORS off.
func NewRouter(h Handlers, corsOrigins []string, logger *logrus.Logger) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	origins, err := normalizeOrigins(corsOrigins)
	if err != nil {
		return nil, err
	}
	if len(origins) > 0 {
		router.Use(cors.New(corsConfig(origins)))
		logger.Infof("CORS enabled for origins: %s", strings.Join(origins, ", "))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for _, r := range []routeRegistrar{h.Product, h.Category, h.Cart, h.Session, h.Admin} {
		r.RegisterRoutes(router)
	}
	logger.Info("API Routes registered.")
	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			cfg.AllowOrigins = nil
			cfg.AllowCredentials = false
			break
		}
	}
	return cfg
}

func normalizeOrigins(origins []string) ([]string, error) {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return nil, fmt.Errorf("invalid CORS origin %q: must be * or start with http:// or https://", o)
		}
		out = append(out, o)
	}
	return out, nil
}
