package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"jonasarte-backend/internal/config"
	"jonasarte-backend/internal/middleware"
	"jonasarte-backend/internal/store"
)

// Register wires every route onto the engine. The catalog API is mounted
// twice, at the root and under the legacy /api prefix, so both generations
// of clients keep working.
func Register(r *gin.Engine, st *store.Store, cfg config.Config) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	r.Static("/uploads", cfg.UploadsDir)
	r.POST("/auth/login", Login(cfg.AdminUsername, passwordHash, cfg.JWTSecret, cfg.AccessTokenTTL))

	// By default the guard is a pass-through and the API stays open, the
	// way the storefront has always run. Deployments that want the token
	// check on mutations opt in via ADMIN_GUARD.
	adminGuard := func(c *gin.Context) { c.Next() }
	if cfg.AdminGuard {
		adminGuard = middleware.AdminAuth(cfg.JWTSecret)
	}

	for _, prefix := range []string{"", "/api"} {
		g := r.Group(prefix)

		g.GET("/products", GetProducts(st))
		g.GET("/products/:id", GetProduct(st))
		g.POST("/products", adminGuard, CreateProduct(st))
		g.PUT("/products/:id", adminGuard, UpdateProduct(st))
		g.DELETE("/products/:id", adminGuard, DeleteProduct(st, cfg.UploadsDir))

		g.GET("/categories", GetCategories(st))
		g.POST("/categories", adminGuard, CreateCategory(st))
		g.PUT("/categories/:id", adminGuard, UpdateCategory(st))
		g.DELETE("/categories/:id", adminGuard, DeleteCategory(st))

		g.GET("/profile", GetProfile(st))
		g.PUT("/profile", adminGuard, ReplaceProfile(st))

		g.POST("/upload", adminGuard, Upload(cfg.UploadsDir, cfg.PublicBaseURL))
	}

	return nil
}
