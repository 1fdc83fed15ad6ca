// Package server wires the calculator registry to its HTTP boundary. It owns
// request validation, the error envelope, and nothing else: calculators never
// see HTTP and the registry never sees status codes.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/danielxmed/nobra-calculator-sub006/internal/audit"
	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

// Server holds the handler dependencies.
type Server struct {
	reg   *registry.Registry
	store audit.Store
}

// New builds the gin engine with all routes and middleware attached.
func New(reg *registry.Registry, store audit.Store, corsOrigins []string) *gin.Engine {
	s := &Server{reg: reg, store: store}

	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.CustomRecovery(func(c *gin.Context, err any) {
			log.Printf("panic recovered: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorEnvelope{
				Error:   "InternalServerError",
				Message: "unexpected internal error",
			})
		}),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/healthz", s.healthz)
	router.GET("/readyz", s.readyz)

	api := router.Group("/api")
	{
		api.GET("/scores", s.listScores)
		api.GET("/scores/:id", s.getScore)
		api.GET("/categories", s.listCategories)
		api.POST("/:id/calculate", s.calculate)
	}

	return router
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"audit":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// recordAudit is fire-and-forget; audit failures are logged, never surfaced.
func (s *Server) recordAudit(id string, params score.Params, outcome string, took time.Duration) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.store.Record(ctx, audit.Entry{
			ScoreID:  id,
			Params:   params,
			Outcome:  outcome,
			Duration: took,
		}); err != nil {
			log.Printf("audit record failed for %s: %v", id, err)
		}
	}()
}
