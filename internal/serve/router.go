package serve

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dtnitsch/seo-web-parser/internal/tools"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"
)

// NewRouter exposes s as a streamable HTTP endpoint at /mcp next to /healthz.
func NewRouter(s *server.MCPServer, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"server":  tools.ServerName,
			"version": tools.ServerVersion,
		})
	})
	router.Any("/mcp", gin.WrapH(server.NewStreamableHTTPServer(s)))
	return router
}

// requestLogger tags every response with an X-Request-ID and logs it.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		logger.Info("http request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
