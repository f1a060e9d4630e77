package server

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"rfp-backend/internal/llm"
	"rfp-backend/internal/llm/anthropic"
	"rfp-backend/internal/llm/openai"
	"rfp-backend/internal/rfp"
	"rfp-backend/internal/shared/config"
	"rfp-backend/internal/shared/server/middleware"
	"rfp-backend/internal/shared/server/respond"
	"rfp-backend/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	svc := &rfp.Service{
		LLM:           newLLMClient(cfg),
		PromptVersion: cfg.PromptVersion,
	}
	handler := rfp.NewHandler(svc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	handler.RegisterRoutes(api)

	return r
}

func newLLMClient(cfg config.Config) llm.Client {
	switch cfg.LLMProvider {
	case "openai":
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
		if err != nil {
			telemetry.Warn("llm.client.unavailable", map[string]any{"provider": "openai", "err": err.Error()})
			return llm.PlaceholderClient{}
		}
		return client
	default:
		client, err := anthropic.NewClient(os.Getenv("ANTHROPIC_API_KEY"), cfg.LLMModel)
		if err != nil {
			telemetry.Warn("llm.client.unavailable", map[string]any{"provider": "anthropic", "err": err.Error()})
			return llm.PlaceholderClient{}
		}
		return client
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
