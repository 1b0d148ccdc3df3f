package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobhunter-backend/internal/chat"
	"jobhunter-backend/internal/corpus"
	"jobhunter-backend/internal/services/health"
	"jobhunter-backend/internal/shared/config"
	"jobhunter-backend/internal/shared/server/middleware"
	"jobhunter-backend/internal/shared/server/respond"
	"jobhunter-backend/internal/uploads"
)

const rateLimitGroupChat = "CHAT"

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config    config.Config
	Health    *health.Service
	Chat      *chat.Handler
	Uploads   *uploads.Handler
	CorpusDev *corpus.DevHandler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				rateLimitGroupChat: {Rate: 5, Burst: 20},
			},
			GroupFor: func(c *gin.Context) string {
				if strings.HasPrefix(c.Request.URL.Path, "/chat/") {
					return rateLimitGroupChat
				}
				return ""
			},
		}),
	)

	r.GET("/", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"message": "Resume Parser & Job Hunter API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"parse_resume": "POST /parse-resume",
				"create_agent": "POST /create-agent/{session_id}",
				"chat":         "POST /chat/{session_id}",
			},
		})
	})
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	})

	deps.Uploads.RegisterRoutes(r)
	deps.Chat.RegisterRoutes(r)
	if deps.Config.Env == "dev" && deps.CorpusDev != nil {
		dev := r.Group("/dev")
		deps.CorpusDev.RegisterDevRoutes(dev)
	}

	return r
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
