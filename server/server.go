package server

import (
	"net/http"
	"time"

	"note-go/config"
	"note-go/pkg/logger"
	"note-go/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server 是应用程序的核心服务器结构体
type Server struct {
	router    *gin.Engine
	store     *store.Store
	cfg       *config.Config
	sweepStop chan struct{}
}

// NewServer 创建并初始化一个新的服务器实例
func NewServer(st *store.Store, cfg *config.Config) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:    gin.Default(),
		store:     st,
		cfg:       cfg,
		sweepStop: make(chan struct{}),
	}

	s.router.Use(requestID())

	// 配置 CORS
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.Origins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.Origins
	} else {
		// No allow-list configured: open for local development
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	s.router.Use(cors.New(corsConfig))

	// 健康检查端点
	s.router.GET("/health", func(c *gin.Context) {
		health := gin.H{"status": "up"}
		if err := s.store.Ping(); err != nil {
			health["database"] = "down"
			c.JSON(http.StatusServiceUnavailable, health)
			return
		}
		health["database"] = "up"
		c.JSON(http.StatusOK, health)
	})

	// 注册 API 路由
	s.registerRoutes()

	return s
}

// registerRoutes 注册 REST API 路由
func (s *Server) registerRoutes() {
	auth := s.router.Group("/auth")
	{
		auth.POST("/register", s.registerHandler)
		auth.POST("/login", s.loginHandler)
		auth.POST("/logout", s.logoutHandler)
		auth.GET("/me", s.requireAuth(), s.profileHandler)
	}

	api := s.router.Group("/api")
	api.Use(s.requireAuth())
	{
		api.GET("/notes", s.listNotesHandler)
		api.GET("/note/:id", s.getNoteHandler)
		api.POST("/note", s.createNoteHandler)
		api.PATCH("/note/:id", s.updateNoteHandler)
		api.DELETE("/note/:id", s.deleteNoteHandler)
	}
}

// Router 返回 Gin 引擎实例
func (s *Server) Router() *gin.Engine {
	return s.router
}

// StartSessionSweeper 启动会话清理任务，定期清理过期的会话
func (s *Server) StartSessionSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				removed, err := s.store.SweepExpiredSessions()
				if err != nil {
					logger.Error("Failed to clean up sessions", zap.Error(err))
					continue
				}
				if removed > 0 {
					logger.Debug("Swept expired sessions", zap.Int64("removed", removed))
				}
			case <-s.sweepStop:
				return
			}
		}
	}()
}

// StopSessionSweeper 停止会话清理任务
func (s *Server) StopSessionSweeper() {
	close(s.sweepStop)
}
