package server

import (
	"context"
	"net/http"

	"tour-insight/app/auth"
	"tour-insight/app/config"
	"tour-insight/app/handler"
	"tour-insight/app/logger"
	"tour-insight/app/middleware"
	"tour-insight/app/repository"
	"tour-insight/app/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server 表示 HTTP 服务器
type Server struct {
	Config *config.Config
	Logger *logger.Logger
	db     *gorm.DB
	gin    *gin.Engine
	http   *http.Server
	ranks  *service.RankService
	warmer *service.RankWarmer
}

// New 创建服务器并装配各层依赖
func New(cfg *config.Config, log *logger.Logger, db *gorm.DB) (*Server, error) {
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	tourRepo := repository.NewTourRepository(db)
	ranks := service.NewRankService(tourRepo, cfg.Cache, log)

	s := &Server{
		Config: cfg,
		Logger: log,
		db:     db,
		gin:    router,
		http: &http.Server{
			Addr:    ":" + cfg.Server.Port,
			Handler: router,
		},
		ranks: ranks,
	}

	if cfg.Cache.Enabled && cfg.Cache.WarmSchedule != "" {
		warmer, err := service.NewRankWarmer(cfg.Cache.WarmSchedule, ranks, log)
		if err != nil {
			return nil, err
		}
		s.warmer = warmer
	}

	router.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.CORS(cfg.Server.CORSOrigins),
		middleware.Timeout(cfg.Server.RequestTimeoutDuration()),
	)

	s.setupRoutes(tourRepo)
	return s, nil
}

// Handler 返回路由，便于测试直接驱动
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start 启动服务器
func (s *Server) Start() error {
	s.Logger.Infof("在端口 %s 启动服务器", s.http.Addr)

	if s.warmer != nil {
		s.warmer.Start()
	}

	return s.http.ListenAndServe()
}

// Shutdown 停止后台任务并关闭 HTTP 服务
func (s *Server) Shutdown(ctx context.Context) error {
	if s.warmer != nil {
		s.warmer.Stop()
	}
	return s.http.Shutdown(ctx)
}

// setupRoutes 设置API路由
func (s *Server) setupRoutes(tourRepo repository.TourRepository) {
	userRepo := repository.NewUserRepository(s.db)
	hasher := auth.NewPasswordHasher(s.Config.User.PasswordCost)

	rankHandler := handler.NewRankHandler(s.ranks, s.Logger)
	tourHandler := handler.NewTourHandler(service.NewTourService(tourRepo, s.ranks), s.Logger)
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, hasher, s.Config.User.DefaultPassword), s.Logger)
	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, hasher), s.Logger)
	healthHandler := handler.NewHealthHandler(s.db, s.Logger)

	r := s.gin

	r.GET("/health", healthHandler.CheckHealth)

	// 排行与统计
	r.GET("/commentsRank", rankHandler.CommentsRank)
	r.GET("/scoreRank", rankHandler.ScoreRank)
	r.GET("/cityRank", rankHandler.CityRank)

	// 景点
	r.GET("/tours", tourHandler.GetTours)
	r.POST("/tour", tourHandler.CreateTour)
	r.GET("/tour/:id", tourHandler.GetTour)
	r.PUT("/tour/:id", tourHandler.UpdateTour)
	r.DELETE("/tour/:id", tourHandler.DeleteTour)

	// 认证
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// 用户
	r.GET("/users", userHandler.GetUsers)
	r.GET("/user/:id", userHandler.GetUser)
	r.POST("/user", userHandler.CreateUser)
	r.PUT("/user/:id", userHandler.UpdateUser)
	r.DELETE("/user/:id", userHandler.DeleteUser)
}
