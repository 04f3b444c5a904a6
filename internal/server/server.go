package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "salesboard/internal/api/v1"
	"salesboard/internal/config"
	"salesboard/internal/report"
	"salesboard/internal/store"
	"salesboard/internal/upload"
)

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.Store
	v1     *v1.Handler
	logger *zap.Logger
}

// NewEngine 根据配置创建汇总引擎
func NewEngine(cfg *config.AppConfig, baseDir string, logger *zap.Logger) *report.Engine {
	dirs := cfg.PartitionDirs(baseDir)
	partitions := make([]report.Partition, 0, len(cfg.Partitions))
	for _, p := range cfg.Partitions {
		partitions = append(partitions, report.Partition{Name: p.Name, Dir: dirs[p.Name]})
	}
	reducer := report.NewReducer(cfg.Data.Extensions, logger.Named("reducer"))
	return report.NewEngine(partitions, reducer, logger.Named("engine"))
}

// NewServer 创建服务器；baseDir 为相对路径的解析基准
func NewServer(cfg *config.AppConfig, baseDir string, logger *zap.Logger) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 分区目录不存在时，首次启动的汇总结果为空而不是报错
	if _, err := config.EnsureDataDir(cfg, baseDir); err != nil {
		return nil, fmt.Errorf("failed to create data directories: %w", err)
	}

	st, err := store.New(cfg.DBPath(baseDir))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	engine := NewEngine(cfg, baseDir, logger)
	uploads := upload.NewService(cfg.PartitionDirs(baseDir), cfg.Data.MaxFiles, st, logger.Named("upload"))

	s := &Server{
		router: gin.New(),
		store:  st,
		v1:     v1.NewHandler(engine, uploads, st, logger.Named("api")),
		logger: logger,
	}

	s.setupRoutes()

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery(), requestLogger(s.logger))
	s.router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	// 兼容旧前端的上传地址
	s.router.POST("/upload-excel", s.v1.Upload)

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// requestLogger 使用 zap 记录请求
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Handler 返回 http.Handler（用于测试与自定义 http.Server）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close 释放数据库连接
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore 获取存储（用于测试）
func (s *Server) GetStore() *store.Store {
	return s.store
}
