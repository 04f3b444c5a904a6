package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salesboard/internal/report"
	"salesboard/internal/store"
	"salesboard/internal/upload"
)

// Handler V1 API 处理器
type Handler struct {
	engine  *report.Engine
	uploads *upload.Service
	store   *store.Store
	logger  *zap.Logger
}

// NewHandler 创建处理器；st 为 nil 时上传记录接口不可用
func NewHandler(engine *report.Engine, uploads *upload.Service, st *store.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		engine:  engine,
		uploads: uploads,
		store:   st,
		logger:  logger,
	}
}

// RegisterRoutes 注册 /api 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)

	// 汇总
	router.GET("/totals", h.GetTotals)
	router.GET("/sales-by-year", h.GetSalesByYear)
	router.GET("/partitions", h.ListPartitions)
	router.GET("/partitions/:name/totals", h.GetPartitionTotals)

	// 明细
	router.GET("/table", h.GetTable)

	// 上传
	router.GET("/uploads", h.ListUploads)
	router.POST("/upload-excel", h.Upload)
}

// Health 健康检查
// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError 按错误类型选择状态码
func (h *Handler) respondError(c *gin.Context, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, report.ErrUnknownPartition):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Bool("io", report.IsIOError(err)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
