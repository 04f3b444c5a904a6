package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type yearlyItem struct {
	Year     int     `json:"year"`
	Quantity float64 `json:"quantity"`
}

// GetTotals 客户数、订单数、销量
// GET /api/totals
func (h *Handler) GetTotals(c *gin.Context) {
	totals, err := h.engine.GetTotals()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// GetSalesByYear 按年销量
// GET /api/sales-by-year
func (h *Handler) GetSalesByYear(c *gin.Context) {
	byYear, err := h.engine.GetSalesByYear()
	if err != nil {
		h.respondError(c, err)
		return
	}

	items := make([]yearlyItem, 0, len(byYear))
	for _, year := range byYear.Years() {
		items = append(items, yearlyItem{Year: year, Quantity: byYear[year]})
	}
	c.JSON(http.StatusOK, gin.H{
		"salesByYear": byYear,
		"items":       items,
	})
}

type partitionItem struct {
	Name    string `json:"name"`
	Dir     string `json:"dir"`
	Uploads int    `json:"uploads"`
}

// ListPartitions 已配置的分区及其上传文件数
// GET /api/partitions
func (h *Handler) ListPartitions(c *gin.Context) {
	partitions := h.engine.Partitions()
	items := make([]partitionItem, 0, len(partitions))
	for _, p := range partitions {
		item := partitionItem{Name: p.Name, Dir: p.Dir}
		if h.store != nil {
			n, err := h.store.CountUploads(p.Name)
			if err != nil {
				h.respondError(c, err)
				return
			}
			item.Uploads = n
		}
		items = append(items, item)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetPartitionTotals 单个分区的汇总
// GET /api/partitions/:name/totals
func (h *Handler) GetPartitionTotals(c *gin.Context) {
	totals, err := h.engine.PartitionTotals(c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
