package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesboard/internal/model"
)

// GetTable 按年/月过滤的明细表
// GET /api/table?year=2023&month=june
func (h *Handler) GetTable(c *gin.Context) {
	filter, err := parseTableFilter(c.Query("year"), c.Query("month"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.engine.GetFilteredTable(filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// parseTableFilter 两个参数都可省略；给出时必须合法
func parseTableFilter(yearParam, monthParam string) (model.TableFilter, error) {
	var filter model.TableFilter
	if yearParam != "" {
		year, err := ParseYear(yearParam)
		if err != nil {
			return filter, err
		}
		filter.Year = &year
	}
	if monthParam != "" {
		month, err := ParseMonth(monthParam)
		if err != nil {
			return filter, err
		}
		filter.Month = &month
	}
	return filter, nil
}
