package parser

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeLabel 规范化表头：去首尾空格并转小写
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// NormalizeHeaders 规范化整行表头
func NormalizeHeaders(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeLabel(h)
	}
	return normalized
}

// getCell 安全取单元格；越界或 NotFound 返回空串
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber 解析数值单元格，支持千分位；NaN、Inf 视为非数值
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseQuantity 解析数量，无法解析时为 0
func ParseQuantity(s string) float64 {
	f, _ := parseNumber(s)
	return f
}
