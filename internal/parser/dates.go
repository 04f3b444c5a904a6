package parser

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// 两种序列号换算口径的起点相差一天，分别用于汇总和明细表，不可合并。
var tableEpoch = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

// maxSerialDate 9999-12-31 对应的序列号
const maxSerialDate = 2958465

// textDateLayouts 文本日期支持的格式，按顺序尝试
var textDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"02.01.2006",
}

// AggregateSerialToDate 汇总口径：整数天数，起点与 Excel 1900 日期系统一致（1899-12-30）
func AggregateSerialToDate(serial float64) (time.Time, error) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial > maxSerialDate {
		return time.Time{}, fmt.Errorf("invalid serial date: %v", serial)
	}
	return excelize.ExcelDateToTime(math.Floor(serial), false)
}

// TableSerialToDate 明细表口径：整数天数，起点为 1899-12-31
func TableSerialToDate(serial float64) (time.Time, error) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < 0 || serial > maxSerialDate {
		return time.Time{}, fmt.Errorf("invalid serial date: %v", serial)
	}
	return tableEpoch.AddDate(0, 0, int(math.Floor(serial))), nil
}

// ParseTextDate 解析文本日期
func ParseTextDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AggregateYearMonth 汇总口径下解析单元格的年月；无法解析时 ok=false
func AggregateYearMonth(raw string) (year, month int, ok bool) {
	t, ok := resolveDate(raw, AggregateSerialToDate)
	if !ok {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}

// TableDate 明细表口径：数值序列号转为 YYYY-MM-DD；非数值原样返回且 converted=false
func TableDate(raw string) (value string, converted bool) {
	serial, isNumber := parseNumber(raw)
	if !isNumber {
		return raw, false
	}
	t, err := TableSerialToDate(serial)
	if err != nil {
		return raw, false
	}
	return t.Format("2006-01-02"), true
}

// tableYearMonth 明细表过滤使用的年月
func tableYearMonth(raw string) (year, month int, ok bool) {
	t, ok := resolveDate(raw, TableSerialToDate)
	if !ok {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}

func resolveDate(raw string, fromSerial func(float64) (time.Time, error)) (time.Time, bool) {
	if serial, isNumber := parseNumber(raw); isNumber {
		t, err := fromSerial(serial)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return ParseTextDate(raw)
}
