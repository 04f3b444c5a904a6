package v1

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidationError 请求参数不合法（在引擎运行前拒绝）
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ParseMonth 解析月份：英文月份名（不区分大小写，支持三字母缩写）或 1-12
func ParseMonth(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, &ValidationError{Field: "month", Message: "month is required"}
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, &ValidationError{Field: "month", Message: fmt.Sprintf("%d is out of range 1-12", n)}
		}
		return n, nil
	}

	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if s == name || s == name[:3] {
			return int(m), nil
		}
	}
	return 0, &ValidationError{Field: "month", Message: fmt.Sprintf("unrecognized month name %q", s)}
}

// ParseYear 解析年份（正整数）
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: "year", Message: "year is required"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: "year", Message: fmt.Sprintf("%q is not an integer", s)}
	}
	if n <= 0 {
		return 0, &ValidationError{Field: "year", Message: fmt.Sprintf("%d must be positive", n)}
	}
	return n, nil
}
