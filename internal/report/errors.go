package report

import (
	"errors"
	"fmt"
)

// ErrUnknownPartition 未配置的分区
var ErrUnknownPartition = errors.New("unknown partition")

// IOError 目录无法列出或文件无法作为表格打开/读取
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError 判断错误链中是否含有 IOError
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
