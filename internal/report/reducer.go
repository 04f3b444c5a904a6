package report

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"salesboard/internal/model"
	"salesboard/internal/parser"
)

// Reducer 对目录内所有可识别文件执行汇总或明细投影
type Reducer struct {
	extensions map[string]bool
	validator  *parser.SchemaValidator
	aggregator *parser.SheetAggregator
	projector  *parser.SheetTableProjector
	logger     *zap.Logger
}

// NewReducer 创建目录归并器；extensions 为可识别的扩展名（如 ".xlsx"）
func NewReducer(extensions []string, logger *zap.Logger) *Reducer {
	if logger == nil {
		logger = zap.NewNop()
	}
	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}

	validator := parser.NewSchemaValidator()
	return &Reducer{
		extensions: exts,
		validator:  validator,
		aggregator: parser.NewSheetAggregator(validator),
		projector:  parser.NewSheetTableProjector(validator),
		logger:     logger,
	}
}

// ListFiles 列出目录下（不递归）可识别的表格文件，按文件名排序
func (r *Reducer) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &IOError{Op: "list", Path: dir, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		// Excel 锁文件与隐藏文件
		if strings.HasPrefix(name, "~$") || strings.HasPrefix(name, ".") {
			continue
		}
		if !r.extensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}

// ReduceTotals 汇总目录。客户去重按文件进行，跨文件直接相加。
func (r *Reducer) ReduceTotals(dir string) (model.DirectoryTotals, error) {
	totals := model.NewDirectoryTotals()

	files, err := r.ListFiles(dir)
	if err != nil {
		return totals, err
	}

	for _, path := range files {
		fileTotals, err := r.aggregateFile(path)
		if err != nil {
			return model.NewDirectoryTotals(), err
		}
		totals = totals.Add(fileTotals.DirectoryTotals())
	}

	r.logger.Debug("directory reduced",
		zap.String("dir", dir),
		zap.Int("files", len(files)),
		zap.Int("orders", totals.TotalOrders),
	)
	return totals, nil
}

// ReduceTable 投影目录内所有明细行，保持文件、sheet、行的顺序
func (r *Reducer) ReduceTable(dir string, filter model.TableFilter) ([]model.TableRow, error) {
	files, err := r.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	rows := make([]model.TableRow, 0)
	for _, path := range files {
		sheets, err := ReadWorkbook(path)
		if err != nil {
			return nil, err
		}
		for _, sheet := range sheets {
			if !r.recognized(path, sheet) {
				continue
			}
			rows = append(rows, r.projector.Project(sheet.Rows, filter)...)
		}
	}
	return rows, nil
}

func (r *Reducer) aggregateFile(path string) (model.SheetTotals, error) {
	sheets, err := ReadWorkbook(path)
	if err != nil {
		return model.SheetTotals{}, err
	}

	fileTotals := model.NewSheetTotals()
	for _, sheet := range sheets {
		if !r.recognized(path, sheet) {
			continue
		}
		fileTotals = fileTotals.Merge(r.aggregator.Aggregate(sheet.Rows))
	}
	return fileTotals, nil
}

// recognized 表头不可识别的 sheet 只记录日志并跳过
func (r *Reducer) recognized(path string, sheet Sheet) bool {
	var header []string
	if len(sheet.Rows) > 0 {
		header = sheet.Rows[0]
	}
	if r.validator.Validate(header) {
		return true
	}
	r.logger.Debug("sheet skipped: unrecognized header",
		zap.String("file", filepath.Base(path)),
		zap.String("sheet", sheet.Name),
		zap.Strings("header", header),
	)
	return false
}
