package report

import (
	"fmt"

	"go.uber.org/zap"

	"salesboard/internal/model"
)

// Partition 一个品类目录
type Partition struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
}

// Engine 在各分区上运行 Reducer 并合并结果。
// 不持有跨请求的状态，每次调用都重新扫描文件。
type Engine struct {
	partitions []Partition
	reducer    *Reducer
	logger     *zap.Logger
}

// NewEngine 创建引擎
func NewEngine(partitions []Partition, reducer *Reducer, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		partitions: partitions,
		reducer:    reducer,
		logger:     logger,
	}
}

// Partitions 已配置的分区
func (e *Engine) Partitions() []Partition {
	out := make([]Partition, len(e.partitions))
	copy(out, e.partitions)
	return out
}

// Partition 按名称查找分区
func (e *Engine) Partition(name string) (Partition, bool) {
	for _, p := range e.partitions {
		if p.Name == name {
			return p, true
		}
	}
	return Partition{}, false
}

// MergeTotals 按字段相加，年度汇总按年合并
func MergeTotals(parts ...model.DirectoryTotals) model.DirectoryTotals {
	merged := model.NewDirectoryTotals()
	for _, p := range parts {
		merged = merged.Add(p)
	}
	return merged
}

// DirectoryTotals 所有分区合并后的完整汇总
func (e *Engine) DirectoryTotals() (model.DirectoryTotals, error) {
	parts := make([]model.DirectoryTotals, 0, len(e.partitions))
	for _, p := range e.partitions {
		totals, err := e.reducer.ReduceTotals(p.Dir)
		if err != nil {
			return model.NewDirectoryTotals(), fmt.Errorf("partition %s: %w", p.Name, err)
		}
		parts = append(parts, totals)
	}
	return MergeTotals(parts...), nil
}

// GetTotals 客户数、订单数、销量合计
func (e *Engine) GetTotals() (model.Totals, error) {
	totals, err := e.DirectoryTotals()
	if err != nil {
		return model.Totals{}, err
	}
	return totals.Totals(), nil
}

// GetSalesByYear 按年销量
func (e *Engine) GetSalesByYear() (model.YearlyAggregate, error) {
	totals, err := e.DirectoryTotals()
	if err != nil {
		return nil, err
	}
	return totals.SalesByYear, nil
}

// PartitionTotals 单个分区的汇总
func (e *Engine) PartitionTotals(name string) (model.DirectoryTotals, error) {
	p, ok := e.Partition(name)
	if !ok {
		return model.NewDirectoryTotals(), fmt.Errorf("%w: %s", ErrUnknownPartition, name)
	}
	totals, err := e.reducer.ReduceTotals(p.Dir)
	if err != nil {
		return model.NewDirectoryTotals(), fmt.Errorf("partition %s: %w", p.Name, err)
	}
	return totals, nil
}

// GetFilteredTable 按年/月过滤的明细表，分区结果按配置顺序拼接
func (e *Engine) GetFilteredTable(filter model.TableFilter) (*model.TableResult, error) {
	result := &model.TableResult{Rows: make([]model.TableRow, 0)}
	if filter.Year != nil {
		result.Year = *filter.Year
	}
	if filter.Month != nil {
		result.Month = *filter.Month
	}

	for _, p := range e.partitions {
		rows, err := e.reducer.ReduceTable(p.Dir, filter)
		if err != nil {
			return nil, fmt.Errorf("partition %s: %w", p.Name, err)
		}
		result.Rows = append(result.Rows, rows...)
	}

	e.logger.Debug("table projected",
		zap.Int("year", result.Year),
		zap.Int("month", result.Month),
		zap.Int("rows", len(result.Rows)),
	)
	return result, nil
}
