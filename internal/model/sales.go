package model

import "sort"

// YearlyAggregate 年份 -> 数量合计
type YearlyAggregate map[int]float64

// Add 累加某年数量
func (y YearlyAggregate) Add(year int, qty float64) {
	y[year] += qty
}

// Merge 合并两个年度汇总，返回新的 map（不修改入参）
func (y YearlyAggregate) Merge(other YearlyAggregate) YearlyAggregate {
	out := make(YearlyAggregate, len(y)+len(other))
	for year, qty := range y {
		out[year] += qty
	}
	for year, qty := range other {
		out[year] += qty
	}
	return out
}

// Sum 所有年份数量之和
func (y YearlyAggregate) Sum() float64 {
	var total float64
	for _, qty := range y {
		total += qty
	}
	return total
}

// Years 升序年份列表
func (y YearlyAggregate) Years() []int {
	years := make([]int, 0, len(y))
	for year := range y {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// Totals 对外汇总
type Totals struct {
	TotalUsers  int     `json:"totalUsers"`
	TotalOrders int     `json:"totalOrders"`
	TotalSales  float64 `json:"totalSales"`
}

// DirectoryTotals 单个目录（或合并后）的汇总结果
type DirectoryTotals struct {
	TotalUsers  int             `json:"totalUsers"`
	TotalOrders int             `json:"totalOrders"`
	TotalSales  float64         `json:"totalSales"`
	SalesByYear YearlyAggregate `json:"salesByYear"`
}

// NewDirectoryTotals 创建空汇总
func NewDirectoryTotals() DirectoryTotals {
	return DirectoryTotals{SalesByYear: YearlyAggregate{}}
}

// Add 按字段相加，返回新值
func (d DirectoryTotals) Add(other DirectoryTotals) DirectoryTotals {
	return DirectoryTotals{
		TotalUsers:  d.TotalUsers + other.TotalUsers,
		TotalOrders: d.TotalOrders + other.TotalOrders,
		TotalSales:  d.TotalSales + other.TotalSales,
		SalesByYear: d.SalesByYear.Merge(other.SalesByYear),
	}
}

// Totals 去掉年度明细
func (d DirectoryTotals) Totals() Totals {
	return Totals{
		TotalUsers:  d.TotalUsers,
		TotalOrders: d.TotalOrders,
		TotalSales:  d.TotalSales,
	}
}

// SheetTotals 单个 sheet 的中间结果；客户集合在文件内合并后才计数
type SheetTotals struct {
	Customers   map[string]struct{}
	TotalOrders int
	TotalSales  float64
	SalesByYear YearlyAggregate
}

// NewSheetTotals 创建空的 sheet 中间结果
func NewSheetTotals() SheetTotals {
	return SheetTotals{
		Customers:   make(map[string]struct{}),
		SalesByYear: YearlyAggregate{},
	}
}

// Merge 合并同一文件内的两个 sheet 结果（客户集合取并集）
func (s SheetTotals) Merge(other SheetTotals) SheetTotals {
	out := SheetTotals{
		Customers:   make(map[string]struct{}, len(s.Customers)+len(other.Customers)),
		TotalOrders: s.TotalOrders + other.TotalOrders,
		TotalSales:  s.TotalSales + other.TotalSales,
		SalesByYear: s.SalesByYear.Merge(other.SalesByYear),
	}
	for c := range s.Customers {
		out.Customers[c] = struct{}{}
	}
	for c := range other.Customers {
		out.Customers[c] = struct{}{}
	}
	return out
}

// DirectoryTotals 将文件级结果折叠为目录汇总项（客户数按文件计）
func (s SheetTotals) DirectoryTotals() DirectoryTotals {
	return DirectoryTotals{
		TotalUsers:  len(s.Customers),
		TotalOrders: s.TotalOrders,
		TotalSales:  s.TotalSales,
		SalesByYear: s.SalesByYear.Merge(nil),
	}
}

// TableRow 表头 -> 单元格值
type TableRow map[string]any

// TableFilter 可选的年/月过滤条件
type TableFilter struct {
	Year  *int
	Month *int
}

// Active 是否存在任一过滤条件
func (f TableFilter) Active() bool {
	return f.Year != nil || f.Month != nil
}

// TableResult 明细表查询结果
type TableResult struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Rows  []TableRow `json:"rows"`
}
