package parser

import "salesboard/internal/model"

// SheetAggregator 单个 sheet 的汇总器
type SheetAggregator struct {
	validator *SchemaValidator
}

// NewSheetAggregator 创建汇总器
func NewSheetAggregator(validator *SchemaValidator) *SheetAggregator {
	if validator == nil {
		validator = NewSchemaValidator()
	}
	return &SheetAggregator{validator: validator}
}

// Aggregate 汇总一个 sheet（第一行为表头）。
// 表头无法识别时返回空结果，不报错。
func (a *SheetAggregator) Aggregate(rows [][]string) model.SheetTotals {
	totals := model.NewSheetTotals()
	if len(rows) == 0 || !a.validator.Validate(rows[0]) {
		return totals
	}

	// 可识别布局中唯一的日期列是 billing date
	columns := DescribeColumns(rows[0])
	dateIdx := FirstOfKind(columns, model.KindDate)
	qtyIdx := FirstOfKind(columns, model.KindQuantity)
	customerIdx := FirstOfKind(columns, model.KindIdentifier)
	if customerIdx == NotFound {
		// 没有客户编码列时沿用首列
		customerIdx = 0
	}

	for _, row := range rows[1:] {
		qty := ParseQuantity(getCell(row, qtyIdx))

		totals.TotalOrders++
		totals.TotalSales += qty

		if customer := getCell(row, customerIdx); customer != "" {
			totals.Customers[customer] = struct{}{}
		}

		if year, _, ok := AggregateYearMonth(getCell(row, dateIdx)); ok {
			totals.SalesByYear.Add(year, qty)
		}
	}

	return totals
}
