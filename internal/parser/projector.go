package parser

import "salesboard/internal/model"

// SheetTableProjector 将 sheet 数据行投影为明细表行
type SheetTableProjector struct {
	validator *SchemaValidator
}

// NewSheetTableProjector 创建投影器
func NewSheetTableProjector(validator *SchemaValidator) *SheetTableProjector {
	if validator == nil {
		validator = NewSchemaValidator()
	}
	return &SheetTableProjector{validator: validator}
}

// Project 生成明细行。
// 任一日期列的年份或月份与过滤条件不一致时，整行剔除；没有日期列的行不受过滤影响。
func (p *SheetTableProjector) Project(rows [][]string, filter model.TableFilter) []model.TableRow {
	if len(rows) == 0 || !p.validator.Validate(rows[0]) {
		return nil
	}

	columns := DescribeColumns(rows[0])

	out := make([]model.TableRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if tr, keep := projectRow(row, columns, filter); keep {
			out = append(out, tr)
		}
	}
	return out
}

func projectRow(row []string, columns []model.ColumnDescriptor, filter model.TableFilter) (model.TableRow, bool) {
	tr := make(model.TableRow, len(columns))
	for _, col := range columns {
		raw := getCell(row, col.Index)

		if col.Kind != model.KindDate {
			tr[col.Label] = cellValue(raw)
			continue
		}

		if filter.Active() && !matchesFilter(raw, filter) {
			return nil, false
		}
		if value, converted := TableDate(raw); converted {
			tr[col.Label] = value
		} else {
			tr[col.Label] = cellValue(raw)
		}
	}
	return tr, true
}

func matchesFilter(raw string, filter model.TableFilter) bool {
	year, month, ok := tableYearMonth(raw)
	if !ok {
		return false
	}
	if filter.Year != nil && year != *filter.Year {
		return false
	}
	if filter.Month != nil && month != *filter.Month {
		return false
	}
	return true
}

// cellValue 空单元格输出为 nil
func cellValue(raw string) any {
	if raw == "" {
		return nil
	}
	return raw
}
