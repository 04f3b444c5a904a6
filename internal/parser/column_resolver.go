package parser

import (
	"strings"

	"salesboard/internal/model"
)

// NotFound 列不存在
const NotFound = -1

// ResolveColumns 查找所需列在表头中的位置。
// 同名列取第一次出现的位置；缺失的列返回 NotFound。
func ResolveColumns(headers []string, labels ...string) map[string]int {
	normalized := NormalizeHeaders(headers)

	out := make(map[string]int, len(labels))
	for _, want := range labels {
		want = NormalizeLabel(want)
		out[want] = NotFound
		for i, h := range normalized {
			if h == want {
				out[want] = i
				break
			}
		}
	}
	return out
}

// DescribeColumns 为每个非空表头生成列描述。
// 标识列和数量列取第一次出现的位置，重复出现的同名列按透传处理；
// 表头包含 "date" 的列都视为日期列。
func DescribeColumns(headers []string) []model.ColumnDescriptor {
	normalized := NormalizeHeaders(headers)
	tagged := ResolveColumns(headers, model.ColumnCustomerCode, model.ColumnQuantity)

	out := make([]model.ColumnDescriptor, 0, len(normalized))
	for i, label := range normalized {
		if label == "" {
			continue
		}
		kind := model.KindPassthrough
		switch {
		case i == tagged[model.ColumnCustomerCode]:
			kind = model.KindIdentifier
		case i == tagged[model.ColumnQuantity]:
			kind = model.KindQuantity
		case strings.Contains(label, "date"):
			kind = model.KindDate
		}
		out = append(out, model.ColumnDescriptor{Index: i, Label: label, Kind: kind})
	}
	return out
}

// FirstOfKind 第一个指定语义列的位置，不存在时返回 NotFound
func FirstOfKind(columns []model.ColumnDescriptor, kind model.ColumnKind) int {
	for _, col := range columns {
		if col.Kind == kind {
			return col.Index
		}
	}
	return NotFound
}
