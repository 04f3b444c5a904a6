package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"salesboard/internal/model"
)

func TestSheetAggregator_Aggregate(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Customer Code", "Customer Name", "Billing Date", "Quantity"},
		{"C1", "Alpha", "44927", "10"},
		{"C2", "Beta", "45292", "4"},
		{"C1", "Alpha", "2022-05-01", "6"},
		{"C3", "Gamma", "", "3"},
		{"C3", "Gamma", "45000", "oops"},
	}

	got := NewSheetAggregator(nil).Aggregate(rows)

	assert.Equal(t, 5, got.TotalOrders)
	assert.Equal(t, 23.0, got.TotalSales)
	assert.Len(t, got.Customers, 3)
	assert.Equal(t, model.YearlyAggregate{2022: 6, 2023: 10, 2024: 4}, got.SalesByYear)
	assert.LessOrEqual(t, got.SalesByYear.Sum(), got.TotalSales)
}

func TestSheetAggregator_UnparsableQuantityStillCounted(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"customer code", "billing date", "quantity"},
		{"C1", "", "ten"},
		{"C2", "44927", "NaN"},
		{"C3", "44927", "inf"},
		{"C4", "44927", "-Infinity"},
	}

	got := NewSheetAggregator(nil).Aggregate(rows)
	assert.Equal(t, 4, got.TotalOrders)
	assert.Equal(t, 0.0, got.TotalSales)
	assert.Equal(t, model.YearlyAggregate{2023: 0}, got.SalesByYear)

	_, err := json.Marshal(got.DirectoryTotals())
	assert.NoError(t, err)
}

func TestSheetAggregator_UnrecognizedHeader(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"notes"},
		{"call back on monday"},
	}

	got := NewSheetAggregator(nil).Aggregate(rows)
	assert.Zero(t, got.TotalOrders)
	assert.Zero(t, got.TotalSales)
	assert.Empty(t, got.Customers)
	assert.Empty(t, got.SalesByYear)

	assert.Zero(t, NewSheetAggregator(nil).Aggregate(nil).TotalOrders)
}

func TestSheetAggregator_MissingColumnsResolveToNothing(t *testing.T) {
	t.Parallel()

	// 子集布局：没有数量列和日期列
	rows := [][]string{
		{"customer name", "customer code"},
		{"Alpha", "C9"},
		{"Beta", "C9"},
	}

	got := NewSheetAggregator(nil).Aggregate(rows)
	assert.Equal(t, 2, got.TotalOrders)
	assert.Equal(t, 0.0, got.TotalSales)
	assert.Equal(t, map[string]struct{}{"C9": {}}, got.Customers)
}

func TestSheetAggregator_IdentifierFallsBackToFirstColumn(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"customer name", "quantity"},
		{"Alpha", "1"},
		{"Beta", "2"},
		{"Alpha", "3"},
	}

	got := NewSheetAggregator(nil).Aggregate(rows)
	assert.Len(t, got.Customers, 2)
	assert.Equal(t, 6.0, got.TotalSales)
}

func TestSheetAggregator_DuplicateQuantityUsesFirst(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"customer code", "quantity", "quantity"},
		{"C1", "2", "100"},
	}

	got := NewSheetAggregator(nil).Aggregate(rows)
	assert.Equal(t, 2.0, got.TotalSales)
}
