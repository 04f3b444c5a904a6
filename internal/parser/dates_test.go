package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSerialToDate(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		44927:   "2023-01-01",
		44927.9: "2023-01-01",
		45092:   "2023-06-15",
		45122:   "2023-07-15",
		43831:   "2020-01-01",
	}
	for serial, want := range cases {
		got, err := AggregateSerialToDate(serial)
		require.NoError(t, err)
		assert.Equal(t, want, got.Format("2006-01-02"), "serial %v", serial)
	}

	for _, bad := range []float64{-1, 1e300, maxSerialDate + 1} {
		_, err := AggregateSerialToDate(bad)
		assert.Error(t, err, "serial %v", bad)
	}

	got, err := AggregateSerialToDate(maxSerialDate)
	require.NoError(t, err)
	assert.Equal(t, "9999-12-31", got.Format("2006-01-02"))
}

func TestTableSerialToDate_OneDayAfterAggregate(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		44927: "2023-01-02",
		45092: "2023-06-16",
		45122: "2023-07-16",
		1:     "1900-01-01",
	}
	for serial, want := range cases {
		got, err := TableSerialToDate(serial)
		require.NoError(t, err)
		assert.Equal(t, want, got.Format("2006-01-02"), "serial %v", serial)
	}

	for _, bad := range []float64{-1, 1e300, maxSerialDate + 1} {
		_, err := TableSerialToDate(bad)
		assert.Error(t, err, "serial %v", bad)
	}
}

func TestAggregateYearMonth(t *testing.T) {
	t.Parallel()

	year, month, ok := AggregateYearMonth("44927")
	require.True(t, ok)
	assert.Equal(t, 2023, year)
	assert.Equal(t, 1, month)

	year, month, ok = AggregateYearMonth("2022-03-04")
	require.True(t, ok)
	assert.Equal(t, 2022, year)
	assert.Equal(t, 3, month)

	year, month, ok = AggregateYearMonth("March 4, 2021")
	require.True(t, ok)
	assert.Equal(t, 2021, year)
	assert.Equal(t, 3, month)

	_, _, ok = AggregateYearMonth("")
	assert.False(t, ok)
	_, _, ok = AggregateYearMonth("not a date")
	assert.False(t, ok)
	for _, raw := range []string{"NaN", "inf", "1e300"} {
		_, _, ok = AggregateYearMonth(raw)
		assert.False(t, ok, "raw %q", raw)
	}
}

func TestTableDate(t *testing.T) {
	t.Parallel()

	v, converted := TableDate("44927")
	assert.True(t, converted)
	assert.Equal(t, "2023-01-02", v)

	v, converted = TableDate("2023-06-15")
	assert.False(t, converted)
	assert.Equal(t, "2023-06-15", v)

	v, converted = TableDate("")
	assert.False(t, converted)
	assert.Equal(t, "", v)

	for _, raw := range []string{"nan", "Infinity", "1e300"} {
		v, converted = TableDate(raw)
		assert.False(t, converted, "raw %q", raw)
		assert.Equal(t, raw, v)
	}
}
