package v1

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"January":   1,
		"june":      6,
		" JULY ":    7,
		"dec":       12,
		"Sep":       9,
		"3":         3,
		"12":        12,
		"september": 9,
	}
	for in, want := range cases {
		got, err := ParseMonth(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseMonth_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "13", "0", "juneish", "Juni"} {
		_, err := ParseMonth(in)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr), in)
		assert.Equal(t, "month", vErr.Field)
	}
}

func TestParseYear(t *testing.T) {
	t.Parallel()

	got, err := ParseYear(" 2023 ")
	require.NoError(t, err)
	assert.Equal(t, 2023, got)

	for _, in := range []string{"", "twenty", "2023.5", "-1", "0"} {
		_, err := ParseYear(in)
		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr), in)
	}
}

func TestParseTableFilter(t *testing.T) {
	t.Parallel()

	f, err := parseTableFilter("", "")
	require.NoError(t, err)
	assert.False(t, f.Active())

	f, err = parseTableFilter("2023", "June")
	require.NoError(t, err)
	require.NotNil(t, f.Year)
	require.NotNil(t, f.Month)
	assert.Equal(t, 2023, *f.Year)
	assert.Equal(t, 6, *f.Month)

	_, err = parseTableFilter("2023", "Smarch")
	assert.Error(t, err)
}
