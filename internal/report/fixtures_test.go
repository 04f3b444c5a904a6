package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sheetFixture struct {
	name string
	rows [][]any
}

// writeWorkbook 在 dir 下生成 xlsx 测试文件
func writeWorkbook(t *testing.T, dir, filename string, sheets ...sheetFixture) string {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	for i, sh := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sh.name))
		} else {
			_, err := f.NewSheet(sh.name)
			require.NoError(t, err)
		}
		for r, row := range sh.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(sh.name, cell, &values))
		}
	}

	path := filepath.Join(dir, filename)
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeFile(t *testing.T, dir, filename, content string) string {
	t.Helper()

	path := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var schemaAHeader = []any{
	"Customer Code", "Customer Name", "Billing Document", "Billing Date",
	"Vehicle Number", "Material Description", "Quantity", "Unit",
}

func schemaARow(customer string, serial int, qty any) []any {
	return []any{customer, "Name " + customer, "INV-" + customer, serial, "KA-01", "Engine Oil", qty, "L"}
}
