package report

import (
	"github.com/xuri/excelize/v2"
)

// Sheet 单个工作表的原始行（第一行为表头）
type Sheet struct {
	Name string
	Rows [][]string
}

// ReadWorkbook 读取工作簿中所有 sheet 的原始单元格值。
// 数值单元格保留原始值（日期为序列号），文件在返回前关闭。
func ReadWorkbook(path string) (sheets []Sheet, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	for _, name := range f.GetSheetList() {
		rows, rerr := f.GetRows(name, excelize.Options{RawCellValue: true})
		if rerr != nil {
			return nil, &IOError{Op: "read sheet " + name, Path: path, Err: rerr}
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}
