package parser

import "salesboard/internal/model"

// SchemaValidator 表头布局校验器
type SchemaValidator struct {
	schemas []model.Schema
}

// NewSchemaValidator 创建校验器（使用两种内置布局）
func NewSchemaValidator() *SchemaValidator {
	return NewSchemaValidatorWith(model.RecognizedSchemas...)
}

// NewSchemaValidatorWith 使用指定布局创建校验器
func NewSchemaValidatorWith(schemas ...model.Schema) *SchemaValidator {
	return &SchemaValidator{schemas: schemas}
}

// Validate 判断表头是否为某一布局的子集。
// 空白表头单元格不参与比较；没有任何非空表头时视为无法识别。
func (v *SchemaValidator) Validate(headers []string) bool {
	labels := make([]string, 0, len(headers))
	for _, h := range NormalizeHeaders(headers) {
		if h != "" {
			labels = append(labels, h)
		}
	}
	if len(labels) == 0 {
		return false
	}

	for _, schema := range v.schemas {
		if isSubset(labels, schema) {
			return true
		}
	}
	return false
}

func isSubset(labels []string, schema model.Schema) bool {
	for _, l := range labels {
		if !schema.Contains(l) {
			return false
		}
	}
	return true
}
