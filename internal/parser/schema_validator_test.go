package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salesboard/internal/model"
)

func TestSchemaValidator_FullSchemas(t *testing.T) {
	t.Parallel()

	v := NewSchemaValidator()
	for _, schema := range model.RecognizedSchemas {
		assert.True(t, v.Validate(schema.Labels), "schema %s", schema.Name)
	}
}

func TestSchemaValidator_SubsetPasses(t *testing.T) {
	t.Parallel()

	v := NewSchemaValidator()
	// 只包含 A 布局 8 列中的 3 列
	assert.True(t, v.Validate([]string{"Customer Code", " QUANTITY ", "vehicle number"}))
	// 只包含 B 布局特有的列
	assert.True(t, v.Validate([]string{"sku", "plant", "billing date"}))
}

func TestSchemaValidator_ForeignLabelFails(t *testing.T) {
	t.Parallel()

	v := NewSchemaValidator()
	assert.False(t, v.Validate([]string{"notes"}))
	assert.False(t, v.Validate([]string{"customer code", "quantity", "notes"}))
	// 同时混用两种布局的特有列
	assert.False(t, v.Validate([]string{"vehicle number", "sku"}))
}

func TestSchemaValidator_BlankHeaders(t *testing.T) {
	t.Parallel()

	v := NewSchemaValidator()
	assert.False(t, v.Validate(nil))
	assert.False(t, v.Validate([]string{"", "  "}))
	assert.True(t, v.Validate([]string{"customer code", "", "quantity"}))
}
