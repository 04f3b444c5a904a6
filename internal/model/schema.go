package model

// SchemaName 已识别的表头布局名称
type SchemaName string

const (
	SchemaBillingVehicle SchemaName = "billing_vehicle" // 开票/车辆布局
	SchemaMaterialSKU    SchemaName = "material_sku"    // 物料/SKU 布局
)

// 规范化后的列名（小写、去首尾空格）
const (
	ColumnCustomerCode        = "customer code"
	ColumnCustomerName        = "customer name"
	ColumnBillingDocument     = "billing document"
	ColumnBillingDate         = "billing date"
	ColumnVehicleNumber       = "vehicle number"
	ColumnMaterialDescription = "material description"
	ColumnQuantity            = "quantity"
	ColumnUnit                = "unit"
	ColumnMaterialCode        = "material code"
	ColumnSKU                 = "sku"
	ColumnSKUDescription      = "sku description"
	ColumnPlant               = "plant"
)

// Schema 一组固定、有序的期望表头
type Schema struct {
	Name   SchemaName
	Labels []string
}

// Contains 判断规范化列名是否属于该 Schema
func (s Schema) Contains(label string) bool {
	for _, l := range s.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// RecognizedSchemas 两种可识别的布局
var RecognizedSchemas = []Schema{
	{
		Name: SchemaBillingVehicle,
		Labels: []string{
			ColumnCustomerCode,
			ColumnCustomerName,
			ColumnBillingDocument,
			ColumnBillingDate,
			ColumnVehicleNumber,
			ColumnMaterialDescription,
			ColumnQuantity,
			ColumnUnit,
		},
	},
	{
		Name: SchemaMaterialSKU,
		Labels: []string{
			ColumnCustomerCode,
			ColumnCustomerName,
			ColumnBillingDate,
			ColumnMaterialCode,
			ColumnSKU,
			ColumnSKUDescription,
			ColumnQuantity,
			ColumnPlant,
		},
	},
}

// ColumnKind 列语义
type ColumnKind int

const (
	KindPassthrough ColumnKind = iota // 原样透传
	KindIdentifier                    // 客户标识
	KindQuantity                      // 数量
	KindDate                          // 日期（表头包含 "date"）
)

func (k ColumnKind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindQuantity:
		return "quantity"
	case KindDate:
		return "date"
	default:
		return "passthrough"
	}
}

// ColumnDescriptor 单列描述（每个 sheet 的表头解析一次）
type ColumnDescriptor struct {
	Index int        `json:"index"`
	Label string     `json:"label"`
	Kind  ColumnKind `json:"kind"`
}
