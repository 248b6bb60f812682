package plan_test

import (
	"reflect"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"queryable-projector/internal/plan"
	"queryable-projector/store"
	"queryable-projector/warehouse"
)

func TestPlanString(t *testing.T) {
	p, err := newCompiler(t).Compile(orderT, orderDtoT, []string{"OrderDetails"})
	require.NoError(t, err)

	want := `store.Order -> warehouse.OrderDto
  ID <- ID (assign)
  OrderNo <- OrderNo (assign)
  Status <- Status (convert)
  CustomerID <- CustomerID (wrap)
  OrderDetails <- OrderDetails [collection]
    store.OrderDetail -> warehouse.OrderDetailDto
      ID <- ID (assign)
      ProductNo <- ProductNo (assign)
`
	assert.Equal(t, want, p.String())
}

func TestPlanMarshalJSON(t *testing.T) {
	p, err := newCompiler(t).Compile(reflect.TypeFor[store.Supplier](), reflect.TypeFor[warehouse.SupplierDto](), nil)
	require.NoError(t, err)

	data, err := jsoniter.Marshal(p)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"source": "queryable-projector/store.Supplier",
		"target": "queryable-projector/warehouse.SupplierDto",
		"bindings": [
			{"kind": "scalar", "target": "ID", "source": "ID", "conversion": "assign"},
			{"kind": "scalar", "target": "Name", "source": "Name", "conversion": "assign"}
		]
	}`, string(data))
}

func TestMarshalIndentJSON(t *testing.T) {
	p, err := newCompiler(t).Compile(orderT, orderDtoT, []string{"OrderDetails.Supplier"})
	require.NoError(t, err)

	data, err := plan.MarshalIndentJSON(p)
	require.NoError(t, err)

	var exported plan.ExportedPlan
	require.NoError(t, jsoniter.Unmarshal(data, &exported))

	assert.Equal(t, []string{"OrderDetails.Supplier"}, exported.Includes)
	require.Len(t, exported.Bindings, 5)

	details := exported.Bindings[4]
	assert.Equal(t, "collection", details.Kind)
	assert.Empty(t, details.Conversion)
	require.NotNil(t, details.Plan)
	assert.Equal(t, []string{"Supplier"}, details.Plan.Includes)
	assert.Equal(t, "single", details.Plan.Bindings[2].Kind)
	assert.Equal(t, "queryable-projector/warehouse.SupplierDto", details.Plan.Bindings[2].Plan.Target)

	require.Len(t, exported.Diagnostics, 1)
	assert.Contains(t, exported.Diagnostics[0], "[relation_not_included]")
	assert.Contains(t, string(data), "\n  \"target\"")
}

func TestExportNil(t *testing.T) {
	assert.Nil(t, plan.Export(nil))
}

func TestDump(t *testing.T) {
	p, err := newCompiler(t).Compile(orderT, orderDtoT, nil)
	require.NoError(t, err)

	dump := plan.Dump(p)
	assert.Contains(t, dump, "(*plan.ExportedPlan)")
	assert.Contains(t, dump, `"queryable-projector/warehouse.OrderDto"`)
	assert.Contains(t, dump, `Conversion: (string) (len=4) "wrap"`)
	assert.NotContains(t, dump, "0x", "pointer addresses are disabled")
}
