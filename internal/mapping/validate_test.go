package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	mf := &MappingFile{TypeMappings: []TypeMapping{
		{
			Source: "store.OrderDetail",
			Target: "warehouse.OrderDetailDto",
			Fields: map[string]string{"ID": "OrderID", "Missing": "ID", "ProductNo": "Sku"},
		},
		{Source: "store.OrderDetail", Target: "warehouse.OrderDetailDto"},
		{Source: "store.Invoice", Target: "warehouse.OrderDto"},
		{Source: "store.Order", Target: "warehouse.InvoiceDto"},
		{Source: "store.Order"},
	}}

	res := Validate(mf, demoTypes())

	assert.Equal(t, []string{
		"source_type_not_found",
		"target_type_not_found",
		"invalid_rule",
		"unknown_target_field",
		"rule_source_missing",
		"duplicate_mapping",
	}, res.Codes())

	assert.Equal(t, "Missing", res.Warnings[0].FieldPath)
	assert.Equal(t, "ProductNo", res.Warnings[1].FieldPath)
	assert.Contains(t, res.Warnings[1].Suggestions, "OrderID")
}

func TestValidateClean(t *testing.T) {
	mf, err := Decode([]byte(rulesYAML))
	assert.NoError(t, err)

	res := Validate(mf, demoTypes())
	assert.Zero(t, res.Len())
}

func TestValidateNil(t *testing.T) {
	assert.Equal(t, []string{"mapping_is_nil"}, Validate(nil, demoTypes()).Codes())
	assert.Equal(t, []string{"types_is_nil"}, Validate(&MappingFile{}, nil).Codes())
}
