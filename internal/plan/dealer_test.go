package plan_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"queryable-projector/internal/mapping"
	"queryable-projector/internal/plan"
	"queryable-projector/store"
	"queryable-projector/warehouse"
)

func ExamplePairs() {
	c, _ := plan.NewCompiler()
	p, _ := c.Compile(reflect.TypeFor[store.Order](), reflect.TypeFor[warehouse.OrderDto](),
		[]string{"OrderDetails.Supplier", "Customer"})

	for _, pair := range plan.Pairs(p) {
		fmt.Println(pair.Source, "->", pair.Target)
	}

	// Output:
	// store.Order -> warehouse.OrderDto
	// store.OrderDetail -> warehouse.OrderDetailDto
	// store.Customer -> warehouse.CustomerDto
	// store.Supplier -> warehouse.SupplierDto
}

type node struct {
	ID       int
	Children []node
}

func TestDealerVisitsPairOnce(t *testing.T) {
	p, err := newCompiler(t).Compile(reflect.TypeFor[node](), reflect.TypeFor[node](), []string{"Children.Children.Children"})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Depth())

	var (
		d     plan.Dealer
		count int
	)

	d.Needs(p)
	d.Needs(p)
	d.Needs(nil)

	for _, ok := d.NextNeeds(); ok; _, ok = d.NextNeeds() {
		count++
	}

	assert.Equal(t, 1, count)
	assert.Len(t, plan.Pairs(p), 1)
}

func TestSkeleton(t *testing.T) {
	p, err := newCompiler(t).Compile(orderT, orderDtoT, []string{"OrderDetails.Supplier"})
	require.NoError(t, err)

	mf := plan.Skeleton(p)
	require.Len(t, mf.TypeMappings, 3)

	root := mf.TypeMappings[0]
	assert.Equal(t, "queryable-projector/store.Order", root.Source)
	assert.Equal(t, "queryable-projector/warehouse.OrderDto", root.Target)
	assert.True(t, root.ExplicitOnly)
	assert.Equal(t, map[string]string{
		"ID":           "ID",
		"OrderNo":      "OrderNo",
		"Status":       "Status",
		"CustomerID":   "CustomerID",
		"OrderDetails": "OrderDetails",
	}, root.Fields)

	types := mapping.NewTypeSet(
		reflect.TypeFor[store.Order](), reflect.TypeFor[warehouse.OrderDto](),
		reflect.TypeFor[store.OrderDetail](), reflect.TypeFor[warehouse.OrderDetailDto](),
		reflect.TypeFor[store.Supplier](), reflect.TypeFor[warehouse.SupplierDto](),
	)

	rules, err := mf.Build(types)
	require.NoError(t, err)

	pinned, err := newCompiler(t, plan.WithRules(rules)).Compile(orderT, orderDtoT, []string{"OrderDetails.Supplier"})
	require.NoError(t, err)
	assert.Equal(t, p.String(), pinned.String())
}
