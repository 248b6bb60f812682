package mapping

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"queryable-projector/store"
	"queryable-projector/warehouse"
)

func TestRuleSourceFor(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		dst     string
		wantSrc string
		wantOK  bool
	}{
		{"identity without entries", Rule{}, "Name", "Name", true},
		{"entry wins", NewRule(map[string]string{"ID": "OrderID"}, false), "ID", "OrderID", true},
		{"identity for other fields", NewRule(map[string]string{"ID": "OrderID"}, false), "Name", "Name", true},
		{"explicit entry", NewRule(map[string]string{"ID": "OrderID"}, true), "ID", "OrderID", true},
		{"explicit skips others", NewRule(map[string]string{"ID": "OrderID"}, true), "Name", "", false},
		{"explicit empty skips all", NewRule(nil, true), "ID", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, ok := tt.rule.SourceFor(tt.dst)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSrc, src)
		})
	}
}

func TestNewRuleClonesFields(t *testing.T) {
	fields := map[string]string{"ID": "OrderID"}
	rule := NewRule(fields, false)

	fields["ID"] = "Other"

	src, _ := rule.SourceFor("ID")
	assert.Equal(t, "OrderID", src)
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()
	Register[store.OrderDetail, warehouse.OrderDetailDto](reg, NewRule(map[string]string{"ID": "OrderID"}, true))

	rule, ok := reg.Resolve(reflect.TypeFor[store.OrderDetail](), reflect.TypeFor[warehouse.OrderDetailDto]())
	require.True(t, ok)
	assert.True(t, rule.ExplicitOnly)
	assert.Equal(t, map[string]string{"ID": "OrderID"}, rule.Fields)

	// pointer types resolve to the same pair
	_, ok = reg.Resolve(reflect.TypeFor[*store.OrderDetail](), reflect.TypeFor[*warehouse.OrderDetailDto]())
	assert.True(t, ok)

	// pairs are ordered
	_, ok = reg.Resolve(reflect.TypeFor[warehouse.OrderDetailDto](), reflect.TypeFor[store.OrderDetail]())
	assert.False(t, ok)

	_, ok = reg.Resolve(reflect.TypeFor[store.Order](), reflect.TypeFor[warehouse.OrderDto]())
	assert.False(t, ok)
}

func TestRegistryLastWriteWins(t *testing.T) {
	reg := NewRegistry()
	Register[store.Order, warehouse.OrderDto](reg, NewRule(map[string]string{"CustomerID": "ID"}, false))
	Register[store.Order, warehouse.OrderDto](reg, NewRule(nil, true))

	assert.Equal(t, 1, reg.Len())

	rule, ok := reg.Resolve(reflect.TypeFor[store.Order](), reflect.TypeFor[warehouse.OrderDto]())
	require.True(t, ok)
	assert.True(t, rule.ExplicitOnly)
	assert.Empty(t, rule.Fields)
}

func TestRegistryNil(t *testing.T) {
	var reg *Registry

	_, ok := reg.Resolve(reflect.TypeFor[store.Order](), reflect.TypeFor[warehouse.OrderDto]())
	assert.False(t, ok)
	assert.Zero(t, reg.Len())
	assert.Empty(t, reg.Pairs())
	assert.Empty(t, reg.Fingerprint())
}

func TestRegistryZeroValue(t *testing.T) {
	var reg Registry
	Register[store.Customer, warehouse.CustomerDto](&reg, Rule{ExplicitOnly: true})

	assert.Equal(t, 1, reg.Len())
}

func TestRegistryFingerprint(t *testing.T) {
	build := func(order []string) *Registry {
		reg := NewRegistry()

		for _, name := range order {
			switch name {
			case "order":
				Register[store.Order, warehouse.OrderDto](reg, NewRule(map[string]string{"CustomerID": "ID", "OrderNo": "OrderNo"}, false))
			case "detail":
				Register[store.OrderDetail, warehouse.OrderDetailDto](reg, NewRule(map[string]string{"ID": "OrderID"}, true))
			}
		}

		return reg
	}

	a := build([]string{"order", "detail"})
	b := build([]string{"detail", "order"})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), build([]string{"order"}).Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), NewRegistry().Fingerprint())
	assert.Contains(t, a.Fingerprint(), "queryable-projector/store.OrderDetail->queryable-projector/warehouse.OrderDetailDto{explicit=true,ID=OrderID};")
}

func TestRegistryPairsSorted(t *testing.T) {
	reg := NewRegistry()
	Register[store.Supplier, warehouse.SupplierDto](reg, Rule{})
	Register[store.Customer, warehouse.CustomerDto](reg, Rule{})
	Register[store.Order, warehouse.OrderDto](reg, Rule{})

	var names []string
	for _, p := range reg.Pairs() {
		names = append(names, p.String())
	}

	assert.Equal(t, []string{
		"queryable-projector/store.Customer->queryable-projector/warehouse.CustomerDto",
		"queryable-projector/store.Order->queryable-projector/warehouse.OrderDto",
		"queryable-projector/store.Supplier->queryable-projector/warehouse.SupplierDto",
	}, names)
}

func TestRegistryConcurrentResolve(t *testing.T) {
	reg := NewRegistry()
	Register[store.Order, warehouse.OrderDto](reg, Rule{})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, ok := reg.Resolve(reflect.TypeFor[store.Order](), reflect.TypeFor[warehouse.OrderDto]())
			assert.True(t, ok)
		}()
	}

	wg.Wait()
}
