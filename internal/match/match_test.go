package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},   // substitution
		{"a", "ab", 1},  // insertion
		{"ab", "a", 1},  // deletion
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"orderdetail", "orderdetails", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("OrderID", "order_id"), 1e-9)
	assert.InDelta(t, 11.0/12.0, Similarity("OrderDetail", "OrderDetails"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("", "abc"), 1e-9)
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"Order.Details", "orderdetails"},
		{"XMLParser", "xmlparser"},
		{"Größe", "große"},
		{"Café_Name", "cafename"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"order", "id"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"order_details", []string{"order", "details"}},
		{"Supplier", []string{"supplier"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeIdent(tt.input))
		})
	}
}

func TestSuggest(t *testing.T) {
	fields := []string{"OrderDetails", "Customer", "Supplier", "OrderNo"}

	tests := []struct {
		name     string
		input    string
		limit    int
		expected []string
	}{
		{"typo", "Suplier", DefaultLimit, []string{"Supplier"}},
		{"plural and shared token", "OrderDetail", DefaultLimit, []string{"OrderDetails", "OrderNo"}},
		{"limited", "OrderDetail", 1, []string{"OrderDetails"}},
		{"exact name is not a suggestion", "Customer", DefaultLimit, []string{}},
		{"nothing similar", "Zzz", DefaultLimit, []string{}},
		{"empty", "", DefaultLimit, nil},
		{"zero limit", "Suplier", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.input, fields, tt.limit))
		})
	}
}
