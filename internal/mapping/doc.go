// Package mapping provides per type pair field mapping rules and their YAML form.
//
// A Rule overrides which source field feeds a destination field for one ordered
// (source type, destination type) pair. Without a rule, fields are matched by
// identical name. With ExplicitOnly set, only destination fields listed in the
// rule are bound at all.
//
// # Schema Overview
//
// Rules can be kept in a YAML file:
//
//	version: "1"
//	mappings:
//	  - source: store.Order
//	    target: warehouse.OrderDto
//	    fields:
//	      CustomerID: ID          # destination: source
//	  - source: store.Customer
//	    target: warehouse.CustomerDto
//	    explicit_only: true
//	    fields:
//	      ID: ID
//
// Type names are resolved against a TypeSet by full import path
// ("queryable-projector/store.Order"), short package form ("store.Order")
// or bare type name ("Order"), in that order.
//
// Rule entries referencing fields that do not exist are not an error for
// projection; Validate reports them as warnings.
package mapping
