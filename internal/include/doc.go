// Package include parses dotted include paths such as "OrderDetails.Supplier".
//
// Include paths name the relationships that were eagerly loaded for a query.
// GroupPaths splits a flat path set into first-level groups so that the projection
// compiler can descend one relationship at a time:
//
//	{"Customer", "OrderDetails.Supplier", "OrderDetails.Order"}
//	  -> Customer: {}
//	  -> OrderDetails: {"Supplier", "Order"}
package include
