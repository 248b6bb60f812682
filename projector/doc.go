// Package projector projects queries of entities into data transfer types, populating
// only the relationships the query loaded.
//
//	orders := query.From(rows).Include("Customer", "OrderDetails.Supplier")
//	dtos, err := projector.Project[warehouse.OrderDto](orders)
//
// Plans are compiled once per (source, target, include set, rules, settings) and
// shared through a package-level cache unless WithCompiler supplies another compiler.
package projector
