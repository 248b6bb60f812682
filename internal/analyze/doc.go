// Package analyze provides reflection based type metadata for projection.
//
// It describes the exported fields of struct types and classifies each of them
// as scalar (copied as a whole) or relational (projected only when included).
//
// Key types:
//   - TypeID: package import path + type name
//   - FieldInfo: describes field name, type, tags, index path and class
//   - Reader: describes types once and caches the result
package analyze
