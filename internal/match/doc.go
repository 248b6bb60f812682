// Package match ranks identifiers by name similarity.
//
// The compiler uses it to attach likely candidates to diagnostics, for example
// the relation an unknown include path segment was probably meant to name.
//
// Key functions:
//   - NormalizeIdent: folds case and separators of an identifier
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names against a requested one
package match
