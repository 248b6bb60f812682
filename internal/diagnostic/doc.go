// Package diagnostic provides structured warnings and errors for
// projection compilation and mapping rule files.
//
// Key capabilities:
//   - Skipped destination field reports (unmapped, explicit-only, rule source missing)
//   - Ignored include path reports
//   - Scalar type mismatch reports
//   - Promotion of warnings to errors for strict compilation
package diagnostic
