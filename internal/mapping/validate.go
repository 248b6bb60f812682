package mapping

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"queryable-projector/internal/analyze"
	"queryable-projector/internal/diagnostic"
)

// Validate validates a mapping definition against the given type set.
// Unknown types and malformed rules are errors. Field references that do not
// exist are warnings, because compilation skips them silently.
func Validate(mf *MappingFile, types *TypeSet) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if types == nil {
		res.AddError("types_is_nil", "type set is nil", "", "")
		return res
	}

	seen := map[TypePair]struct{}{}

	for i := range mf.TypeMappings {
		tm := &mf.TypeMappings[i]
		tpStr := tm.String()

		if err := tm.validateShape(); err != nil {
			res.AddError("invalid_rule", err.Error(), tpStr, "")
			continue
		}

		srcT, ok := types.ResolveTypeID(tm.Source)
		if !ok {
			res.AddError("source_type_not_found", fmt.Sprintf("source type %q not found", tm.Source), tpStr, tm.Source)
			continue
		}

		dstT, ok := types.ResolveTypeID(tm.Target)
		if !ok {
			res.AddError("target_type_not_found", fmt.Sprintf("target type %q not found", tm.Target), tpStr, tm.Target)
			continue
		}

		pair := PairOf(srcT, dstT)
		if _, dup := seen[pair]; dup {
			res.AddWarning("duplicate_mapping", "mapping overrides an earlier one for the same types", tpStr, "")
		}

		seen[pair] = struct{}{}

		validateFields(res, tpStr, srcT, dstT, tm)
	}

	return res
}

// validateFields checks that every field entry names a writable target field and an existing source field.
func validateFields(res *diagnostic.Diagnostics, typePairStr string, srcT, dstT reflect.Type, tm *TypeMapping) {
	srcFields := analyze.Describe(srcT, false)
	dstFields := analyze.Describe(dstT, true)

	for _, dst := range slices.Sorted(maps.Keys(tm.Fields)) {
		src := tm.Fields[dst]

		if _, ok := dstFields.ByName(dst); !ok {
			res.AddWarning(
				"unknown_target_field",
				fmt.Sprintf("target field %q not found or not writable", dst),
				typePairStr, dst, dstFields.Names()...,
			)
		}

		if _, ok := srcFields.ByName(src); !ok {
			res.AddWarning(
				"rule_source_missing",
				fmt.Sprintf("source field %q not found", src),
				typePairStr, dst, srcFields.Names()...,
			)
		}
	}
}
