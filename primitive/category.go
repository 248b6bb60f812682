package primitive

import (
	"reflect"

	"queryable-projector/options"
	"queryable-projector/utils"
)

// Category returns the conversion category needed to convert a src value into dst,
// or options.CategoryNone when src is assignable or not convertible at all.
//
// Integer to string conversions are never reported, they produce runes, not digits.
func Category(src, dst reflect.Type) options.CategoryEnum {
	if src == nil || dst == nil || src.AssignableTo(dst) || !src.ConvertibleTo(dst) {
		return options.CategoryNone
	}

	sk, dk := src.Kind(), dst.Kind()

	if isNumberKind(sk) && isNumberKind(dk) {
		if sk == dk {
			return options.CategoryNamed
		}

		if widens(sk, dk) {
			return options.CategorySafeNumber
		}

		return options.CategoryUnsafeNumber
	}

	// string <-> []byte and friends change representation, not meaning of a name
	if sk != dk {
		return options.CategoryNone
	}

	return options.CategoryNamed
}

func isNumberKind(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || isFloat(k)
}

func isSigned(k reflect.Kind) bool {
	return utils.IsInRange(reflect.Int, k, reflect.Int64)
}

func isUnsigned(k reflect.Kind) bool {
	return utils.IsInRange(reflect.Uint, k, reflect.Uintptr)
}

func isFloat(k reflect.Kind) bool {
	return utils.IsInRange(reflect.Float32, k, reflect.Float64)
}

// widens reports whether every value of kind src is representable by kind dst.
// int and uint are treated as 64 bit.
func widens(src, dst reflect.Kind) bool {
	sb, db := bitSize(src), bitSize(dst)

	switch {
	case isSigned(src) && isSigned(dst), isUnsigned(src) && isUnsigned(dst):
		return sb <= db
	case isUnsigned(src) && isSigned(dst):
		return sb < db
	case isFloat(src) && isFloat(dst):
		return sb <= db
	case isSigned(src) && isFloat(dst), isUnsigned(src) && isFloat(dst):
		// float mantissa: 24 bits for float32, 53 bits for float64
		if dst == reflect.Float32 {
			return sb <= 16
		}

		return sb <= 32
	default:
		return false
	}
}

func bitSize(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 8
	case reflect.Int16, reflect.Uint16:
		return 16
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 32
	default:
		return 64
	}
}
