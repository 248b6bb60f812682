package primitive

import (
	"database/sql/driver"
	"reflect"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies value types that are copied as a whole during projection.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (non-scalar) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	KindString
	KindTime
	KindDuration
	KindUUID
	KindBytes
	KindPrimitiveEnum // named type over any number, boolean or string
	KindValuer        // opaque value type implementing driver.Valuer (sql.NullString, decimal types, ...)

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
	uuidType     = reflect.TypeFor[uuid.UUID]()
	bytesType    = reflect.TypeFor[[]byte]()
	valuerType   = reflect.TypeFor[driver.Valuer]()
)

// FromReflectType returns the scalar kind of rtype, or zero when rtype is not a scalar value type.
// Pointers are not unwrapped here, see IsScalar for optional wrappers.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// well-known value types first, they are structs or arrays underneath
	switch rtype {
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	case uuidType:
		return KindUUID
	case bytesType:
		return KindBytes
	}

	if rtype.PkgPath() == "" {
		switch rtype.Kind() {
		case reflect.Int:
			return KindInt
		case reflect.Int8:
			return KindInt8
		case reflect.Int16:
			return KindInt16
		case reflect.Int32:
			return KindInt32
		case reflect.Int64:
			return KindInt64
		case reflect.Uint:
			return KindUint
		case reflect.Uint8:
			return KindUint8
		case reflect.Uint16:
			return KindUint16
		case reflect.Uint32:
			return KindUint32
		case reflect.Uint64:
			return KindUint64
		case reflect.Float32:
			return KindFloat32
		case reflect.Float64:
			return KindFloat64
		case reflect.Complex64:
			return KindComplex64
		case reflect.Complex128:
			return KindComplex128
		case reflect.Bool:
			return KindBool
		case reflect.String:
			return KindString
		}
	}

	// check if it's a primitive enum type
	switch rtype.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Bool, reflect.String:
		return KindPrimitiveEnum
	}

	// sql.NullString, sql.Null[T] and friends are nullable wrappers of scalars
	if rtype.Kind() == reflect.Struct && rtype.Implements(valuerType) {
		return KindValuer
	}

	return 0
}
