package primitive_test

import (
	"database/sql"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"queryable-projector/primitive"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(uuid.UUID{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(sql.NullString{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindString
	// KindPrimitiveEnum
	// KindPrimitiveEnum
	// KindDuration
	// KindTime
	// KindUUID
	// KindValuer
	// KindEnum(0)
}

func TestIsScalar(t *testing.T) {
	t.Parallel()

	type Status string
	type Nested struct{ ID int }

	tests := []struct {
		name  string
		rtype reflect.Type
		want  bool
	}{
		{"int", reflect.TypeFor[int](), true},
		{"optional int", reflect.TypeFor[*int](), true},
		{"named string", reflect.TypeFor[Status](), true},
		{"optional enum", reflect.TypeFor[*Status](), true},
		{"time", reflect.TypeFor[time.Time](), true},
		{"optional time", reflect.TypeFor[*time.Time](), true},
		{"uuid", reflect.TypeFor[uuid.UUID](), true},
		{"bytes", reflect.TypeFor[[]byte](), true},
		{"null int64", reflect.TypeFor[sql.NullInt64](), true},
		{"string slice", reflect.TypeFor[[]string](), true},
		{"string map", reflect.TypeFor[map[string]int](), true},
		{"struct", reflect.TypeFor[Nested](), false},
		{"struct pointer", reflect.TypeFor[*Nested](), false},
		{"struct slice", reflect.TypeFor[[]Nested](), false},
		{"struct pointer slice", reflect.TypeFor[[]*Nested](), false},
		{"struct map", reflect.TypeFor[map[string]Nested](), false},
		{"double pointer", reflect.TypeFor[**int](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, primitive.IsScalar(tt.rtype))
		})
	}
}

func TestOptional(t *testing.T) {
	t.Parallel()

	inner, ok := primitive.Optional(reflect.TypeFor[*int64]())
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[int64](), inner)

	_, ok = primitive.Optional(reflect.TypeFor[int64]())
	assert.False(t, ok)

	_, ok = primitive.Optional(reflect.TypeFor[*struct{ A int }]())
	assert.False(t, ok)
}
