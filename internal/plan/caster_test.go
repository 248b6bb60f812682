package plan_test

import (
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"queryable-projector/internal/plan"
)

type moreThanError interface {
	error
	More()
}

func empty()                          { panic("not implemented") }
func wrong(int) (string, error, bool) { panic("not implemented") }

func full(int) (string, bool, error)          { panic("not implemented") }
func customError(int) (string, moreThanError) { panic("not implemented") }
func doublePtr(**int) string                  { panic("not implemented") }

func ExampleParseCaster() {
	desc, err := plan.ParseCaster(full)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = plan.ParseCaster(strconv.Itoa)
	fmt.Println(err, desc, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = plan.ParseCaster(strconv.Atoi)
	fmt.Println(err, desc, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = plan.ParseCaster(customError)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	_, err = plan.ParseCaster(empty)
	fmt.Println(err)

	_, err = plan.ParseCaster(wrong)
	fmt.Println(err)

	_, err = plan.ParseCaster(doublePtr)
	fmt.Println(err)

	_, err = plan.ParseCaster(42)
	fmt.Println(err)

	// Output:
	// <nil> plan_test full int string true true
	// <nil> strconv.Itoa int string false false
	// <nil> strconv.Atoi string int false true
	// <nil> plan_test customError int string false true
	// provided function is not a recognizable caster
	// provided function is not a recognizable caster
	// caster function does not support double pointers
	// provided caster is not a function
}

func TestCasterCall(t *testing.T) {
	atoi, err := plan.ParseCaster(strconv.Atoi)
	require.NoError(t, err)

	out, ok, err := atoi.Call(reflect.ValueOf("42"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, out.Interface())

	_, _, err = atoi.Call(reflect.ValueOf("x"))
	require.Error(t, err)

	positive, err := plan.ParseCaster(func(v int) (uint, bool) { return uint(v), v >= 0 })
	require.NoError(t, err)

	out, ok, err = positive.Call(reflect.ValueOf(-1))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.IsType(t, uint(0), out.Interface())
}
