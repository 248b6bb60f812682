package plan

import (
	"errors"
	"reflect"
	"runtime"
	"strings"

	"queryable-projector/utils"
)

var (
	ErrIsNotACaster         = errors.New("provided function is not a recognizable caster")
	ErrCasterIsNotAFunction = errors.New("provided caster is not a function")
	ErrDoublePointer        = errors.New("caster function does not support double pointers")
)

var errorType = reflect.TypeFor[error]()

// Caster is a user supplied scalar converter.
type Caster struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// ParseCaster inspects the provided function and returns a Caster if it is a valid converter.
//
// Supports signatures:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
//
// A false bool leaves the destination field at its zero value.
func ParseCaster(fn any) (*Caster, error) {
	fnVal := reflect.ValueOf(fn)
	if fn == nil || fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return nil, ErrCasterIsNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.IsVariadic() {
		return nil, ErrIsNotACaster
	}

	src := fnType.In(0)
	if src.Kind() == reflect.Ptr && src.Elem().Kind() == reflect.Ptr {
		return nil, ErrDoublePointer
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return nil, ErrDoublePointer
	}

	// "import/path/pkg.Name", dots may appear in the import path but not after its last slash
	fullName := runtime.FuncForPC(fnVal.Pointer()).Name()
	alias, name := utils.Unpack2(strings.SplitN(fullName[strings.LastIndex(fullName, "/")+1:], ".", 2))

	caster := &Caster{
		Src:          src,
		Dst:          dst,
		Name:         name,
		PackageAlias: alias,
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return nil, ErrIsNotACaster

	case 1:
		return caster, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return nil, ErrIsNotACaster
		case last.Kind() == reflect.Bool:
			caster.HasBool = true
		case last.Implements(errorType):
			caster.HasErr = true
		}

		return caster, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !terr.Implements(errorType) {
			return nil, ErrIsNotACaster
		}

		caster.HasBool = true
		caster.HasErr = true

		return caster, nil
	}
}

// String returns "alias.Name".
func (c *Caster) String() string {
	if c.PackageAlias == "" {
		return c.Name
	}

	return c.PackageAlias + "." + c.Name
}

// Call converts src. ok is false when the caster declined the value.
func (c *Caster) Call(src reflect.Value) (dst reflect.Value, ok bool, err error) {
	out := c.fn.Call([]reflect.Value{src})

	dst, ok = out[0], true

	if c.HasBool {
		ok = out[1].Bool()
	}

	if c.HasErr {
		err, _ = out[len(out)-1].Interface().(error)
	}

	return dst, ok, err
}
