package analyze

import (
	"reflect"
	"strings"
	"sync"

	"queryable-projector/primitive"
)

type readerKey struct {
	t            reflect.Type
	onlyWritable bool
}

// Reader describes struct types for projection and caches the result per type.
// A Reader is safe for concurrent use.
type Reader struct {
	mu    sync.RWMutex
	cache map[readerKey]Fields
}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{
		cache: make(map[readerKey]Fields),
	}
}

var defaultReader = NewReader()

// DefaultReader returns the package level Reader.
func DefaultReader() *Reader {
	return defaultReader
}

// Describe describes t with the package level Reader.
func Describe(t reflect.Type, onlyWritable bool) Fields {
	return defaultReader.Describe(t, onlyWritable)
}

// Describe returns the fields of t usable for projection in declaration order.
// Pointers are dereferenced, non-struct types yield no fields.
// When onlyWritable is set, fields tagged projector:"readonly" are left out.
func (r *Reader) Describe(t reflect.Type, onlyWritable bool) Fields {
	t = Indirect(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	key := readerKey{t: t, onlyWritable: onlyWritable}

	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()

	if ok {
		return cached
	}

	fields := describeStruct(t, onlyWritable)

	r.mu.Lock()
	if r.cache == nil {
		r.cache = make(map[readerKey]Fields)
	}
	r.cache[key] = fields
	r.mu.Unlock()

	return fields
}

func describeStruct(t reflect.Type, onlyWritable bool) Fields {
	var fields Fields

	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() {
			continue
		}

		// Promoted through an embedded pointer: cannot be assigned without allocating the embedding.
		if len(sf.Index) > 1 && throughPointer(t, sf.Index) {
			continue
		}

		// Embedded structs contribute their promoted fields instead of themselves
		if sf.Anonymous && Indirect(sf.Type).Kind() == reflect.Struct && !primitive.IsScalar(sf.Type) {
			continue
		}

		opts := tagOptions(sf.Tag.Get(TagKey))
		if opts["-"] {
			continue
		}

		readOnly := opts["readonly"]
		if onlyWritable && readOnly {
			continue
		}

		class := FieldClassRelational
		if primitive.IsScalar(sf.Type) {
			class = FieldClassScalar
		}

		fields = append(fields, FieldInfo{
			Name:     sf.Name,
			Type:     sf.Type,
			Index:    sf.Index,
			Class:    class,
			Tag:      sf.Tag,
			ReadOnly: readOnly,
		})
	}

	return fields
}

// throughPointer reports whether reaching index from t crosses an embedded pointer.
func throughPointer(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		f := t.Field(i)
		if f.Type.Kind() == reflect.Ptr {
			return true
		}

		t = f.Type
	}

	return false
}

func tagOptions(tag string) map[string]bool {
	if tag == "" {
		return nil
	}

	opts := make(map[string]bool)
	for opt := range strings.SplitSeq(tag, ",") {
		opts[strings.TrimSpace(opt)] = true
	}

	return opts
}

// Indirect removes all pointer indirections from t.
func Indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
