package template

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// isPathChar reports whether c may appear in a dotted path argument.
func isPathChar(c byte) bool {
	return c == '.' || c == '_' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9'
}

// resolvePath walks a dotted path against ctx, one key per segment. If any
// step is absent or the current value lacks the next key, the whole path
// resolves to nil. Resolution never fails.
func resolvePath(ctx any, path string) any {
	cur := ctx
	for _, seg := range strings.Split(path, ".") {
		if cur == nil {
			return nil
		}
		cur = lookup(cur, seg)
	}
	return cur
}

// lookup fetches a single key from a mapping-like value. Loop scopes
// resolve their own bindings first and defer everything else to the
// enclosing context. Plain map[string]any contexts take the fast path;
// other string-keyed maps and structs are handled reflectively so typed
// data can be rendered without a conversion step.
func lookup(v any, key string) any {
	if s, ok := v.(*loopScope); ok {
		if val, ok := s.vars[key]; ok {
			return val
		}
		return lookup(s.parent, key)
	}
	if m, ok := v.(map[string]any); ok {
		return m[key]
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()
	case reflect.Struct:
		return structField(rv, key)
	default:
		return nil
	}
}

// structField resolves key against a struct value: the json tag name wins,
// then the exact field name, then a case-insensitive match (template paths
// are conventionally lowercase).
func structField(rv reflect.Value, key string) any {
	rt := rv.Type()
	var fold reflect.Value
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag == key {
			return rv.Field(i).Interface()
		}
		if f.Name == key {
			return rv.Field(i).Interface()
		}
		if !fold.IsValid() && strings.EqualFold(f.Name, key) {
			fold = rv.Field(i)
		}
	}
	if fold.IsValid() {
		return fold.Interface()
	}
	return nil
}

// asSequence materializes a slice or array value as []any. Strings and
// byte slices are scalars here, not sequences.
func asSequence(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// truthy implements the falsy set shared by conditionals and the inline
// if helper: nil, false, zero numbers and the empty string are falsy;
// everything else, including empty sequences and mappings, is truthy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// stringify converts a resolved value for output: nil becomes the empty
// string, structured values serialize as compact JSON, scalars convert
// plainly.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		return x.Format(time.RFC3339)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
		v = rv.Interface()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
