// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serialize

import (
	"math"
	"math/big"
	"reflect"
	"time"

	"cloud.google.com/go/civil"
)

// NormalizeScalar converts a database-native scalar into a value every JSON
// and YAML encoder can represent:
//   - time.Time becomes an RFC 3339 string;
//   - civil.Date, civil.DateTime and civil.Time become ISO-8601 strings;
//   - big.Float and big.Rat become float64;
//   - big.Int becomes int64, or float64 when it does not fit;
//   - NaN float64 and float32 become nil.
//
// Pointers to these types are dereferenced, a nil pointer becomes nil. Any
// other value is returned unchanged.
func NormalizeScalar(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case *time.Time:
		if x == nil {
			return nil
		}
		return x.Format(time.RFC3339Nano)
	case civil.Date:
		return x.String()
	case civil.DateTime:
		return x.String()
	case civil.Time:
		return x.String()
	case *civil.Date:
		if x == nil {
			return nil
		}
		return x.String()
	case *civil.DateTime:
		if x == nil {
			return nil
		}
		return x.String()
	case *civil.Time:
		if x == nil {
			return nil
		}
		return x.String()
	case big.Float:
		return NormalizeScalar(&x)
	case big.Rat:
		return NormalizeScalar(&x)
	case big.Int:
		return NormalizeScalar(&x)
	case *big.Float:
		if x == nil {
			return nil
		}
		f, _ := x.Float64()
		return f
	case *big.Rat:
		if x == nil {
			return nil
		}
		f, _ := x.Float64()
		return f
	case *big.Int:
		if x == nil {
			return nil
		}
		if x.IsInt64() {
			return x.Int64()
		}
		f, _ := new(big.Float).SetInt(x).Float64()
		return f
	case float64:
		if math.IsNaN(x) {
			return nil
		}
		return x
	case float32:
		if math.IsNaN(float64(x)) {
			return nil
		}
		return x
	default:
		return v
	}
}

// normalize walks data and returns a copy in which every leaf went through
// NormalizeScalar. Records keep their key order, other string-keyed maps
// become map[string]any and slices or arrays become []any.
func normalize(data any) any {
	switch x := data.(type) {
	case nil:
		return nil
	case *Record:
		if x == nil {
			return nil
		}
		out := NewRecord(x.Len())
		for _, key := range x.keys {
			out.Set(key, normalize(x.values[key]))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, v := range x {
			out[k] = normalize(v)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, v := range x {
			out[i] = normalize(v)
		}
		return out
	case []byte:
		return x
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = normalize(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	}

	return NormalizeScalar(data)
}
