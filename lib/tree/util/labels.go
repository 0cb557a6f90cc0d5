package util

import (
	"cmp"
	"fmt"
	"reflect"
)

// ----------------------------------------------------------------------------
// Label Ordering
// ----------------------------------------------------------------------------

// CompareLabels orders two node labels of unknown type for display purposes.
//
// Labels of an ordered kind (strings, integers, floats, bools) are compared by value.
// Everything else is compared by its fmt representation, which is stable but arbitrary.
// Labels of different kinds are ordered by kind first.
func CompareLabels(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return cmp.Compare(boolRank(va.IsValid()), boolRank(vb.IsValid()))
	}
	if va.Kind() != vb.Kind() {
		return cmp.Compare(va.Kind(), vb.Kind())
	}

	switch va.Kind() {
	case reflect.String:
		return cmp.Compare(va.String(), vb.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float())
	case reflect.Bool:
		return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
