package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/pava/pavalang"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case pavalang.Value:
		switch v.Kind {
		case pavalang.KindInt:
			return starlark.MakeInt64(v.Int)
		case pavalang.KindString:
			return starlark.String(v.Str)
		}
		return starlark.None

	case bool:
		return starlark.Bool(v)

	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)

	case float64:
		return starlark.Float(v)

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	case map[string]pavalang.Value:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	value := reflect.ValueOf(v)
	if value.Kind() == reflect.Func {
		return starlarkutil.MakeFunc("", value.Interface())
	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
