package builtin

import (
	"encoding/json"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadJSONModule bridges Vane's value model to Go's standard encoding/json
// by walking Values and json.Unmarshal's interface{} output by hand rather than relying on
// reflection-driven struct tags, since Value has no fixed Go shape for the
// encoding/json package to reflect over.
func loadJSONModule(r *Registry) value.Value {
	m := newModule()

	m.Set("stringify", nativeFn("stringify", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectValues(ev, args, scope, 1, "json", "stringify")
		if err != nil {
			return value.Nil(), err
		}
		out, jerr := jsonEncode(vals[0])
		if jerr != nil {
			return value.Nil(), r.typeError("json", "stringify", jerr.Error())
		}
		b, merr := json.Marshal(out)
		if merr != nil {
			return value.Nil(), value.WrapError(value.ErrIOFailure, "json.stringify", "marshal failed", merr)
		}
		return value.StrS(string(b)), nil
	}))
	m.Set("parse", nativeFn("parse", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "json", "parse")
		if err != nil {
			return value.Nil(), err
		}
		var decoded interface{}
		if jerr := json.Unmarshal([]byte(ss[0]), &decoded); jerr != nil {
			return value.Nil(), value.WrapError(value.ErrInvalidFileFormat, "json.parse", "invalid JSON", jerr)
		}
		return jsonDecode(decoded), nil
	}))

	return value.ObjectOf(m)
}

// jsonEncode converts a Value tree into plain Go data encoding/json knows
// how to marshal. Functions, std_instances, and the control-flow signal
// kinds have no JSON representation.
func jsonEncode(v value.Value) (interface{}, error) {
	v = value.Deref(v)
	switch v.Kind {
	case value.KindNil:
		return nil, nil
	case value.KindBool:
		return v.AsBool(), nil
	case value.KindNumber:
		return v.AsNumber(), nil
	case value.KindString:
		return v.AsString(), nil
	case value.KindArray:
		arr := v.AsArray()
		out := make([]interface{}, len(arr.Elems))
		for i, e := range arr.Elems {
			ev, err := jsonEncode(e)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case value.KindObject:
		obj := v.AsObject()
		out := make(map[string]interface{}, obj.Len())
		for _, k := range obj.Keys() {
			fv, _ := obj.Get(k)
			ev, err := jsonEncode(fv)
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	default:
		return nil, &value.Error{Kind: value.ErrTypeMismatch, Detail: "value of kind " + v.Kind.String() + " is not JSON-encodable"}
	}
}

// jsonDecode converts Go data from json.Unmarshal into Vane Values.
// json.Unmarshal into interface{} always yields float64 for numbers, which
// matches Value's single numeric Kind exactly.
func jsonDecode(d interface{}) value.Value {
	switch t := d.(type) {
	case nil:
		return value.Nil()
	case bool:
		return value.Bool(t)
	case float64:
		return value.Num(t)
	case string:
		return value.StrS(t)
	case []interface{}:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			elems[i] = jsonDecode(e)
		}
		return value.ArrayFrom(elems)
	case map[string]interface{}:
		obj := value.NewObject()
		for k, v := range t {
			obj.Set(k, jsonDecode(v))
		}
		return value.ObjectOf(obj)
	default:
		return value.Nil()
	}
}
