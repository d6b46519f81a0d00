package builtin

import (
	"encoding/csv"
	"strings"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadCSVModule wraps encoding/csv; a row is an array of strings, a table is
// an array of rows, matching spec.md §4.4's "thin shims" treatment of
// standard-library text formats.
func loadCSVModule(r *Registry) value.Value {
	m := newModule()

	m.Set("parse", nativeFn("parse", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "csv", "parse")
		if err != nil {
			return value.Nil(), err
		}
		reader := csv.NewReader(strings.NewReader(ss[0]))
		reader.FieldsPerRecord = -1
		records, rerr := reader.ReadAll()
		if rerr != nil {
			return value.Nil(), value.WrapError(value.ErrInvalidFileFormat, "csv.parse", "malformed CSV", rerr)
		}
		rows := make([]value.Value, len(records))
		for i, rec := range records {
			cells := make([]value.Value, len(rec))
			for j, c := range rec {
				cells[j] = value.StrS(c)
			}
			rows[i] = value.ArrayFrom(cells)
		}
		return value.ArrayFrom(rows), nil
	}))

	m.Set("write", nativeFn("write", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectValues(ev, args, scope, 1, "csv", "write")
		if err != nil {
			return value.Nil(), err
		}
		if vals[0].Kind != value.KindArray {
			return value.Nil(), r.typeError("csv", "write", "argument 0 must be an array of rows")
		}
		var sb strings.Builder
		writer := csv.NewWriter(&sb)
		for _, rowVal := range vals[0].AsArray().Elems {
			if rowVal.Kind != value.KindArray {
				return value.Nil(), r.typeError("csv", "write", "each row must be an array of strings")
			}
			row := rowVal.AsArray()
			rec := make([]string, len(row.Elems))
			for i, c := range row.Elems {
				if c.Kind != value.KindString {
					return value.Nil(), r.typeError("csv", "write", "each cell must be a string")
				}
				rec[i] = c.AsString()
			}
			if werr := writer.Write(rec); werr != nil {
				return value.Nil(), value.WrapError(value.ErrIOFailure, "csv.write", "write failed", werr)
			}
		}
		writer.Flush()
		if werr := writer.Error(); werr != nil {
			return value.Nil(), value.WrapError(value.ErrIOFailure, "csv.write", "flush failed", werr)
		}
		return value.StrS(sb.String()), nil
	}))

	return value.ObjectOf(m)
}
