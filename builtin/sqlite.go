package builtin

import (
	"database/sql"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// sqliteHandle is the native payload behind a `sqlite` std_instance: a pure-
// Go database/sql handle (modernc.org/sqlite, no cgo) guarded against
// double-close (spec.md §5's "double-release being a no-op").
type sqliteHandle struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// registerSQLiteType registers the `sqlite` native type over
// modernc.org/sqlite: open on construction, `exec` for statements with no
// result rows, `query` for statements producing rows (returned as an array
// of objects keyed by column name), `close` to release the handle.
func registerSQLiteType(r *Registry) {
	sqliteStruct := &value.StdStruct{Name: "sqlite"}

	sqliteStruct.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "sqlite", "new")
		if err != nil {
			return value.Nil(), err
		}
		db, operr := sql.Open("sqlite", ss[0])
		if operr != nil {
			return value.Nil(), value.WrapError(value.ErrSQLiteOpenFailed, "sqlite.new", "open failed", operr)
		}
		if perr := db.Ping(); perr != nil {
			return value.Nil(), value.WrapError(value.ErrSQLiteOpenFailed, "sqlite.new", "ping failed", perr)
		}
		inst := value.NewStdInstance(sqliteStruct)
		inst.SetInternal(&sqliteHandle{db: db})
		return value.StdInstanceVal(inst), nil
	}

	sqliteStruct.Methods = map[string]value.MethodFunc{
		"exec": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			h, err := sqlitePayload(this)
			if err != nil {
				return value.Nil(), err
			}
			vals, err := r.ExpectAtLeast(ev, args, scope, 1, "sqlite", "exec")
			if err != nil {
				return value.Nil(), err
			}
			query, bindArgs, err := sqliteQueryArgs(r, vals)
			if err != nil {
				return value.Nil(), err
			}
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.closed {
				return value.Nil(), value.NewError(value.ErrSQLiteExecFailed, "sqlite.exec", "handle is closed")
			}
			res, eerr := h.db.Exec(query, bindArgs...)
			if eerr != nil {
				return value.Nil(), value.WrapError(value.ErrSQLiteExecFailed, "sqlite.exec", "exec failed", eerr)
			}
			affected, _ := res.RowsAffected()
			return value.Num(float64(affected)), nil
		},
		"query": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			h, err := sqlitePayload(this)
			if err != nil {
				return value.Nil(), err
			}
			vals, err := r.ExpectAtLeast(ev, args, scope, 1, "sqlite", "query")
			if err != nil {
				return value.Nil(), err
			}
			query, bindArgs, err := sqliteQueryArgs(r, vals)
			if err != nil {
				return value.Nil(), err
			}
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.closed {
				return value.Nil(), value.NewError(value.ErrSQLiteStepFailed, "sqlite.query", "handle is closed")
			}
			rows, qerr := h.db.Query(query, bindArgs...)
			if qerr != nil {
				return value.Nil(), value.WrapError(value.ErrSQLitePrepareFailed, "sqlite.query", "query failed", qerr)
			}
			defer rows.Close()
			cols, cerr := rows.Columns()
			if cerr != nil {
				return value.Nil(), value.WrapError(value.ErrSQLiteStepFailed, "sqlite.query", "columns failed", cerr)
			}
			var out []value.Value
			for rows.Next() {
				scanTargets := make([]interface{}, len(cols))
				scanVals := make([]interface{}, len(cols))
				for i := range scanTargets {
					scanTargets[i] = &scanVals[i]
				}
				if serr := rows.Scan(scanTargets...); serr != nil {
					return value.Nil(), value.WrapError(value.ErrSQLiteStepFailed, "sqlite.query", "scan failed", serr)
				}
				obj := value.NewObject()
				for i, col := range cols {
					cv, cerr := sqliteColumnValue(scanVals[i])
					if cerr != nil {
						return value.Nil(), cerr
					}
					obj.Set(col, cv)
				}
				out = append(out, value.ObjectOf(obj))
			}
			if rerr := rows.Err(); rerr != nil {
				return value.Nil(), value.WrapError(value.ErrSQLiteStepFailed, "sqlite.query", "row iteration failed", rerr)
			}
			return value.ArrayFrom(out), nil
		},
		"close": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			h, err := sqlitePayload(this)
			if err != nil {
				return value.Nil(), err
			}
			if _, err := r.ExpectValues(ev, args, scope, 0, "sqlite", "close"); err != nil {
				return value.Nil(), err
			}
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.closed {
				return value.Nil(), nil
			}
			h.closed = true
			return value.Nil(), h.db.Close()
		},
	}

	r.RegisterType("sqlite", sqliteStruct)
}

func sqlitePayload(this value.Value) (*sqliteHandle, error) {
	inst := this.AsStdInstance()
	tv, err := inst.Internal()
	if err != nil {
		return nil, err
	}
	h, ok := tv.Payload.(*sqliteHandle)
	if !ok {
		return nil, value.NewError(value.ErrMalformedInstance, "sqlite", "__internal payload is not a sqliteHandle")
	}
	return h, nil
}

// sqliteQueryArgs splits the already-evaluated argument list into the SQL
// text (argument 0) and its bind parameters (the rest), rejecting any Kind
// database/sql's driver can't bind.
func sqliteQueryArgs(r *Registry, vals []value.Value) (string, []interface{}, error) {
	if vals[0].Kind != value.KindString {
		return "", nil, r.typeError("sqlite", "query", "first argument must be a string")
	}
	bindArgs := make([]interface{}, len(vals)-1)
	for i, v := range vals[1:] {
		switch v.Kind {
		case value.KindNil:
			bindArgs[i] = nil
		case value.KindBool:
			bindArgs[i] = v.AsBool()
		case value.KindNumber:
			bindArgs[i] = v.AsNumber()
		case value.KindString:
			bindArgs[i] = v.AsString()
		default:
			return "", nil, value.NewError(value.ErrUnsupportedBindValue, "sqlite.query", "cannot bind value of kind "+v.Kind.String())
		}
	}
	return vals[0].AsString(), bindArgs, nil
}

// sqliteColumnValue converts a database/sql scan result (always one of nil,
// int64, float64, bool, string, or []byte from the sqlite driver) into a
// Value.
func sqliteColumnValue(v interface{}) (value.Value, error) {
	switch t := v.(type) {
	case nil:
		return value.Nil(), nil
	case int64:
		return value.Num(float64(t)), nil
	case float64:
		return value.Num(t), nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.StrS(t), nil
	case []byte:
		return value.Str(t), nil
	default:
		return value.Nil(), value.NewError(value.ErrUnsupportedColumnType, "sqlite.query", "unsupported column type")
	}
}
