package eval

import "github.com/vanelang/vane/value"

// init wires value.Truthy's instance-size hook to a zero-arg `size` method
// call, so std_instance truthiness (spec.md §4.1) can be computed without
// package value importing package eval (which would be a cycle — value is
// eval's dependency, not the other way around).
func init() {
	value.SetInstanceSizeHook(func(inst *value.StdInstance) (float64, bool) {
		m, ok := inst.Type.Method("size")
		if !ok {
			return 0, false
		}
		result, err := m(nil, value.StdInstanceVal(inst), nil, nil)
		if err != nil {
			return 0, false
		}
		if result.Kind != value.KindNumber {
			return 0, false
		}
		return result.AsNumber(), true
	})
}
