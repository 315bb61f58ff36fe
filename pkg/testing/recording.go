package testing

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/native"
)

// Call is one recorded native-toolkit invocation.
type Call struct {
	// Method is the Toolkit method name, with setter invocations recorded
	// as "Setter".
	Method string
	// Detail identifies the target: the constructed type, the setter
	// name, the constant name, or the parent/child types of an append.
	Detail string
}

func (c Call) String() string {
	return c.Method + "(" + c.Detail + ")"
}

// RecordingToolkit is a [native.Toolkit] that records every call a build
// makes before delegating to an embedded [native.ReflectToolkit].
// Registration methods pass through, so tests wire real widget sets into
// it directly.
type RecordingToolkit struct {
	*native.ReflectToolkit

	mu    sync.Mutex
	calls []Call
}

// NewRecordingToolkit creates a recording toolkit over a fresh reflect
// toolkit.
func NewRecordingToolkit() *RecordingToolkit {
	return &RecordingToolkit{ReflectToolkit: native.NewReflectToolkit()}
}

func (tk *RecordingToolkit) record(method, detail string) {
	tk.mu.Lock()
	tk.calls = append(tk.calls, Call{Method: method, Detail: detail})
	tk.mu.Unlock()
}

// Calls returns a copy of everything recorded so far, in call order.
func (tk *RecordingToolkit) Calls() []Call {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return append([]Call(nil), tk.calls...)
}

// Methods returns just the method names, in call order.
func (tk *RecordingToolkit) Methods() []string {
	calls := tk.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Method
	}
	return out
}

// Reset clears the recording.
func (tk *RecordingToolkit) Reset() {
	tk.mu.Lock()
	tk.calls = nil
	tk.mu.Unlock()
}

// ExpectMethods fails the test unless the recorded method sequence equals
// want.
func (tk *RecordingToolkit) ExpectMethods(t *testing.T, want ...string) {
	t.Helper()
	got := tk.Methods()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("toolkit calls = %v, want %v", got, want)
	}
}

func (tk *RecordingToolkit) Construct(t reflect.Type, args []any) (any, error) {
	tk.record("Construct", t.String())
	return tk.ReflectToolkit.Construct(t, args)
}

// Setter resolves through the inner toolkit and wraps the result so the
// call is recorded when the setter actually runs, not when it resolves.
func (tk *RecordingToolkit) Setter(t reflect.Type, name string, param reflect.Type) (native.Setter, error) {
	inner, err := tk.ReflectToolkit.Setter(t, name, param)
	if err != nil {
		return nil, err
	}
	return func(widget, value any) error {
		tk.record("Setter", name)
		return inner(widget, value)
	}, nil
}

func (tk *RecordingToolkit) Constant(t reflect.Type, name string) (any, error) {
	tk.record("Constant", name)
	return tk.ReflectToolkit.Constant(t, name)
}

func (tk *RecordingToolkit) ConvertDimension(value float64, unit core.Unit, metrics core.DisplayMetrics) (int, error) {
	tk.record("ConvertDimension", fmt.Sprintf("%g%s", value, unit))
	return tk.ReflectToolkit.ConvertDimension(value, unit, metrics)
}

func (tk *RecordingToolkit) AppendChild(parent, child any) error {
	tk.record("AppendChild", fmt.Sprintf("%T<-%T", parent, child))
	return tk.ReflectToolkit.AppendChild(parent, child)
}
