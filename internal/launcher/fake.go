package launcher

import (
	"context"
	"errors"
	"strings"
)

// Call is one invocation seen by FakeExecutor.
type Call struct {
	Name string
	Args []string
}

// FakeExecutor records calls and returns canned results, for tests.
type FakeExecutor struct {
	// Outputs maps "name arg1 arg2" to the stdout Output returns.
	Outputs map[string]string
	// Codes maps an executable name to the exit code Run returns.
	Codes map[string]int
	// StartErr, when set, is returned by Run.
	StartErr error
	// Calls holds Run invocations, Lookups holds Output invocations.
	Calls   []Call
	Lookups []Call
}

// NewFakeExecutor creates an empty fake.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{Outputs: map[string]string{}, Codes: map[string]int{}}
}

// Run records the call and returns the configured code.
func (f *FakeExecutor) Run(_ context.Context, name string, args []string) (int, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: append([]string(nil), args...)})
	if f.StartErr != nil {
		return -1, f.StartErr
	}
	return f.Codes[name], nil
}

// Output returns the configured stdout or an error when none is configured.
func (f *FakeExecutor) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.Lookups = append(f.Lookups, Call{Name: name, Args: append([]string(nil), args...)})
	key := strings.Join(append([]string{name}, args...), " ")
	out, ok := f.Outputs[key]
	if !ok {
		return nil, errors.New(name + ": not available")
	}
	return []byte(out), nil
}
