package probe

import "context"

// MockCommandRunner is a mock implementation of CommandRunner for testing.
type MockCommandRunner struct {
	OutputFunc func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Output implements CommandRunner.Output.
func (m *MockCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if m.OutputFunc != nil {
		return m.OutputFunc(ctx, name, args...)
	}
	return nil, nil
}
