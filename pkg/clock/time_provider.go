// pkg/clock/time_provider.go
package clock

import "time"

// Clock is any source of current time. Both PausableClock and
// MockTimeProvider satisfy it, so systems can be driven by game time in
// production and by a controllable source in tests.
type Clock interface {
	Now() time.Time
}

// TimeProvider supplies real time to a PausableClock.
type TimeProvider interface {
	Now() time.Time
}

type systemTimeProvider struct{}

func (systemTimeProvider) Now() time.Time { return time.Now() }

// NewSystemTimeProvider returns a provider backed by the wall clock.
func NewSystemTimeProvider() TimeProvider {
	return systemTimeProvider{}
}

// MockTimeProvider is a controllable time source for tests.
type MockTimeProvider struct {
	currentTime time.Time
}

func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.currentTime
}

func (m *MockTimeProvider) SetTime(t time.Time) {
	m.currentTime = t
}

// Advance moves the mocked time forward by d.
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}
