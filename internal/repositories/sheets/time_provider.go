package sheets

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/sheet-engine/internal/repositories/sheets TimeProvider

// TimeProvider abstracts the clock so repository timestamps are testable
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the wall clock
type RealTimeProvider struct{}

// Now returns the current UTC time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
