package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUntilNextHour(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Duration
	}{
		{
			name: "later today",
			now:  time.Date(2025, 3, 3, 18, 30, 0, 0, loc),
			hour: 23,
			want: 4*time.Hour + 30*time.Minute,
		},
		{
			name: "midnight rolls to tomorrow",
			now:  time.Date(2025, 3, 3, 18, 0, 0, 0, loc),
			hour: 0,
			want: 6 * time.Hour,
		},
		{
			name: "exactly at the hour waits a full day",
			now:  time.Date(2025, 3, 3, 0, 0, 0, 0, loc),
			hour: 0,
			want: 24 * time.Hour,
		},
		{
			name: "hour already passed today",
			now:  time.Date(2025, 3, 3, 10, 0, 0, 0, loc),
			hour: 8,
			want: 22 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, untilNextHour(tt.now, tt.hour))
		})
	}
}

func TestSchedulerRunOnce(t *testing.T) {
	s := NewScheduler()

	ran := 0
	s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		ran++
		return nil
	})
	s.AddDailyJob("daily_counter", 0, func(ctx context.Context) error {
		ran++
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, 2, ran)
}
