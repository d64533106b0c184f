package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2025, time.March, 3, hour, min, sec, 0, time.UTC)
}

func TestPolicy_ClassifyCheckIn(t *testing.T) {
	policy := Policy{StartHour: 8, EndHour: 9}

	tests := []struct {
		name     string
		checkIn  time.Time
		wantLate bool
	}{
		{"start of window", at(8, 0, 0), false},
		{"any minute of start hour", at(8, 59, 59), false},
		{"end hour sharp", at(9, 0, 0), false},
		{"one second past the boundary", at(9, 0, 1), true},
		{"one minute past the boundary", at(9, 1, 0), true},
		{"one minute before the window", at(7, 59, 0), true},
		{"midnight", at(0, 0, 0), true},
		{"late afternoon", at(15, 30, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLate, policy.ClassifyCheckIn(tt.checkIn))
		})
	}
}

func TestPolicy_ClassifyCheckIn_WiderWindow(t *testing.T) {
	policy := Policy{StartHour: 7, EndHour: 10}

	assert.False(t, policy.ClassifyCheckIn(at(7, 0, 0)))
	assert.False(t, policy.ClassifyCheckIn(at(8, 30, 0)))
	assert.False(t, policy.ClassifyCheckIn(at(9, 45, 0)))
	assert.False(t, policy.ClassifyCheckIn(at(10, 0, 0)))
	assert.True(t, policy.ClassifyCheckIn(at(10, 0, 1)))
	assert.True(t, policy.ClassifyCheckIn(at(6, 59, 59)))
}

func TestComputeWorkedDuration(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"standard day", at(9, 0, 0), at(17, 30, 0), 510},
		{"rounds down under half a minute", at(9, 0, 0), at(17, 0, 29), 480},
		{"rounds up at half a minute", at(9, 0, 0), at(17, 0, 30), 481},
		{"zero duration", at(9, 0, 0), at(9, 0, 0), 0},
		{"clock moved backwards clamps to zero", at(9, 0, 0), at(8, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeWorkedDuration(tt.checkIn, tt.checkOut))
		})
	}
}

func TestMinutesToHours(t *testing.T) {
	assert.Equal(t, 8.5, MinutesToHours(510))
	assert.Equal(t, 8.0, MinutesToHours(480))
	assert.Equal(t, 0.0, MinutesToHours(0))
	assert.Equal(t, 7.52, MinutesToHours(451))
}
