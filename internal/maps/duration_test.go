package maps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "1 min"},
		{20 * time.Second, "1 min"},
		{time.Minute, "1 min"},
		{45 * time.Minute, "45 mins"},
		{time.Hour, "1 hour"},
		{time.Hour + time.Minute, "1 hour 1 min"},
		{10320 * time.Second, "2 hours 52 mins"},
		{25*time.Hour + 10*time.Minute, "1 day 1 hour"},
		{48 * time.Hour, "2 days"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}
