package tui

import (
	"testing"
	"time"
)

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{1, time.Second},
		{0, time.Second},
		{-5, time.Second},
		{10000, time.Second / maxTickRate},
	}

	for _, tc := range tests {
		if got := frameInterval(tc.rate); got != tc.expected {
			t.Errorf("frameInterval(%d) = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}
