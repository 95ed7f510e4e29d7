// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		min, val, max int
		want          int
	}{
		{1, 0, 10, 1},
		{1, 100, 10, 10},
		{1, 5, 10, 5},
		{0, 0, 0, 0},
	}
	for _, tc := range tests {
		if got := Clamp(tc.min, tc.val, tc.max); got != tc.want {
			t.Errorf("Clamp(%v,%v,%v) = %v, want %v", tc.min, tc.val, tc.max, got, tc.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp(2,4,0.5) = %v, want 3", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Errorf("Lerp(2,4,0) = %v, want 2", got)
	}
}
