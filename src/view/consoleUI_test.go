package view

import (
	"strings"
	"testing"
	"time"
)

func TestAdjustInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		delta    time.Duration
		want     time.Duration
	}{
		{"slower", 500 * time.Millisecond, IntervalStep, 550 * time.Millisecond},
		{"faster", 500 * time.Millisecond, -IntervalStep, 450 * time.Millisecond},
		{"lower bound", MinInterval, -IntervalStep, MinInterval},
		{"upper bound", MaxInterval, IntervalStep, MaxInterval},
		{"below minimum grows", 20 * time.Millisecond, IntervalStep, 70 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adjustInterval(tt.interval, tt.delta); got != tt.want {
				t.Errorf("adjustInterval(%v, %v) = %v, expected %v", tt.interval, tt.delta, got, tt.want)
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	a := testArea([][]int{{0, 0}, {2, 1}})

	full := renderText(a, 10, 10, "#", ".")
	lines := strings.Split(full, "\n")
	if len(lines) != 10 {
		t.Fatalf("rendered %d lines, expected 10", len(lines))
	}
	if lines[0] != "#........." || lines[1] != "..#......." {
		t.Fatalf("unexpected field:\n%s", full)
	}

	cropped := strings.Split(renderText(a, 4, 3, "#", "."), "\n")
	if len(cropped) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(cropped))
	}
	if cropped[0] != "#..." || cropped[1] != "..#." {
		t.Fatalf("unexpected cropped field: %q", cropped)
	}
	if !strings.Contains(cropped[2], "larger than the viewing area") {
		t.Fatalf("missing crop warning: %q", cropped[2])
	}
}
