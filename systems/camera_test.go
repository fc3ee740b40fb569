package systems

import "testing"

func TestClampAxis(t *testing.T) {
	cases := []struct {
		name                  string
		target, screen, level float64
		want                  float64
	}{
		{"level_smaller_than_screen", 50, 360, 224, 112},
		{"near_start", 10, 100, 400, 50},
		{"middle", 200, 100, 400, 200},
		{"near_end", 390, 100, 400, 350},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := clampAxis(c.target, c.screen, c.level); got != c.want {
				t.Errorf("clampAxis(%v, %v, %v) = %v, want %v", c.target, c.screen, c.level, got, c.want)
			}
		})
	}
}
