package model

import "testing"

func TestPassingThreshold(t *testing.T) {
	custom := 85
	tests := []struct {
		name string
		test Test
		want int
	}{
		{"default when unset", Test{Type: TestTypePost}, DefaultPassingScore},
		{"explicit value", Test{Type: TestTypePost, PassingScore: &custom}, 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.test.PassingThreshold(); got != tt.want {
				t.Errorf("PassingThreshold() = %d, want %d", got, tt.want)
			}
		})
	}
}
