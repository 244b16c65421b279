package parser

import "testing"

func TestFenceTracker(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		skip  []bool
	}{
		{
			name:  "backtick fence",
			lines: []string{"before", "```go", "## inside", "```", "after"},
			skip:  []bool{false, true, true, true, false},
		},
		{
			name:  "tilde fence",
			lines: []string{"~~~", "* [ ] inside", "~~~", "* [ ] outside"},
			skip:  []bool{true, true, true, false},
		},
		{
			name:  "longer fence needs longer close",
			lines: []string{"````", "```", "still inside", "````", "after"},
			skip:  []bool{true, true, true, true, false},
		},
		{
			name:  "mismatched character does not close",
			lines: []string{"```", "~~~", "```", "after"},
			skip:  []bool{true, true, true, false},
		},
		{
			name:  "two backticks are not a fence",
			lines: []string{"``", "text"},
			skip:  []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f fenceTracker
			for i, line := range tt.lines {
				if got := f.skip(line); got != tt.skip[i] {
					t.Errorf("line %d %q: skip = %v, want %v", i, line, got, tt.skip[i])
				}
			}
		})
	}
}
