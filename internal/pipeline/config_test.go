package pipeline

import (
	"testing"

	"github.com/pdiddy/paperfeed/pkg/types"
)

func TestParseMaxResults(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"12", 12, false},
		{" 7 ", 7, false},
		{"0", 0, false},
		{"-1", -1, false},
		{"twelve", 0, true},
		{"12.5", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMaxResults(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMaxResults(%q) = %d, want error", tt.input, got)
				}
				if kind := types.KindOf(err); kind != types.KindConfig {
					t.Errorf("KindOf(err) = %q, want %q", kind, types.KindConfig)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMaxResults(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMaxResults(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
