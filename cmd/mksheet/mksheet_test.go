package main

import "testing"

func TestCheckLayoutFlag(t *testing.T) {
	for _, tt := range []struct {
		name, value string
		wantErr     bool
	}{
		{"rows", "1", false},
		{"rows", "12", false},
		{"columns", "5", false},
		{"chunk_size", "3", false},
		{"rows", "0", true},
		{"columns", "-3", true},
		{"chunk_size", "abc", true},
		// Non-layout flags are not this check's business.
		{"log_level", "warn", false},
		{"spritesheet_name", "", false},
	} {
		err := checkLayoutFlag(tt.name, tt.value)
		if tt.wantErr && err == nil {
			t.Errorf("checkLayoutFlag(%q, %q): expected an error", tt.name, tt.value)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("checkLayoutFlag(%q, %q): %v", tt.name, tt.value, err)
		}
	}
}
