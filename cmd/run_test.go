package cmd

import (
	"testing"
)

func TestParseScreenArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantW   int32
		wantH   int32
		wantErr bool
	}{
		{name: "no args keeps defaults", args: nil, wantW: 1920, wantH: 1080},
		{name: "both args override", args: []string{"2560", "1440"}, wantW: 2560, wantH: 1440},
		{name: "one arg is an error", args: []string{"2560"}, wantErr: true},
		{name: "non-numeric width", args: []string{"wide", "1440"}, wantErr: true},
		{name: "non-numeric height", args: []string{"2560", "tall"}, wantErr: true},
		{name: "zero width", args: []string{"0", "1080"}, wantErr: true},
		{name: "negative height", args: []string{"1920", "-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := parseScreenArgs(tt.args, 1920, 1080)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseScreenArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("parseScreenArgs() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
