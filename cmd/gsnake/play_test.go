package main

import (
	"testing"

	"github.com/vovakirdan/gesture-snake/internal/sources/keyboard"
	"github.com/vovakirdan/gesture-snake/internal/sources/replay"
)

func TestResolveSource(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		landmarks string
		explicit  bool
		expected  string
		wantErr   bool
	}{
		{"default keyboard", keyboard.Name, "", false, keyboard.Name, false},
		{"landmarks imply replay", keyboard.Name, "a.jsonl", false, replay.NameReplay, false},
		{"explicit source wins", replay.NameStdin, "a.jsonl", true, replay.NameStdin, false},
		{"unknown source", "webcam", "", true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSource(tt.source, tt.landmarks, tt.explicit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}
