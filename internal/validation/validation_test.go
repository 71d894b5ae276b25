package validation

import (
	"testing"
	"time"
)

func TestValidateHabitName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Morning run", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"emoji name", "💧 Water", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHabitName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHabitName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid lowercase", "#6366f1", false},
		{"valid uppercase", "#6366F1", false},
		{"missing hash", "6366F1", true},
		{"too short", "#FFF", true},
		{"non-hex", "#GGGGGG", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogTime(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	if err := ValidateLogTime(now.UnixMilli(), now); err != nil {
		t.Errorf("timestamp equal to now should be allowed: %v", err)
	}
	if err := ValidateLogTime(now.UnixMilli()-1000, now); err != nil {
		t.Errorf("backdated timestamp should be allowed: %v", err)
	}
	if err := ValidateLogTime(now.UnixMilli()+1000, now); err == nil {
		t.Error("future timestamp should be rejected")
	}
}

func TestParseLogTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"rfc3339", "2025-03-10T09:30:00Z", false},
		{"local datetime", "2025-03-10 09:30", false},
		{"bare date", "2025-03-10", false},
		{"garbage", "not-a-time", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := ParseLogTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLogTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && ts == 0 {
				t.Errorf("ParseLogTime(%q) returned zero timestamp", tt.input)
			}
		})
	}
}

func TestParseLogTimeBareDateIsMidnight(t *testing.T) {
	ts, err := ParseLogTime("2025-03-10")
	if err != nil {
		t.Fatalf("ParseLogTime failed: %v", err)
	}
	parsed := time.UnixMilli(ts).In(time.Local)
	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Errorf("bare date parsed to %v, want local midnight", parsed)
	}
}
