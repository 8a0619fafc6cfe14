package clock

import "testing"

func TestDurationLabel(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"hours and minutes", "09:00", "10:30", "1 Hr 30 Mins"},
		{"wraps past midnight", "23:00", "01:00", "2 Hr"},
		{"equal times", "14:00", "14:00", ""},
		{"minutes only", "09:15", "09:45", "30 Mins"},
		{"hours only", "08:00", "11:00", "3 Hr"},
		{"one minute", "10:00", "10:01", "1 Mins"},
		{"malformed start", "9am", "10:00", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationLabel(tt.start, tt.end); got != tt.want {
				t.Fatalf("DurationLabel(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestElapsedMinutes_NeverNegative(t *testing.T) {
	mins, err := ElapsedMinutes("22:30", "00:15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mins != 105 {
		t.Fatalf("expected 105 minutes, got %d", mins)
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		start  string
		offset int
		want   string
	}{
		{"09:00", 90, "10:30"},
		{"23:30", 45, "00:15"},
		{"00:00", 0, "00:00"},
		{"12:59", 1, "13:00"},
	}
	for _, tt := range tests {
		got, err := AddMinutes(tt.start, tt.offset)
		if err != nil {
			t.Fatalf("AddMinutes(%q, %d): %v", tt.start, tt.offset, err)
		}
		if got != tt.want {
			t.Fatalf("AddMinutes(%q, %d) = %q, want %q", tt.start, tt.offset, got, tt.want)
		}
	}
}

func TestFormat12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"13:05", "1:05 PM"},
		{"12:00", "12:00 PM"},
		{"11:59", "11:59 AM"},
		{"23:59", "11:59 PM"},
		{"00:30", "12:30 AM"},
	}
	for _, tt := range tests {
		if got := Format12Hour(tt.in); got != tt.want {
			t.Fatalf("Format12Hour(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseHHMM_Rejects(t *testing.T) {
	for _, s := range []string{"", "24:00", "12:60", "noon", "1200", "-1:00"} {
		if _, _, err := ParseHHMM(s); err == nil {
			t.Fatalf("ParseHHMM(%q): expected error", s)
		}
	}
}
