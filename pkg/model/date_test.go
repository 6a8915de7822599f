package model

import "testing"

func TestValidDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-03-01", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"2024-3-1", false},
		{"01-03-2024", false},
		{"2024-03-01T00:00:00Z", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidDate(tt.input); got != tt.want {
				t.Errorf("ValidDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "2024-01-01", "2024-01-05", "2024-01-01", "2024-01-05", true},
		{"contained", "2024-01-02", "2024-01-03", "2024-01-01", "2024-01-05", true},
		{"partial left", "2023-12-30", "2024-01-02", "2024-01-01", "2024-01-05", true},
		{"partial right", "2024-01-04", "2024-01-08", "2024-01-01", "2024-01-05", true},
		{"touching, a before b", "2024-01-01", "2024-01-05", "2024-01-05", "2024-01-10", false},
		{"touching, b before a", "2024-01-05", "2024-01-10", "2024-01-01", "2024-01-05", false},
		{"disjoint", "2024-01-01", "2024-01-02", "2024-01-10", "2024-01-11", false},
		{"single night inside", "2024-01-03", "2024-01-04", "2024-01-01", "2024-01-05", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps(%q,%q,%q,%q) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// overlap is symmetric
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %s", tt.name)
			}
		})
	}
}

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		input string
		want  BookingType
	}{
		{"", TypeTwoBHK},
		{"2bhk", TypeTwoBHK},
		{"1bhk", TypeOneBHK},
		{"lock", TypeLock},
		{" Penthouse ", BookingType("PENTHOUSE")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeType(tt.input); got != tt.want {
				t.Errorf("NormalizeType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBookingType_TriggersBlock(t *testing.T) {
	if !TypeOneBHK.TriggersBlock() {
		t.Error("expected 1BHK to trigger the block step")
	}
	if TypeTwoBHK.TriggersBlock() || TypeLock.TriggersBlock() {
		t.Error("expected only 1BHK to trigger the block step")
	}
	if !TypeLock.IsLock() || TypeOneBHK.IsLock() {
		t.Error("expected only LOCK to be a lock type")
	}
}
