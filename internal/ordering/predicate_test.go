package ordering

import "testing"

func TestPositionEquals(t *testing.T) {
	pred := PositionEquals(2)

	t.Run("matches only its position", func(t *testing.T) {
		if !pred.Matches(2) {
			t.Error("expected position 2 to match")
		}
		for _, pos := range []int{1, 3, 0, -2} {
			if pred.Matches(pos) {
				t.Errorf("expected position %d not to match", pos)
			}
		}
	})

	t.Run("renders for logs", func(t *testing.T) {
		if got := pred.String(); got != "position = 2" {
			t.Errorf("expected 'position = 2', got %q", got)
		}
	})
}

func TestPositionIn(t *testing.T) {
	pred := PositionIn(1, 3)

	t.Run("matches any listed position", func(t *testing.T) {
		if !pred.Matches(1) || !pred.Matches(3) {
			t.Error("expected positions 1 and 3 to match")
		}
		if pred.Matches(2) {
			t.Error("expected position 2 not to match")
		}
	})

	t.Run("empty set matches nothing", func(t *testing.T) {
		empty := PositionIn()
		for pos := 0; pos < 5; pos++ {
			if empty.Matches(pos) {
				t.Errorf("expected no match at position %d", pos)
			}
		}
	})
}

func TestAnd(t *testing.T) {
	t.Run("requires both sides", func(t *testing.T) {
		pred := And(PositionEquals(3), PositionEquals(3))
		if !pred.Matches(3) {
			t.Error("expected position 3 to match")
		}

		contradiction := And(PositionEquals(1), PositionEquals(2))
		for pos := 0; pos < 5; pos++ {
			if contradiction.Matches(pos) {
				t.Errorf("expected contradiction not to match position %d", pos)
			}
		}
	})

	t.Run("renders both sides", func(t *testing.T) {
		pred := And(PositionEquals(1), PositionEquals(2))
		if got := pred.String(); got != "(position = 1 AND position = 2)" {
			t.Errorf("unexpected rendering: %q", got)
		}
	})
}

func TestSameVolume(t *testing.T) {
	tests := []struct {
		name     string
		playlist string
		track    string
		want     bool
	}{
		{"both external", "external_primary", "external_primary", true},
		{"both internal", "internal", "internal", true},
		{"mismatched", "external_primary", "internal", false},
		{"reversed mismatch", "internal", "external_primary", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameVolume(tt.playlist, tt.track); got != tt.want {
				t.Errorf("SameVolume(%q, %q) = %v, want %v", tt.playlist, tt.track, got, tt.want)
			}
		})
	}
}
