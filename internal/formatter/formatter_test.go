package formatter

import (
	"strings"
	"testing"

	"trackdex/internal/catalog"
	"trackdex/internal/models"
)

func sampleMembers() []catalog.Member {
	return []catalog.Member{
		{TrackID: "t-1", PlayOrder: 1, Title: "Red", Artist: "Artist A"},
		{TrackID: "t-2", PlayOrder: 2, Title: "Green", Artist: "Artist B"},
	}
}

func TestMembersToCSV(t *testing.T) {
	t.Run("writes header and one row per member", func(t *testing.T) {
		data, err := MembersToCSV(sampleMembers())
		if err != nil {
			t.Fatalf("failed to format CSV: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		if lines[0] != "PlayOrder,TrackID,Title,Artist" {
			t.Errorf("unexpected header: %q", lines[0])
		}
		if lines[1] != "1,t-1,Red,Artist A" {
			t.Errorf("unexpected first row: %q", lines[1])
		}
	})

	t.Run("empty listing is header only", func(t *testing.T) {
		data, err := MembersToCSV(nil)
		if err != nil {
			t.Fatalf("failed to format CSV: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 1 {
			t.Errorf("expected header only, got %d lines", len(lines))
		}
	})
}

func TestMembersToMarkdown(t *testing.T) {
	playlist := models.NewPlaylist("Road Trip", models.VolumeExternalPrimary, "audio/x-mpegurl")

	data := string(MembersToMarkdown(playlist, sampleMembers()))

	if !strings.HasPrefix(data, "# Road Trip.m3u\n") {
		t.Errorf("expected display name heading, got %q", data)
	}
	if !strings.Contains(data, "Volume: `external_primary`") {
		t.Error("expected volume line")
	}
	if !strings.Contains(data, "| 1 | Red | Artist A |") {
		t.Error("expected first member row")
	}
	if !strings.Contains(data, "| 2 | Green | Artist B |") {
		t.Error("expected second member row")
	}
}

func TestMembersToTable(t *testing.T) {
	out := MembersToTable(sampleMembers())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ORDER") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Red") || !strings.Contains(lines[1], "t-1") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
}
