package repositories

import (
	"errors"
	"testing"

	"trackdex/internal/models"
	"trackdex/internal/shared"
)

func TestPlaylistRepository(t *testing.T) {
	t.Run("create assigns id and sequence", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewPlaylistRepository(db)

		playlist := models.NewPlaylist("Road Trip", models.VolumeExternalPrimary, "audio/x-mpegurl")
		if err := repo.Create(playlist); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		if playlist.ID() == "" {
			t.Error("expected playlist ID to be assigned")
		}
		if playlist.Sequence() != 1 {
			t.Errorf("expected sequence 1, got %d", playlist.Sequence())
		}
	})

	t.Run("create rejects invalid playlists", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewPlaylistRepository(db)

		if err := repo.Create(models.NewPlaylist("", models.VolumeInternal, "")); err == nil {
			t.Error("expected validation error for missing name")
		}
	})

	t.Run("get round-trips fields", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewPlaylistRepository(db)

		playlist := models.NewPlaylist("Road Trip", models.VolumeExternalPrimary, "audio/x-mpegurl")
		if err := repo.Create(playlist); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		got, err := repo.Get(playlist.ID())
		if err != nil {
			t.Fatalf("failed to get playlist: %v", err)
		}

		if got.Name() != "Road Trip" {
			t.Errorf("expected name 'Road Trip', got %q", got.Name())
		}
		if got.DisplayName() != "Road Trip.m3u" {
			t.Errorf("expected display name 'Road Trip.m3u', got %q", got.DisplayName())
		}
		if got.Volume() != models.VolumeExternalPrimary {
			t.Errorf("expected volume %q, got %q", models.VolumeExternalPrimary, got.Volume())
		}
	})

	t.Run("get returns not found for unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewPlaylistRepository(db)

		if _, err := repo.Get("no-such-id"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("update persists a rename with display name", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewPlaylistRepository(db)

		playlist := models.NewPlaylist("Road Trip", models.VolumeExternalPrimary, "audio/x-mpegurl")
		if err := repo.Create(playlist); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		playlist.SetName("Commute")
		if err := repo.Update(playlist); err != nil {
			t.Fatalf("failed to update playlist: %v", err)
		}

		got, err := repo.Get(playlist.ID())
		if err != nil {
			t.Fatalf("failed to get playlist: %v", err)
		}
		if got.DisplayName() != "Commute.m3u" {
			t.Errorf("expected display name 'Commute.m3u', got %q", got.DisplayName())
		}
	})

	t.Run("delete hides the playlist from reads", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewPlaylistRepository(db)

		playlist := models.NewPlaylist("Road Trip", models.VolumeExternalPrimary, "audio/x-mpegurl")
		if err := repo.Create(playlist); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		if err := repo.Delete(playlist.ID()); err != nil {
			t.Fatalf("failed to delete playlist: %v", err)
		}

		if _, err := repo.Get(playlist.ID()); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound after delete, got %v", err)
		}

		if err := repo.Delete(playlist.ID()); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound on second delete, got %v", err)
		}
	})

	t.Run("list filters by volume and preserves creation order", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewPlaylistRepository(db)

		external := models.NewPlaylist("External Mix", models.VolumeExternalPrimary, "audio/x-mpegurl")
		internal := models.NewPlaylist("Internal Mix", models.VolumeInternal, "audio/x-mpegurl")
		for _, p := range []*models.Playlist{external, internal} {
			if err := repo.Create(p); err != nil {
				t.Fatalf("failed to create playlist: %v", err)
			}
		}

		all, err := repo.List(map[string]any{})
		if err != nil {
			t.Fatalf("failed to list playlists: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 playlists, got %d", len(all))
		}
		if all[0].ID() != external.ID() {
			t.Error("expected creation order to be preserved")
		}

		filtered, err := repo.List(map[string]any{"volume": models.VolumeInternal})
		if err != nil {
			t.Fatalf("failed to list playlists: %v", err)
		}
		if len(filtered) != 1 || filtered[0].ID() != internal.ID() {
			t.Errorf("expected only the internal playlist, got %d results", len(filtered))
		}
	})
}
