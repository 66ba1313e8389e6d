package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"trackdex/internal/models"
	"trackdex/internal/shared"
)

// seedMembers creates a playlist, n tracks on the same volume, and one
// membership per track at play orders 1..n.
func seedMembers(t *testing.T, db *sql.DB, n int) (*models.Playlist, []*models.Membership) {
	t.Helper()

	playlist := models.NewPlaylist("Seed", models.VolumeExternalPrimary, "audio/x-mpegurl")
	if err := NewPlaylistRepository(db).Create(playlist); err != nil {
		t.Fatalf("failed to create playlist: %v", err)
	}

	tracks := NewTrackRepository(db)
	members := NewMembershipRepository(db)

	out := make([]*models.Membership, 0, n)
	for i := 1; i <= n; i++ {
		track := models.NewTrack("Track", "Artist", "", models.VolumeExternalPrimary, 100)
		if err := tracks.Create(track); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		m := models.NewMembership(playlist.ID(), track.ID(), i)
		if err := members.Insert(db, m); err != nil {
			t.Fatalf("failed to insert membership: %v", err)
		}
		out = append(out, m)
	}

	return playlist, out
}

func TestMembershipRepository(t *testing.T) {
	t.Run("insert assigns id and insertion sequence", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		_, members := seedMembers(t, db, 2)

		if members[0].ID() == "" || members[1].ID() == "" {
			t.Error("expected membership IDs to be assigned")
		}
		if members[1].Sequence() <= members[0].Sequence() {
			t.Errorf("expected increasing sequences, got %d then %d",
				members[0].Sequence(), members[1].Sequence())
		}
	})

	t.Run("max play order is zero for an empty playlist", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewMembershipRepository(db)

		max, err := repo.MaxPlayOrder(db, "empty-playlist")
		if err != nil {
			t.Fatalf("failed to query max play order: %v", err)
		}
		if max != 0 {
			t.Errorf("expected max 0, got %d", max)
		}
	})

	t.Run("count and exists reflect inserts", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewMembershipRepository(db)

		playlist, members := seedMembers(t, db, 3)

		count, err := repo.Count(db, playlist.ID())
		if err != nil {
			t.Fatalf("failed to count: %v", err)
		}
		if count != 3 {
			t.Errorf("expected count 3, got %d", count)
		}

		exists, err := repo.Exists(db, playlist.ID(), members[0].TrackID())
		if err != nil {
			t.Fatalf("failed to check existence: %v", err)
		}
		if !exists {
			t.Error("expected membership to exist")
		}

		exists, err = repo.Exists(db, playlist.ID(), "no-such-track")
		if err != nil {
			t.Fatalf("failed to check existence: %v", err)
		}
		if exists {
			t.Error("expected no membership for unknown track")
		}
	})

	t.Run("shift opens a slot at the given order", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewMembershipRepository(db)

		playlist, _ := seedMembers(t, db, 3)

		if err := repo.ShiftFrom(db, playlist.ID(), 2); err != nil {
			t.Fatalf("failed to shift: %v", err)
		}

		listed, err := repo.ListOrdered(db, playlist.ID())
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}

		orders := []int{listed[0].PlayOrder(), listed[1].PlayOrder(), listed[2].PlayOrder()}
		want := []int{1, 3, 4}
		for i := range want {
			if orders[i] != want[i] {
				t.Errorf("order %d: expected %d, got %d", i, want[i], orders[i])
			}
		}
	})

	t.Run("set play order rejects unknown members", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewMembershipRepository(db)

		err := repo.SetPlayOrder(db, "no-such-member", 1)
		if !errors.Is(err, shared.ErrMemberNotFound) {
			t.Errorf("expected ErrMemberNotFound, got %v", err)
		}
	})

	t.Run("bulk set updates every listed member", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewMembershipRepository(db)

		playlist, members := seedMembers(t, db, 3)

		affected, err := repo.SetPlayOrderAll(db, []string{members[0].ID(), members[2].ID()}, 7)
		if err != nil {
			t.Fatalf("failed to bulk set: %v", err)
		}
		if affected != 2 {
			t.Errorf("expected 2 affected rows, got %d", affected)
		}

		listed, err := repo.ListOrdered(db, playlist.ID())
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if listed[0].ID() != members[1].ID() {
			t.Error("expected the untouched member to sort first")
		}
	})

	t.Run("bulk set of nothing affects nothing", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewMembershipRepository(db)

		affected, err := repo.SetPlayOrderAll(db, nil, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if affected != 0 {
			t.Errorf("expected 0 affected rows, got %d", affected)
		}
	})

	t.Run("delete removes only the listed members", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewMembershipRepository(db)

		playlist, members := seedMembers(t, db, 3)

		removed, err := repo.DeleteAll(db, []string{members[1].ID()})
		if err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		if removed != 1 {
			t.Errorf("expected 1 removed row, got %d", removed)
		}

		listed, err := repo.ListOrdered(db, playlist.ID())
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(listed) != 2 {
			t.Fatalf("expected 2 members, got %d", len(listed))
		}
		// Survivors keep their original play orders.
		if listed[0].PlayOrder() != 1 || listed[1].PlayOrder() != 3 {
			t.Errorf("expected play orders 1 and 3, got %d and %d",
				listed[0].PlayOrder(), listed[1].PlayOrder())
		}
	})

	t.Run("list orders ties by insertion sequence", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewMembershipRepository(db)

		playlist, members := seedMembers(t, db, 3)

		// Pull the third member down onto the first's play order.
		if err := repo.SetPlayOrder(db, members[2].ID(), 1); err != nil {
			t.Fatalf("failed to set play order: %v", err)
		}

		listed, err := repo.ListOrdered(db, playlist.ID())
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}

		want := []string{members[0].ID(), members[2].ID(), members[1].ID()}
		for i := range want {
			if listed[i].ID() != want[i] {
				t.Errorf("position %d: expected member %s, got %s", i, want[i], listed[i].ID())
			}
		}
	})

	t.Run("get retrieves a membership by id", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()
		repo := NewMembershipRepository(db)

		_, members := seedMembers(t, db, 1)

		got, err := repo.Get(members[0].ID())
		if err != nil {
			t.Fatalf("failed to get membership: %v", err)
		}
		if got.TrackID() != members[0].TrackID() || got.PlayOrder() != 1 {
			t.Errorf("unexpected membership: %+v", got)
		}

		if _, err := repo.Get("no-such-member"); !errors.Is(err, shared.ErrMemberNotFound) {
			t.Errorf("expected ErrMemberNotFound, got %v", err)
		}
	})
}
