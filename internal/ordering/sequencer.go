package ordering

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"

	"trackdex/internal/models"
	"trackdex/internal/repositories"
	"trackdex/internal/shared"
)

// Entry is one row of the ordered membership view: a track and the raw play
// order it is stored at.
type Entry struct {
	TrackID   string
	PlayOrder int
}

// Sequencer maintains the play order of playlist members. All operations are
// scoped to a single playlist and run inside one transaction each; a failed
// operation leaves every play order exactly as it was.
type Sequencer struct {
	db        *sql.DB
	playlists *repositories.PlaylistRepository
	tracks    *repositories.TrackRepository
	members   *repositories.MembershipRepository
	logger    *log.Logger
}

// NewSequencer creates a Sequencer over the given database connection.
func NewSequencer(db *sql.DB, logger *log.Logger) *Sequencer {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Sequencer{
		db:        db,
		playlists: repositories.NewPlaylistRepository(db),
		tracks:    repositories.NewTrackRepository(db),
		members:   repositories.NewMembershipRepository(db),
		logger:    logger,
	}
}

// Append adds the track at the end of the playlist: play order max+1, or 1
// when the playlist is empty. Fails with shared.ErrAffinityViolation when the
// track lives on a different volume than the playlist.
func (s *Sequencer) Append(playlistID, trackID string) (*models.Membership, error) {
	var member *models.Membership

	err := s.inTx(func(tx *sql.Tx) error {
		if err := s.admit(tx, playlistID, trackID); err != nil {
			return err
		}

		max, err := s.members.MaxPlayOrder(tx, playlistID)
		if err != nil {
			return storeErr(err)
		}

		member = models.NewMembership(playlistID, trackID, max+1)
		if err := s.members.Insert(tx, member); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("appended playlist member",
		"playlist", playlistID, "track", trackID, "play_order", member.PlayOrder())
	return member, nil
}

// InsertAt adds the track at the given 1-based position, shifting every
// member at or above it up by one. Positions at or below zero are clamped to
// the head; positions beyond the current count append. The shift and the
// insert happen in one transaction.
func (s *Sequencer) InsertAt(playlistID, trackID string, position int) (*models.Membership, error) {
	var member *models.Membership

	err := s.inTx(func(tx *sql.Tx) error {
		if err := s.admit(tx, playlistID, trackID); err != nil {
			return err
		}

		count, err := s.members.Count(tx, playlistID)
		if err != nil {
			return storeErr(err)
		}

		if position < 1 {
			position = 1
		}
		if position > count {
			// Past the end there is nothing to shift; land after the last member.
			max, err := s.members.MaxPlayOrder(tx, playlistID)
			if err != nil {
				return storeErr(err)
			}
			member = models.NewMembership(playlistID, trackID, max+1)
			if err := s.members.Insert(tx, member); err != nil {
				return storeErr(err)
			}
			return nil
		}

		if err := s.members.ShiftFrom(tx, playlistID, position); err != nil {
			return storeErr(err)
		}
		member = models.NewMembership(playlistID, trackID, position)
		if err := s.members.Insert(tx, member); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("inserted playlist member",
		"playlist", playlistID, "track", trackID, "play_order", member.PlayOrder())
	return member, nil
}

// Move relocates the member at rank from to rank to. Ranks are 0-based
// indices into the ordered view. Only members between the two ranks change:
// a forward move shifts them down one rank, a backward move shifts them up,
// and the affected range keeps its original multiset of play order values.
// Out-of-range ranks fail with shared.ErrInvalidPosition.
func (s *Sequencer) Move(playlistID string, from, to int) error {
	err := s.inTx(func(tx *sql.Tx) error {
		members, err := s.members.ListOrdered(tx, playlistID)
		if err != nil {
			return storeErr(err)
		}

		n := len(members)
		if from < 0 || from >= n {
			return fmt.Errorf("%w: source index %d outside [0,%d)", shared.ErrInvalidPosition, from, n)
		}
		if to < 0 || to >= n {
			return fmt.Errorf("%w: target index %d outside [0,%d)", shared.ErrInvalidPosition, to, n)
		}
		if from == to {
			return nil
		}

		lo, hi := from, to
		if lo > hi {
			lo, hi = hi, lo
		}
		window := members[lo : hi+1]

		orders := make([]int, len(window))
		for i, m := range window {
			orders[i] = m.PlayOrder()
		}

		arranged := make([]*models.Membership, 0, len(window))
		if from < to {
			arranged = append(arranged, window[1:]...)
			arranged = append(arranged, members[from])
		} else {
			arranged = append(arranged, members[from])
			arranged = append(arranged, window[:len(window)-1]...)
		}

		for i, m := range arranged {
			if m.PlayOrder() == orders[i] {
				continue
			}
			if err := s.members.SetPlayOrder(tx, m.ID(), orders[i]); err != nil {
				return storeErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("moved playlist member", "playlist", playlistID, "from", from, "to", to)
	return nil
}

// Renumber sets the raw play order of every member matching the predicate to
// newOrder and returns how many were updated. No other member shifts, so the
// result may contain duplicate play orders; reads order duplicates by
// insertion sequence. Callers that need one occupant per position must use
// Move instead.
func (s *Sequencer) Renumber(playlistID string, pred Predicate, newOrder int) (int64, error) {
	if newOrder < 1 {
		return 0, fmt.Errorf("%w: play order must be positive, got %d", shared.ErrInvalidArgument, newOrder)
	}

	var affected int64
	err := s.inTx(func(tx *sql.Tx) error {
		ids, err := s.matchingIDs(tx, playlistID, pred)
		if err != nil {
			return err
		}

		affected, err = s.members.SetPlayOrderAll(tx, ids, newOrder)
		if err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("renumbered playlist members",
		"playlist", playlistID, "predicate", pred.String(), "play_order", newOrder, "affected", affected)
	return affected, nil
}

// DeleteWhere removes every member matching the predicate and returns how
// many were removed. Survivors keep their play order values, so raw positions
// may be non-contiguous afterwards; the ordered view is unaffected by gaps.
func (s *Sequencer) DeleteWhere(playlistID string, pred Predicate) (int64, error) {
	var removed int64
	err := s.inTx(func(tx *sql.Tx) error {
		ids, err := s.matchingIDs(tx, playlistID, pred)
		if err != nil {
			return err
		}

		removed, err = s.members.DeleteAll(tx, ids)
		if err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("deleted playlist members",
		"playlist", playlistID, "predicate", pred.String(), "removed", removed)
	return removed, nil
}

// Members returns the playlist's membership view: track and raw play order,
// ordered by play order ascending with ties broken by insertion sequence.
func (s *Sequencer) Members(playlistID string) ([]Entry, error) {
	members, err := s.members.ListOrdered(s.db, playlistID)
	if err != nil {
		return nil, storeErr(err)
	}

	entries := make([]Entry, len(members))
	for i, m := range members {
		entries[i] = Entry{TrackID: m.TrackID(), PlayOrder: m.PlayOrder()}
	}
	return entries, nil
}

// admit verifies that the playlist and track exist and share a volume.
// Runs only on the create paths.
func (s *Sequencer) admit(q repositories.Querier, playlistID, trackID string) error {
	playlist, err := s.playlists.GetIn(q, playlistID)
	if err != nil {
		return err
	}

	track, err := s.tracks.GetIn(q, trackID)
	if err != nil {
		return err
	}

	if !SameVolume(playlist.Volume(), track.Volume()) {
		return fmt.Errorf("%w: playlist on %q, track on %q",
			shared.ErrAffinityViolation, playlist.Volume(), track.Volume())
	}
	return nil
}

// matchingIDs evaluates the predicate against the 1-based rank of each member
// in the ordered view and returns the IDs of the matches.
func (s *Sequencer) matchingIDs(tx *sql.Tx, playlistID string, pred Predicate) ([]string, error) {
	members, err := s.members.ListOrdered(tx, playlistID)
	if err != nil {
		return nil, storeErr(err)
	}

	var ids []string
	for i, m := range members {
		if pred.Matches(i + 1) {
			ids = append(ids, m.ID())
		}
	}
	return ids, nil
}

// inTx runs fn inside a transaction, rolling back on any error.
func (s *Sequencer) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return storeErr(err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeErr(err)
	}
	return nil
}

// storeErr tags a database failure as transient store unavailability while
// keeping the cause in the chain.
func storeErr(err error) error {
	return fmt.Errorf("%w: %w", shared.ErrStoreUnavailable, err)
}
