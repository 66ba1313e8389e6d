package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"trackdex/internal/models"
	"trackdex/internal/shared"
)

// MembershipRepository is the persisted store of (playlist, track, play_order)
// records.
//
// Every mutating primitive takes a Querier so the ordering engine can compose
// shift-then-insert and remove-then-renumber sequences inside a single
// transaction; the engine owns all play order arithmetic, this type only
// executes it.
type MembershipRepository struct {
	db *sql.DB
}

// NewMembershipRepository creates a new MembershipRepository with the given database connection
func NewMembershipRepository(db *sql.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Begin starts a transaction on the underlying database.
func (r *MembershipRepository) Begin() (*sql.Tx, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Insert stores a membership record, assigning its ID and insertion sequence.
func (r *MembershipRepository) Insert(q Querier, m *models.Membership) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequenceIn(q, "playlist_members")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}
	m.SetSequence(sequence)
	m.SetID(shared.GenerateID())

	query := `
		INSERT INTO playlist_members (id, sequence, playlist_id, track_id, play_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = q.Exec(query,
		m.ID(),
		m.Sequence(),
		m.PlaylistID(),
		m.TrackID(),
		m.PlayOrder(),
		m.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert membership: %w", err)
	}

	return nil
}

// MaxPlayOrder returns the highest play order in the playlist, or 0 when the
// playlist has no members.
func (r *MembershipRepository) MaxPlayOrder(q Querier, playlistID string) (int, error) {
	var max int
	err := q.QueryRow(
		"SELECT COALESCE(MAX(play_order), 0) FROM playlist_members WHERE playlist_id = ?",
		playlistID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to query max play order: %w", err)
	}
	return max, nil
}

// Count returns the number of members in the playlist.
func (r *MembershipRepository) Count(q Querier, playlistID string) (int, error) {
	var count int
	err := q.QueryRow(
		"SELECT COUNT(*) FROM playlist_members WHERE playlist_id = ?",
		playlistID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}
	return count, nil
}

// Exists reports whether the playlist already contains the given track.
func (r *MembershipRepository) Exists(q Querier, playlistID, trackID string) (bool, error) {
	var exists bool
	err := q.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM playlist_members WHERE playlist_id = ? AND track_id = ?)",
		playlistID, trackID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check membership existence: %w", err)
	}
	return exists, nil
}

// ShiftFrom increments the play order of every member at or above fromOrder
// by one, opening a slot for an insertion.
func (r *MembershipRepository) ShiftFrom(q Querier, playlistID string, fromOrder int) error {
	_, err := q.Exec(
		"UPDATE playlist_members SET play_order = play_order + 1 WHERE playlist_id = ? AND play_order >= ?",
		playlistID, fromOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to shift play orders: %w", err)
	}
	return nil
}

// SetPlayOrder assigns the given play order to a single membership by ID.
func (r *MembershipRepository) SetPlayOrder(q Querier, id string, order int) error {
	result, err := q.Exec(
		"UPDATE playlist_members SET play_order = ? WHERE id = ?",
		order, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set play order: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrMemberNotFound, id)
	}

	return nil
}

// SetPlayOrderAll assigns the given play order to every membership in ids and
// returns the number of rows updated.
func (r *MembershipRepository) SetPlayOrderAll(q Querier, ids []string, order int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(
		"UPDATE playlist_members SET play_order = ? WHERE id IN (%s)",
		placeholders(len(ids)),
	)

	args := make([]any, 0, len(ids)+1)
	args = append(args, order)
	for _, id := range ids {
		args = append(args, id)
	}

	result, err := q.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to set play orders: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}

// DeleteAll removes every membership in ids and returns the number of rows
// deleted. Survivors keep their play order; gaps are left to the reader.
func (r *MembershipRepository) DeleteAll(q Querier, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(
		"DELETE FROM playlist_members WHERE id IN (%s)",
		placeholders(len(ids)),
	)

	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	result, err := q.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete memberships: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}

// ListOrdered returns the playlist's memberships ordered by play order
// ascending, ties broken by insertion sequence. This is the one read path the
// facade and the engine both observe.
func (r *MembershipRepository) ListOrdered(q Querier, playlistID string) ([]*models.Membership, error) {
	query := `
		SELECT id, sequence, playlist_id, track_id, play_order, created_at
		FROM playlist_members
		WHERE playlist_id = ?
		ORDER BY play_order ASC, sequence ASC
	`

	rows, err := q.Query(query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}
	defer rows.Close()

	var members []*models.Membership
	for rows.Next() {
		member, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return members, nil
}

// Get retrieves a membership by ID.
func (r *MembershipRepository) Get(id string) (*models.Membership, error) {
	query := `
		SELECT id, sequence, playlist_id, track_id, play_order, created_at
		FROM playlist_members
		WHERE id = ?
	`

	member, err := scanMembership(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, shared.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan membership: %w", err)
	}

	return member, nil
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// scanMembership scans a membership row into a [models.Membership]
func scanMembership(row scanner) (*models.Membership, error) {
	var (
		id         string
		sequence   int
		playlistID string
		trackID    string
		playOrder  int
		createdAt  time.Time
	)

	err := row.Scan(&id, &sequence, &playlistID, &trackID, &playOrder, &createdAt)
	if err != nil {
		return nil, err
	}

	member := models.NewMembership(playlistID, trackID, playOrder)
	member.SetID(id)
	member.SetSequence(sequence)
	member.SetCreatedAt(createdAt)

	return member, nil
}
