package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"trackdex/internal/models"
	"trackdex/internal/shared"
)

// TrackRepository implements models.Repository[*models.Track].
//
// Handles track CRUD with soft delete support plus normalized title/artist
// lookups for de-duplication.
type TrackRepository struct {
	db *sql.DB
}

// NewTrackRepository creates a new TrackRepository with the given database connection
func NewTrackRepository(db *sql.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

// Create inserts a new [models.Track] into the database with generated ID and sequence
func (r *TrackRepository) Create(track *models.Track) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "tracks")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}
	track.SetSequence(sequence)
	track.SetID(shared.GenerateID())

	query := `
		INSERT INTO tracks (id, sequence, volume, title, artist, album, duration, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		track.ID(),
		track.Sequence(),
		track.Volume(),
		track.Title(),
		track.Artist(),
		track.Album(),
		track.Duration(),
		track.CreatedAt(),
		track.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert track: %w", err)
	}

	return nil
}

// Get retrieves a track by ID, excluding soft-deleted tracks
func (r *TrackRepository) Get(id string) (*models.Track, error) {
	query := `
		SELECT id, sequence, volume, title, artist, album, duration, created_at, updated_at, deleted_at
		FROM tracks
		WHERE id = ? AND deleted_at IS NULL
	`

	track, err := scanTrack(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, shared.ErrTrackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan track: %w", err)
	}

	return track, nil
}

// GetIn retrieves a track by ID using the provided Querier, typically a
// transaction owned by the ordering engine.
func (r *TrackRepository) GetIn(q Querier, id string) (*models.Track, error) {
	query := `
		SELECT id, sequence, volume, title, artist, album, duration, created_at, updated_at, deleted_at
		FROM tracks
		WHERE id = ? AND deleted_at IS NULL
	`

	track, err := scanTrack(q.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, shared.ErrTrackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan track: %w", err)
	}

	return track, nil
}

// FindByKey retrieves the first track whose normalized title/artist key
// matches the given title and artist (see [shared.NormalizeTrackKey]).
// Returns shared.ErrTrackNotFound when no track matches.
func (r *TrackRepository) FindByKey(title, artist string) (*models.Track, error) {
	tracks, err := r.List(map[string]any{})
	if err != nil {
		return nil, err
	}

	key := shared.NormalizeTrackKey(title, artist)
	for _, track := range tracks {
		if shared.NormalizeTrackKey(track.Title(), track.Artist()) == key {
			return track, nil
		}
	}

	return nil, shared.ErrTrackNotFound
}

// Update modifies an existing track in the database
func (r *TrackRepository) Update(track *models.Track) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	track.SetUpdatedAt(now)

	query := `
		UPDATE tracks
		SET title = ?, artist = ?, album = ?, duration = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		track.Title(),
		track.Artist(),
		track.Album(),
		track.Duration(),
		now,
		track.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update track: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, track.ID())
	}

	return nil
}

// Delete soft-deletes a track by ID
func (r *TrackRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE tracks
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, id)
	}

	return nil
}

// List retrieves all tracks matching the given criteria, excluding soft-deleted tracks
func (r *TrackRepository) List(criteria map[string]any) ([]*models.Track, error) {
	query := `
		SELECT id, sequence, volume, title, artist, album, duration, created_at, updated_at, deleted_at
		FROM tracks
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if volume, ok := criteria["volume"].(string); ok && volume != "" {
		query += " AND volume = ?"
		args = append(args, volume)
	}

	if artist, ok := criteria["artist"].(string); ok && artist != "" {
		query += " AND artist = ?"
		args = append(args, artist)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []*models.Track
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		tracks = append(tracks, track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tracks, nil
}

// scanTrack scans a track row into a [models.Track]
func scanTrack(row scanner) (*models.Track, error) {
	var (
		id        string
		sequence  int
		volume    string
		title     string
		artist    string
		album     string
		duration  int
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := row.Scan(&id, &sequence, &volume, &title, &artist, &album, &duration, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}

	track := models.NewTrack(title, artist, album, volume, duration)
	track.SetID(id)
	track.SetSequence(sequence)
	track.SetCreatedAt(createdAt)
	track.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		track.SetDeletedAt(&deletedAt.Time)
	}

	return track, nil
}
