// package catalog wires the repositories and the ordering engine into the
// facade consumed by the CLI and TUI.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"trackdex/internal/models"
	"trackdex/internal/ordering"
	"trackdex/internal/repositories"
	"trackdex/internal/shared"
)

// Catalog exposes playlist, track and membership operations over one
// database. Membership ordering goes through the sequencer; everything else
// is plain repository CRUD.
type Catalog struct {
	db        *sql.DB
	playlists *repositories.PlaylistRepository
	tracks    *repositories.TrackRepository
	sequencer *ordering.Sequencer
	logger    *log.Logger
}

// Member is one row of the membership listing, joined with track metadata
// for display.
type Member struct {
	TrackID   string
	PlayOrder int
	Title     string
	Artist    string
}

// New creates a Catalog over the given database connection.
func New(db *sql.DB, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Catalog{
		db:        db,
		playlists: repositories.NewPlaylistRepository(db),
		tracks:    repositories.NewTrackRepository(db),
		sequencer: ordering.NewSequencer(db, logger),
		logger:    logger,
	}
}

// CreatePlaylist creates a playlist on the given volume. The display name is
// derived from the name and the extension implied by mimeType.
func (c *Catalog) CreatePlaylist(name, volume, mimeType string) (*models.Playlist, error) {
	playlist := models.NewPlaylist(name, volume, mimeType)
	if err := c.playlists.Create(playlist); err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	c.logger.Info("created playlist", "id", playlist.ID(), "name", name, "volume", volume)
	return playlist, nil
}

// RenamePlaylist updates the playlist name; the display name follows.
func (c *Catalog) RenamePlaylist(id, name string) (*models.Playlist, error) {
	playlist, err := c.playlists.Get(id)
	if err != nil {
		return nil, err
	}

	playlist.SetName(name)
	if err := c.playlists.Update(playlist); err != nil {
		return nil, fmt.Errorf("failed to rename playlist: %w", err)
	}

	c.logger.Info("renamed playlist", "id", id, "name", name)
	return playlist, nil
}

// Playlist retrieves a playlist by ID.
func (c *Catalog) Playlist(id string) (*models.Playlist, error) {
	return c.playlists.Get(id)
}

// Playlists lists playlists, optionally filtered by volume.
func (c *Catalog) Playlists(volume string) ([]*models.Playlist, error) {
	return c.playlists.List(map[string]any{"volume": volume})
}

// DeletePlaylist soft-deletes a playlist. Its membership records stay behind
// but become unreachable through the facade.
func (c *Catalog) DeletePlaylist(id string) error {
	return c.playlists.Delete(id)
}

// AddTrack catalogues a track on the given volume. When an existing track has
// the same normalized title/artist key and volume, it is reused instead of
// creating a duplicate record.
func (c *Catalog) AddTrack(title, artist, album, volume string, duration int) (*models.Track, error) {
	existing, err := c.tracks.FindByKey(title, artist)
	if err == nil && existing.Volume() == volume {
		return existing, nil
	}
	if err != nil && !errors.Is(err, shared.ErrTrackNotFound) {
		return nil, err
	}

	track := models.NewTrack(title, artist, album, volume, duration)
	if err := c.tracks.Create(track); err != nil {
		return nil, fmt.Errorf("failed to create track: %w", err)
	}

	c.logger.Info("catalogued track", "id", track.ID(), "title", title, "volume", volume)
	return track, nil
}

// Track retrieves a track by ID.
func (c *Catalog) Track(id string) (*models.Track, error) {
	return c.tracks.Get(id)
}

// Tracks lists tracks, optionally filtered by volume.
func (c *Catalog) Tracks(volume string) ([]*models.Track, error) {
	return c.tracks.List(map[string]any{"volume": volume})
}

// AddMember appends the track to the playlist.
func (c *Catalog) AddMember(playlistID, trackID string) (*models.Membership, error) {
	return c.sequencer.Append(playlistID, trackID)
}

// AddMemberAt inserts the track at the given 1-based position, shifting later
// members up by one. Out-of-range positions clamp per the sequencer rules.
func (c *Catalog) AddMemberAt(playlistID, trackID string, position int) (*models.Membership, error) {
	return c.sequencer.InsertAt(playlistID, trackID, position)
}

// MoveMember relocates the member at 0-based rank from to rank to.
func (c *Catalog) MoveMember(playlistID string, from, to int) error {
	return c.sequencer.Move(playlistID, from, to)
}

// RepositionMembers sets the raw play order of every member matching the
// predicate, without shifting others, and returns the count updated.
func (c *Catalog) RepositionMembers(playlistID string, pred ordering.Predicate, newOrder int) (int64, error) {
	return c.sequencer.Renumber(playlistID, pred, newOrder)
}

// RemoveMembers deletes every member matching the predicate and returns the
// count removed.
func (c *Catalog) RemoveMembers(playlistID string, pred ordering.Predicate) (int64, error) {
	return c.sequencer.DeleteWhere(playlistID, pred)
}

// Members returns the playlist's ordered membership listing joined with track
// metadata. The playlist must exist.
func (c *Catalog) Members(playlistID string) ([]Member, error) {
	if _, err := c.playlists.Get(playlistID); err != nil {
		return nil, err
	}

	entries, err := c.sequencer.Members(playlistID)
	if err != nil {
		return nil, err
	}

	members := make([]Member, 0, len(entries))
	for _, entry := range entries {
		member := Member{TrackID: entry.TrackID, PlayOrder: entry.PlayOrder}
		if track, err := c.tracks.Get(entry.TrackID); err == nil {
			member.Title = track.Title()
			member.Artist = track.Artist()
		}
		members = append(members, member)
	}
	return members, nil
}
