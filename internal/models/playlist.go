package models

import (
	"fmt"
	"time"
)

// Playlist represents a named, ordered collection of tracks pinned to a
// storage volume. The display name is derived from the name plus the
// extension implied by the playlist's MIME type, and follows the name on
// every rename.
type Playlist struct {
	id          string
	sequence    int
	volume      string
	name        string
	displayName string
	mimeType    string
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

// NewPlaylist creates a Playlist on the given volume. The ID and sequence are
// assigned by the repository on Create.
func NewPlaylist(name, volume, mimeType string) *Playlist {
	now := time.Now()
	p := &Playlist{
		volume:    volume,
		mimeType:  mimeType,
		createdAt: now,
		updatedAt: now,
	}
	p.SetName(name)
	return p
}

func (p *Playlist) ID() string            { return p.id }
func (p *Playlist) Sequence() int         { return p.sequence }
func (p *Playlist) Volume() string        { return p.volume }
func (p *Playlist) Name() string          { return p.name }
func (p *Playlist) DisplayName() string   { return p.displayName }
func (p *Playlist) MimeType() string      { return p.mimeType }
func (p *Playlist) CreatedAt() time.Time  { return p.createdAt }
func (p *Playlist) UpdatedAt() time.Time  { return p.updatedAt }
func (p *Playlist) DeletedAt() *time.Time { return p.deletedAt }

func (p *Playlist) SetID(id string)            { p.id = id }
func (p *Playlist) SetSequence(seq int)        { p.sequence = seq }
func (p *Playlist) SetCreatedAt(t time.Time)   { p.createdAt = t }
func (p *Playlist) SetUpdatedAt(t time.Time)   { p.updatedAt = t }
func (p *Playlist) SetDeletedAt(t *time.Time)  { p.deletedAt = t }
func (p *Playlist) SetDisplayName(name string) { p.displayName = name }

// SetName updates the playlist name and re-derives the display name from it.
func (p *Playlist) SetName(name string) {
	p.name = name
	p.displayName = name + ExtensionForMimeType(p.mimeType)
}

// Validate checks that the playlist has a name and a volume.
func (p *Playlist) Validate() error {
	if p.name == "" {
		return fmt.Errorf("playlist name is required")
	}
	if p.volume == "" {
		return fmt.Errorf("playlist volume is required")
	}
	return nil
}
