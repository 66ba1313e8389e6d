package models

import (
	"fmt"
	"time"
)

// Track represents an audio file catalogued by the media index. The ordering
// engine only reads its volume tag; everything else is display metadata.
type Track struct {
	id        string
	sequence  int
	volume    string
	title     string
	artist    string
	album     string
	duration  int
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewTrack creates a Track on the given volume. The ID and sequence are
// assigned by the repository on Create.
func NewTrack(title, artist, album, volume string, duration int) *Track {
	now := time.Now()
	return &Track{
		volume:    volume,
		title:     title,
		artist:    artist,
		album:     album,
		duration:  duration,
		createdAt: now,
		updatedAt: now,
	}
}

func (t *Track) ID() string            { return t.id }
func (t *Track) Sequence() int         { return t.sequence }
func (t *Track) Volume() string        { return t.volume }
func (t *Track) Title() string         { return t.title }
func (t *Track) Artist() string        { return t.artist }
func (t *Track) Album() string         { return t.album }
func (t *Track) Duration() int         { return t.duration }
func (t *Track) CreatedAt() time.Time  { return t.createdAt }
func (t *Track) UpdatedAt() time.Time  { return t.updatedAt }
func (t *Track) DeletedAt() *time.Time { return t.deletedAt }

func (t *Track) SetID(id string)           { t.id = id }
func (t *Track) SetSequence(seq int)       { t.sequence = seq }
func (t *Track) SetTitle(title string)     { t.title = title }
func (t *Track) SetArtist(artist string)   { t.artist = artist }
func (t *Track) SetAlbum(album string)     { t.album = album }
func (t *Track) SetDuration(d int)         { t.duration = d }
func (t *Track) SetCreatedAt(ts time.Time) { t.createdAt = ts }
func (t *Track) SetUpdatedAt(ts time.Time) { t.updatedAt = ts }
func (t *Track) SetDeletedAt(ts *time.Time) {
	t.deletedAt = ts
}

// Validate checks that the track has a title and a volume.
func (t *Track) Validate() error {
	if t.title == "" {
		return fmt.Errorf("track title is required")
	}
	if t.volume == "" {
		return fmt.Errorf("track volume is required")
	}
	return nil
}
