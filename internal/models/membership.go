package models

import (
	"fmt"
	"time"
)

// Membership binds one track to one playlist at a 1-based play order.
// A track may belong to many playlists or none; deleting a membership never
// deletes the track. The sequence counter records insertion order and breaks
// ties when two memberships share a play order.
type Membership struct {
	id         string
	sequence   int
	playlistID string
	trackID    string
	playOrder  int
	createdAt  time.Time
}

// NewMembership creates a Membership record. The ID and sequence are assigned
// by the store on insert; the play order is assigned by the sequencer.
func NewMembership(playlistID, trackID string, playOrder int) *Membership {
	return &Membership{
		playlistID: playlistID,
		trackID:    trackID,
		playOrder:  playOrder,
		createdAt:  time.Now(),
	}
}

func (m *Membership) ID() string           { return m.id }
func (m *Membership) Sequence() int        { return m.sequence }
func (m *Membership) PlaylistID() string   { return m.playlistID }
func (m *Membership) TrackID() string      { return m.trackID }
func (m *Membership) PlayOrder() int       { return m.playOrder }
func (m *Membership) CreatedAt() time.Time { return m.createdAt }

// UpdatedAt returns the creation time; memberships carry no separate update
// timestamp since only their play order ever changes.
func (m *Membership) UpdatedAt() time.Time { return m.createdAt }

func (m *Membership) SetID(id string)           { m.id = id }
func (m *Membership) SetSequence(seq int)       { m.sequence = seq }
func (m *Membership) SetPlayOrder(order int)    { m.playOrder = order }
func (m *Membership) SetCreatedAt(ts time.Time) { m.createdAt = ts }

// Validate checks that the membership references a playlist and a track and
// holds a positive play order.
func (m *Membership) Validate() error {
	if m.playlistID == "" {
		return fmt.Errorf("membership playlist ID is required")
	}
	if m.trackID == "" {
		return fmt.Errorf("membership track ID is required")
	}
	if m.playOrder < 1 {
		return fmt.Errorf("membership play order must be positive, got %d", m.playOrder)
	}
	return nil
}
