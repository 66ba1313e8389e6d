package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"trackdex/internal/catalog"
	"trackdex/internal/models"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = memberItem{}
)

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist *models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name() }
func (i playlistItem) Title() string       { return i.playlist.DisplayName() }
func (i playlistItem) Description() string {
	return fmt.Sprintf("volume %s", i.playlist.Volume())
}

// memberItem wraps [catalog.Member] to implement [list.Item].
type memberItem struct {
	member catalog.Member
}

func (i memberItem) FilterValue() string { return i.member.Title }
func (i memberItem) Title() string {
	return fmt.Sprintf("%d. %s", i.member.PlayOrder, i.member.Title)
}
func (i memberItem) Description() string {
	if i.member.Artist == "" {
		return i.member.TrackID
	}
	return i.member.Artist
}
