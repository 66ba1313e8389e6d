// submodule cmd contains command definitions for playlist and track operations
package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"trackdex/internal/models"
)

// playlistJSON is the serialized form of a playlist for --json output.
type playlistJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Volume      string `json:"volume"`
	MimeType    string `json:"mime_type"`
}

// trackJSON is the serialized form of a track for --json output.
type trackJSON struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Volume   string `json:"volume"`
	Duration int    `json:"duration"`
}

func toPlaylistJSON(p *models.Playlist) playlistJSON {
	return playlistJSON{
		ID:          p.ID(),
		Name:        p.Name(),
		DisplayName: p.DisplayName(),
		Volume:      p.Volume(),
		MimeType:    p.MimeType(),
	}
}

func toTrackJSON(t *models.Track) trackJSON {
	return trackJSON{
		ID:       t.ID(),
		Title:    t.Title(),
		Artist:   t.Artist(),
		Album:    t.Album(),
		Volume:   t.Volume(),
		Duration: t.Duration(),
	}
}

// PlaylistCreate creates a playlist on a volume.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	volume := cmd.String("volume")
	if volume == "" {
		volume = r.config.Library.DefaultVolume
	}
	mimeType := cmd.String("mime-type")
	if mimeType == "" {
		mimeType = r.config.Library.DefaultMimeType
	}

	playlist, err := cat.CreatePlaylist(cmd.String("name"), volume, mimeType)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(toPlaylistJSON(playlist), true)
	}
	return r.writePlainln("✓ Created playlist %s (%s)", playlist.DisplayName(), playlist.ID())
}

// PlaylistList lists playlists, optionally filtered by volume.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	playlists, err := cat.Playlists(cmd.String("volume"))
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	if cmd.Bool("json") {
		out := make([]playlistJSON, len(playlists))
		for i, p := range playlists {
			out[i] = toPlaylistJSON(p)
		}
		return r.writeJSON(out, true)
	}

	for _, p := range playlists {
		r.writePlainln("%s  %s  [%s]", p.ID(), p.DisplayName(), p.Volume())
	}
	return nil
}

// PlaylistShow prints a single playlist.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	playlist, err := cat.Playlist(cmd.String("id"))
	if err != nil {
		return fmt.Errorf("failed to get playlist: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(toPlaylistJSON(playlist), true)
	}
	return r.writePlainln("%s  %s  [%s]  %s",
		playlist.ID(), playlist.DisplayName(), playlist.Volume(), playlist.MimeType())
}

// PlaylistRename renames a playlist; the display name follows the new name.
func (r *Runner) PlaylistRename(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	playlist, err := cat.RenamePlaylist(cmd.String("id"), cmd.String("name"))
	if err != nil {
		return fmt.Errorf("failed to rename playlist: %w", err)
	}

	return r.writePlainln("✓ Renamed playlist to %s", playlist.DisplayName())
}

// PlaylistDelete removes a playlist from the index.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	id := cmd.String("id")
	if err := cat.DeletePlaylist(id); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	return r.writePlainln("✓ Deleted playlist %s", id)
}

// TrackAdd catalogues a track on a volume.
func (r *Runner) TrackAdd(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	volume := cmd.String("volume")
	if volume == "" {
		volume = r.config.Library.DefaultVolume
	}

	track, err := cat.AddTrack(
		cmd.String("title"),
		cmd.String("artist"),
		cmd.String("album"),
		volume,
		int(cmd.Int("duration")),
	)
	if err != nil {
		return fmt.Errorf("failed to add track: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(toTrackJSON(track), true)
	}
	return r.writePlainln("✓ Catalogued track %s (%s)", track.Title(), track.ID())
}

// TrackList lists tracks, optionally filtered by volume.
func (r *Runner) TrackList(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	tracks, err := cat.Tracks(cmd.String("volume"))
	if err != nil {
		return fmt.Errorf("failed to list tracks: %w", err)
	}

	if cmd.Bool("json") {
		out := make([]trackJSON, len(tracks))
		for i, t := range tracks {
			out[i] = toTrackJSON(t)
		}
		return r.writeJSON(out, true)
	}

	for _, t := range tracks {
		r.writePlainln("%s  %s — %s  [%s]", t.ID(), t.Title(), t.Artist(), t.Volume())
	}
	return nil
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// playlistCommand handles playlist metadata operations
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Manage playlists",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a playlist on a volume",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "name", Usage: "Playlist name", Required: true},
					&cli.StringFlag{Name: "volume", Usage: "Storage volume"},
					&cli.StringFlag{Name: "mime-type", Usage: "Playlist format MIME type"},
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
				},
				Action: r.PlaylistCreate,
			},
			{
				Name:  "list",
				Usage: "List playlists",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "volume", Usage: "Filter by storage volume"},
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
				},
				Action: r.PlaylistList,
			},
			{
				Name:  "show",
				Usage: "Show a single playlist",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "id", Usage: "Playlist ID", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
				},
				Action: r.PlaylistShow,
			},
			{
				Name:  "rename",
				Usage: "Rename a playlist",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "id", Usage: "Playlist ID", Required: true},
					&cli.StringFlag{Name: "name", Usage: "New playlist name", Required: true},
				},
				Action: r.PlaylistRename,
			},
			{
				Name:  "delete",
				Usage: "Delete a playlist",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "id", Usage: "Playlist ID", Required: true},
				},
				Action: r.PlaylistDelete,
			},
		},
	}
}

// trackCommand handles track cataloguing operations
func trackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "track",
		Usage: "Manage catalogued tracks",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Catalogue a track on a volume",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "title", Usage: "Track title", Required: true},
					&cli.StringFlag{Name: "artist", Usage: "Track artist"},
					&cli.StringFlag{Name: "album", Usage: "Track album"},
					&cli.StringFlag{Name: "volume", Usage: "Storage volume"},
					&cli.IntFlag{Name: "duration", Usage: "Duration in seconds"},
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
				},
				Action: r.TrackAdd,
			},
			{
				Name:  "list",
				Usage: "List catalogued tracks",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "volume", Usage: "Filter by storage volume"},
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
				},
				Action: r.TrackList,
			},
		},
	}
}
