// submodule member contains command definitions for playlist membership operations
package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"trackdex/internal/formatter"
	"trackdex/internal/ordering"
)

// memberJSON is the serialized form of a membership row for --json output.
type memberJSON struct {
	TrackID   string `json:"track_id"`
	PlayOrder int    `json:"play_order"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
}

// MemberAdd appends a track to a playlist, or injects it at --at when given.
func (r *Runner) MemberAdd(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	playlistID := cmd.String("playlist")
	trackID := cmd.String("track")

	if cmd.IsSet("at") {
		member, err := cat.AddMemberAt(playlistID, trackID, int(cmd.Int("at")))
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
		return r.writePlainln("✓ Inserted track at position %d", member.PlayOrder())
	}

	member, err := cat.AddMember(playlistID, trackID)
	if err != nil {
		return fmt.Errorf("failed to append member: %w", err)
	}
	return r.writePlainln("✓ Appended track at position %d", member.PlayOrder())
}

// MemberMove relocates the member at --from to --to (0-based positions).
func (r *Runner) MemberMove(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	from := int(cmd.Int("from"))
	to := int(cmd.Int("to"))

	if err := cat.MoveMember(cmd.String("playlist"), from, to); err != nil {
		return fmt.Errorf("failed to move member: %w", err)
	}
	return r.writePlainln("✓ Moved member %d → %d", from, to)
}

// MemberSetOrder sets the raw play order of the member at --position without
// shifting others. Duplicate play orders are permitted afterwards.
func (r *Runner) MemberSetOrder(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	pred := ordering.PositionEquals(int(cmd.Int("position")))
	affected, err := cat.RepositionMembers(cmd.String("playlist"), pred, int(cmd.Int("to")))
	if err != nil {
		return fmt.Errorf("failed to set play order: %w", err)
	}
	return r.writePlainln("✓ Updated %d member(s)", affected)
}

// MemberRemove deletes the member at --position. Remaining members keep their
// play order values.
func (r *Runner) MemberRemove(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	pred := ordering.PositionEquals(int(cmd.Int("position")))
	removed, err := cat.RemoveMembers(cmd.String("playlist"), pred)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return r.writePlainln("✓ Removed %d member(s)", removed)
}

// MemberList prints the playlist's ordered membership view.
func (r *Runner) MemberList(ctx context.Context, cmd *cli.Command) error {
	cat, db, err := r.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	playlistID := cmd.String("playlist")
	members, err := cat.Members(playlistID)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	switch {
	case cmd.Bool("json"):
		out := make([]memberJSON, len(members))
		for i, m := range members {
			out[i] = memberJSON{TrackID: m.TrackID, PlayOrder: m.PlayOrder, Title: m.Title, Artist: m.Artist}
		}
		return r.writeJSON(out, true)

	case cmd.Bool("csv"):
		data, err := formatter.MembersToCSV(members)
		if err != nil {
			return fmt.Errorf("failed to format CSV: %w", err)
		}
		return r.writePlain("%s", data)

	case cmd.Bool("markdown"):
		playlist, err := cat.Playlist(playlistID)
		if err != nil {
			return err
		}
		return r.writePlain("%s", formatter.MembersToMarkdown(playlist, members))

	default:
		return r.writePlain("%s", formatter.MembersToTable(members))
	}
}

// memberCommand handles playlist membership operations
func memberCommand(r *Runner) *cli.Command {
	playlistFlag := &cli.StringFlag{Name: "playlist", Aliases: []string{"p"}, Usage: "Playlist ID", Required: true}

	return &cli.Command{
		Name:    "member",
		Aliases: []string{"m"},
		Usage:   "Manage playlist members and their order",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a track to a playlist (appends unless --at is given)",
				Flags: []cli.Flag{
					configFlag(),
					playlistFlag,
					&cli.StringFlag{Name: "track", Aliases: []string{"t"}, Usage: "Track ID", Required: true},
					&cli.IntFlag{Name: "at", Usage: "1-based position to insert at"},
				},
				Action: r.MemberAdd,
			},
			{
				Name:  "move",
				Usage: "Move a member between 0-based positions",
				Flags: []cli.Flag{
					configFlag(),
					playlistFlag,
					&cli.IntFlag{Name: "from", Usage: "Current 0-based position", Required: true},
					&cli.IntFlag{Name: "to", Usage: "Target 0-based position", Required: true},
				},
				Action: r.MemberMove,
			},
			{
				Name:  "set-order",
				Usage: "Set the raw play order of the member at a position (no shift)",
				Flags: []cli.Flag{
					configFlag(),
					playlistFlag,
					&cli.IntFlag{Name: "position", Usage: "1-based position to match", Required: true},
					&cli.IntFlag{Name: "to", Usage: "New play order value", Required: true},
				},
				Action: r.MemberSetOrder,
			},
			{
				Name:  "remove",
				Usage: "Remove the member at a position",
				Flags: []cli.Flag{
					configFlag(),
					playlistFlag,
					&cli.IntFlag{Name: "position", Usage: "1-based position to match", Required: true},
				},
				Action: r.MemberRemove,
			},
			{
				Name:  "list",
				Usage: "List a playlist's members in play order",
				Flags: []cli.Flag{
					configFlag(),
					playlistFlag,
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
					&cli.BoolFlag{Name: "csv", Usage: "Output CSV"},
					&cli.BoolFlag{Name: "markdown", Usage: "Output Markdown"},
				},
				Action: r.MemberList,
			},
		},
	}
}
