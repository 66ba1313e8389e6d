// package formatter renders a playlist's membership listing as CSV, Markdown
// or a plain text table. It never writes playlist file formats; these are
// catalogue exports only.
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"text/tabwriter"

	"trackdex/internal/catalog"
	"trackdex/internal/models"
)

// MembersToCSV converts a membership listing to CSV with columns: PlayOrder, TrackID, Title, Artist
func MembersToCSV(members []catalog.Member) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"PlayOrder", "TrackID", "Title", "Artist"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, member := range members {
		record := []string{
			strconv.Itoa(member.PlayOrder),
			member.TrackID,
			member.Title,
			member.Artist,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// MembersToMarkdown converts a membership listing to a Markdown table headed
// by the playlist's display name.
func MembersToMarkdown(playlist *models.Playlist, members []catalog.Member) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", playlist.DisplayName()))
	buf.WriteString(fmt.Sprintf("Volume: `%s`\n\n", playlist.Volume()))

	buf.WriteString("| # | Title | Artist |\n")
	buf.WriteString("|---|-------|--------|\n")
	for _, member := range members {
		buf.WriteString(fmt.Sprintf("| %d | %s | %s |\n", member.PlayOrder, member.Title, member.Artist))
	}

	return buf.Bytes()
}

// MembersToTable converts a membership listing to an aligned plain text table
// for terminal output.
func MembersToTable(members []catalog.Member) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ORDER\tTITLE\tARTIST\tTRACK")
	for _, member := range members {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", member.PlayOrder, member.Title, member.Artist, member.TrackID)
	}
	w.Flush()

	return buf.String()
}
