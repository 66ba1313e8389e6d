package models

import (
	"time"
)

// Model defines the base interface for all persistent models in the media index.
// Implementations include Playlist, Track and Membership.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// Storage volumes. Playlists may only reference tracks on their own volume
// because the backing playlist file lives on that device.
const (
	VolumeExternalPrimary = "external_primary"
	VolumeInternal        = "internal"
)

// playlistExtensions maps a playlist MIME type to the file extension used
// when deriving a display name.
var playlistExtensions = map[string]string{
	"audio/x-mpegurl":        ".m3u",
	"audio/x-scpls":          ".pls",
	"application/vnd.ms-wpl": ".wpl",
	"application/xspf+xml":   ".xspf",
}

// ExtensionForMimeType returns the playlist file extension for the given MIME
// type, or an empty string when the type is unknown.
func ExtensionForMimeType(mimeType string) string {
	return playlistExtensions[mimeType]
}

// KnownPlaylistMimeTypes returns the supported playlist MIME types.
func KnownPlaylistMimeTypes() []string {
	types := make([]string, 0, len(playlistExtensions))
	for mt := range playlistExtensions {
		types = append(types, mt)
	}
	return types
}
