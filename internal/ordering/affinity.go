package ordering

// SameVolume reports whether a track stored on trackVolume may become a
// member of a playlist stored on playlistVolume. Playlist files live on a
// single storage device and can only reference media on that same device,
// so membership requires matching volumes.
//
// The check runs only when a membership is created; moving, renumbering and
// deleting existing members never re-validate affinity.
func SameVolume(playlistVolume, trackVolume string) bool {
	return playlistVolume == trackVolume
}
