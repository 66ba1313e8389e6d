// package models defines the data model for the media index: playlists,
// tracks, and the membership records binding tracks to playlists at a
// 1-based play order.
package models
