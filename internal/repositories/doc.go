// package repositories provides persistence layer implementations for all model types.
//
// PlaylistRepository and TrackRepository implement models.Repository[T] with
// CRUD operations, soft deletes, and sequence generation. MembershipRepository
// is the membership store: it exposes transaction-scoped primitives over
// (playlist, track, play_order) records and leaves all play order arithmetic
// to the ordering package, which is the sole mutator of position values.
package repositories
