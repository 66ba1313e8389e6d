// package ordering implements the playlist membership engine: it assigns,
// shifts and renumbers play order values for the members of a playlist and
// enforces volume affinity between a playlist and the tracks it references.
//
// The Sequencer is the sole mutator of play order values in the membership
// store. Each operation runs in a single SQLite transaction, so the
// shift-then-insert and remove-then-renumber sequences are atomic and
// operations against one playlist are linearizable with respect to one
// another.
//
// Two reorder paths coexist on purpose and give different guarantees:
// Move is the high-level operation that keeps one occupant per position,
// while Renumber is a raw field update that performs no compensating shift
// and may leave several members sharing a play order. Reads always return a
// total order: play order ascending, ties broken by insertion sequence.
package ordering
