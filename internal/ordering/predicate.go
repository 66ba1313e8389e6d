package ordering

import "fmt"

// Predicate selects playlist members by position for the bulk renumber and
// delete paths. Positions are matched against the member's 1-based rank in
// the ordered view, not the raw stored play order: after a delete leaves a
// gap, the next member is still reachable at the rank it now occupies.
//
// The language is deliberately narrow: equality over the position field and
// conjunction. It mirrors the selection clauses observed from client update
// and delete requests without growing into a query interpreter.
type Predicate interface {
	// Matches reports whether a member at the given 1-based position is selected.
	Matches(position int) bool
	// String renders the predicate for logs and error messages.
	String() string
}

type positionEquals struct {
	value int
}

// PositionEquals selects the member at the given 1-based position.
func PositionEquals(value int) Predicate {
	return positionEquals{value: value}
}

func (p positionEquals) Matches(position int) bool { return position == p.value }
func (p positionEquals) String() string            { return fmt.Sprintf("position = %d", p.value) }

type positionIn struct {
	values []int
}

// PositionIn selects members at any of the given 1-based positions.
func PositionIn(values ...int) Predicate {
	return positionIn{values: values}
}

func (p positionIn) Matches(position int) bool {
	for _, v := range p.values {
		if position == v {
			return true
		}
	}
	return false
}

func (p positionIn) String() string {
	return fmt.Sprintf("position IN %v", p.values)
}

type conjunction struct {
	left  Predicate
	right Predicate
}

// And selects members matched by both predicates.
func And(left, right Predicate) Predicate {
	return conjunction{left: left, right: right}
}

func (c conjunction) Matches(position int) bool {
	return c.left.Matches(position) && c.right.Matches(position)
}

func (c conjunction) String() string {
	return fmt.Sprintf("(%s AND %s)", c.left, c.right)
}
