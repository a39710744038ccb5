// Package collision checks a small set of registered sprite pairs for
// rectangle overlap once per frame.
package collision

import (
	"errors"
	"fmt"

	"github.com/solarlune/resolv"
)

// ErrDegenerate is returned when a collider has no area
var ErrDegenerate = errors.New("collision: degenerate rectangle")

// Collider is anything with a resolv rectangle
type Collider interface {
	Object() *resolv.Object
}

// Callback is invoked when a registered pair overlaps
type Callback func()

type pair struct {
	target Collider
	cb     Callback
}

// CellSize is the side of a space cell in pixels
const CellSize = 16

// Table maps a subject to the single target it is tested against. Every
// registered rectangle lives in a resolv space covering the screen; parts of
// a rectangle outside it never collide.
type Table struct {
	space *resolv.Space
	pairs map[Collider]pair
	refs  map[*resolv.Object]int
}

// NewTable creates an empty collision table for a width x height screen
func NewTable(width, height int) *Table {
	return &Table{
		space: resolv.NewSpace(width, height, CellSize, CellSize),
		pairs: make(map[Collider]pair),
		refs:  make(map[*resolv.Object]int),
	}
}

// Register tests subject against target every Check, calling cb on overlap.
// Registering the same subject again replaces its previous pair.
func (t *Table) Register(subject, target Collider, cb Callback) error {
	if cb == nil {
		return errors.New("collision: nil callback")
	}
	if err := validate(subject); err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	if err := validate(target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	t.Unregister(subject)
	t.retain(subject.Object())
	t.retain(target.Object())
	t.pairs[subject] = pair{target: target, cb: cb}
	return nil
}

// Unregister removes subject's pair
func (t *Table) Unregister(subject Collider) {
	p, ok := t.pairs[subject]
	if !ok {
		return
	}
	delete(t.pairs, subject)
	t.release(subject.Object())
	t.release(p.target.Object())
}

// Len returns the number of registered pairs
func (t *Table) Len() int {
	return len(t.pairs)
}

// Check fires the callback of every overlapping pair and returns how many
// fired. Pairs are visited in map order; callers must not rely on it.
func (t *Table) Check() int {
	fired := 0
	for subject, p := range t.pairs {
		s, o := subject.Object(), p.target.Object()
		s.Update()
		o.Update()
		if !nearby(s, o) || !Overlaps(subject, p.target) {
			continue
		}
		p.cb()
		fired++
	}
	return fired
}

// Overlaps reports whether the rectangles of a and b intersect. Rectangles
// that only share an edge do not overlap.
func Overlaps(a, b Collider) bool {
	ra, rb := rectangle(a.Object()), rectangle(b.Object())
	for _, axis := range append(ra.SATAxes(), rb.SATAxes()...) {
		if !ra.Project(axis).Overlapping(rb.Project(axis)) {
			return false
		}
	}
	return true
}

// nearby reports whether o occupies a space cell next to s
func nearby(s, o *resolv.Object) bool {
	c := s.Check(0, 0)
	if c == nil {
		return false
	}
	for _, found := range c.Objects {
		if found == o {
			return true
		}
	}
	return false
}

func rectangle(obj *resolv.Object) *resolv.ConvexPolygon {
	if cp, ok := obj.Shape.(*resolv.ConvexPolygon); ok {
		cp.SetPosition(obj.X, obj.Y)
		return cp
	}
	return resolv.NewRectangle(obj.X, obj.Y, obj.W, obj.H)
}

func (t *Table) retain(obj *resolv.Object) {
	if t.refs[obj] == 0 {
		if _, ok := obj.Shape.(*resolv.ConvexPolygon); !ok {
			obj.SetShape(resolv.NewRectangle(obj.X, obj.Y, obj.W, obj.H))
		}
		t.space.Add(obj)
	}
	t.refs[obj]++
}

func (t *Table) release(obj *resolv.Object) {
	t.refs[obj]--
	if t.refs[obj] > 0 {
		return
	}
	delete(t.refs, obj)
	t.space.Remove(obj)
}

func validate(c Collider) error {
	if c == nil || c.Object() == nil {
		return fmt.Errorf("%w: missing object", ErrDegenerate)
	}
	obj := c.Object()
	if obj.W <= 0 || obj.H <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrDegenerate, obj.W, obj.H)
	}
	return nil
}
