package collision

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 640
	testHeight = 480
)

type box struct {
	obj *resolv.Object
}

func (b *box) Object() *resolv.Object { return b.obj }

func newBox(x, y, w, h float64) *box {
	return &box{obj: resolv.NewObject(x, y, w, h)}
}

func TestTable_FiresOnOverlap(t *testing.T) {
	table := NewTable(testWidth, testHeight)
	subject := newBox(0, 0, 20, 20)
	target := newBox(10, 10, 20, 20)

	calls := 0
	require.NoError(t, table.Register(subject, target, func() { calls++ }))

	fired := table.Check()

	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, calls, "callback fires exactly once per frame")
}

func TestTable_NoFireWhenApart(t *testing.T) {
	table := NewTable(testWidth, testHeight)
	subject := newBox(0, 0, 20, 20)
	target := newBox(100, 100, 20, 20)

	calls := 0
	require.NoError(t, table.Register(subject, target, func() { calls++ }))

	assert.Equal(t, 0, table.Check())
	assert.Equal(t, 0, calls)
}

func TestTable_FiresEveryFrameWhileOverlapping(t *testing.T) {
	table := NewTable(testWidth, testHeight)
	subject := newBox(0, 0, 20, 20)
	target := newBox(5, 5, 5, 5)

	calls := 0
	require.NoError(t, table.Register(subject, target, func() { calls++ }))

	table.Check()
	table.Check()

	subject.obj.X = 200
	table.Check()

	assert.Equal(t, 2, calls)
}

func TestTable_RegisterReplacesSubject(t *testing.T) {
	table := NewTable(testWidth, testHeight)
	subject := newBox(0, 0, 20, 20)
	near := newBox(10, 10, 20, 20)
	far := newBox(500, 500, 20, 20)

	nearCalls, farCalls := 0, 0
	require.NoError(t, table.Register(subject, near, func() { nearCalls++ }))
	require.NoError(t, table.Register(subject, far, func() { farCalls++ }))

	assert.Equal(t, 1, table.Len())
	table.Check()

	assert.Equal(t, 0, nearCalls)
	assert.Equal(t, 0, farCalls)
}

func TestTable_MultiplePairsAllFire(t *testing.T) {
	table := NewTable(testWidth, testHeight)
	a, b := newBox(0, 0, 10, 10), newBox(5, 5, 10, 10)
	c, d := newBox(100, 0, 10, 10), newBox(104, 4, 10, 10)

	var fired []string
	require.NoError(t, table.Register(a, b, func() { fired = append(fired, "ab") }))
	require.NoError(t, table.Register(c, d, func() { fired = append(fired, "cd") }))

	assert.Equal(t, 2, table.Check())
	assert.ElementsMatch(t, []string{"ab", "cd"}, fired)
}

func TestTable_RejectsDegenerate(t *testing.T) {
	table := NewTable(testWidth, testHeight)
	ok := newBox(0, 0, 10, 10)

	err := table.Register(newBox(0, 0, 0, 10), ok, func() {})
	assert.ErrorIs(t, err, ErrDegenerate)

	err = table.Register(ok, newBox(0, 0, 10, -1), func() {})
	assert.ErrorIs(t, err, ErrDegenerate)

	err = table.Register(ok, &box{}, func() {})
	assert.ErrorIs(t, err, ErrDegenerate)

	assert.Error(t, table.Register(ok, newBox(1, 1, 1, 1), nil))
	assert.Equal(t, 0, table.Len())
}

func TestTable_Unregister(t *testing.T) {
	table := NewTable(testWidth, testHeight)
	subject := newBox(0, 0, 10, 10)
	target := newBox(0, 0, 10, 10)

	calls := 0
	require.NoError(t, table.Register(subject, target, func() { calls++ }))
	table.Unregister(subject)

	assert.Equal(t, 0, table.Check())
	assert.Equal(t, 0, calls)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *box
		expected bool
	}{
		{"contained", newBox(0, 0, 50, 50), newBox(10, 10, 5, 5), true},
		{"partial", newBox(0, 0, 20, 20), newBox(15, 15, 20, 20), true},
		{"shared edge", newBox(0, 0, 20, 20), newBox(20, 0, 20, 20), false},
		{"apart vertically", newBox(0, 0, 20, 20), newBox(0, 30, 20, 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.expected, Overlaps(tt.b, tt.a))
		})
	}
}

func TestTable_TouchingEdgesNeverFire(t *testing.T) {
	table := NewTable(testWidth, testHeight)
	left := newBox(0, 0, 20, 20)
	right := newBox(20, 0, 20, 20)
	below := newBox(0, 20, 20, 20)

	calls := 0
	require.NoError(t, table.Register(left, right, func() { calls++ }))
	require.NoError(t, table.Register(below, left, func() { calls++ }))

	assert.Equal(t, 0, table.Check())
	assert.Equal(t, 0, calls)

	right.obj.X = 19.5
	assert.Equal(t, 1, table.Check())
}

func TestTable_SpaceMembership(t *testing.T) {
	table := NewTable(testWidth, testHeight)
	a, b, c := newBox(0, 0, 10, 10), newBox(5, 5, 10, 10), newBox(8, 8, 10, 10)

	require.NoError(t, table.Register(a, b, func() {}))
	require.NoError(t, table.Register(c, b, func() {}))
	assert.NotNil(t, a.obj.Space)
	assert.NotNil(t, b.obj.Space)

	table.Unregister(a)
	assert.Nil(t, a.obj.Space)
	assert.NotNil(t, b.obj.Space, "still the target of another pair")

	table.Unregister(c)
	assert.Nil(t, b.obj.Space)
	assert.Nil(t, c.obj.Space)
}

func TestTable_OutsideScreenNeverFires(t *testing.T) {
	table := NewTable(testWidth, testHeight)
	subject := newBox(1000, 1000, 20, 20)
	target := newBox(1005, 1005, 20, 20)

	require.NoError(t, table.Register(subject, target, func() {}))

	assert.True(t, Overlaps(subject, target))
	assert.Equal(t, 0, table.Check())
}
