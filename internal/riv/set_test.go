package riv

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/ssa"
)

// =============================================================================
// ValueSet Tests
// =============================================================================

// fakeValues returns n distinct values. Identity is what matters, so bare
// Parameters are sufficient.
func fakeValues(n int) []ssa.Value {
	vs := make([]ssa.Value, n)
	for i := range vs {
		vs[i] = &ssa.Parameter{}
	}
	return vs
}

func TestValueSet_AddAndContains(t *testing.T) {
	vs := fakeValues(2)
	set := NewValueSet()

	require.True(t, set.Add(vs[0]))
	require.False(t, set.Add(vs[0]), "second Add of the same value is a no-op")
	require.True(t, set.Add(vs[1]))

	require.True(t, set.Contains(vs[0]))
	require.True(t, set.Contains(vs[1]))
	require.Equal(t, 2, set.Len())
}

func TestValueSet_IdentityNotStructure(t *testing.T) {
	// Two structurally identical values are distinct members.
	a := &ssa.Parameter{}
	b := &ssa.Parameter{}
	set := NewValueSet()

	require.True(t, set.Add(a))
	require.True(t, set.Add(b))
	require.Equal(t, 2, set.Len())
}

func TestValueSet_InsertionOrder(t *testing.T) {
	vs := fakeValues(3)
	set := NewValueSet()
	set.Add(vs[2])
	set.Add(vs[0])
	set.Add(vs[1])
	set.Add(vs[0]) // duplicate keeps the original position

	got := set.Values()
	require.Equal(t, 3, len(got))
	require.True(t, got[0] == vs[2] && got[1] == vs[0] && got[2] == vs[1])
}

func TestValueSet_AddAll(t *testing.T) {
	vs := fakeValues(3)

	a := NewValueSet()
	a.Add(vs[0])
	a.Add(vs[1])

	b := NewValueSet()
	b.Add(vs[1])
	b.Add(vs[2])

	a.AddAll(b)
	require.Equal(t, 3, a.Len())
	got := a.Values()
	require.True(t, got[0] == vs[0] && got[1] == vs[1] && got[2] == vs[2])

	a.AddAll(nil) // nil other is a no-op
	require.Equal(t, 3, a.Len())
}

func TestValueSet_CopyIsIndependent(t *testing.T) {
	vs := fakeValues(2)
	set := NewValueSet()
	set.Add(vs[0])

	snap := set.Copy()
	set.Add(vs[1])

	require.Equal(t, 1, snap.Len(), "snapshot must not see later additions")
	require.False(t, snap.Contains(vs[1]))
	require.Equal(t, 2, set.Len())

	snap.Add(vs[1])
	require.Equal(t, 2, snap.Len())
}
