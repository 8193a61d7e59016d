package namespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "src", true},
		{"underscore prefix", "_default_0", true},
		{"digits after first", "w0rker1", true},
		{"empty", "", false},
		{"leading digit", "0src", false},
		{"dash", "my-module", false},
		{"space", "my module", false},
		{"dot", "a.b", false},
		{"unicode", "módulo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidName(tt.input))
		})
	}
}

func TestInsertLookup(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Insert(KindModule, "src", "module-obj"))
	assert.Equal(t, "module-obj", r.Lookup(KindModule, "src"))
	assert.Nil(t, r.Lookup(KindPort, "src"), "lookup is typed")
	assert.True(t, r.Exists("src"))
	assert.False(t, r.Exists("snk"))
}

func TestSharedNamespaceAcrossKinds(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Insert(KindTC, "bulk", 1))
	err := r.Insert(KindModule, "bulk", 2)
	assert.ErrorIs(t, err, ErrExists, "kinds share one namespace")
}

func TestInsertInvalidName(t *testing.T) {
	r := NewRegistry()

	assert.ErrorIs(t, r.Insert(KindModule, "", 1), ErrInvalidName)
	assert.ErrorIs(t, r.Insert(KindModule, "no-dash", 1), ErrInvalidName)
}

func TestRemove(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Insert(KindPort, "p0", 1))
	require.NoError(t, r.Remove(KindPort, "p0"))
	assert.False(t, r.Exists("p0"))
	assert.Zero(t, r.Count(KindPort))

	assert.ErrorIs(t, r.Remove(KindPort, "p0"), ErrNotFound)

	// Kind mismatch does not remove.
	require.NoError(t, r.Insert(KindTC, "c0", 1))
	assert.ErrorIs(t, r.Remove(KindModule, "c0"), ErrNotFound)
	assert.True(t, r.Exists("c0"))
}

func TestListPaging(t *testing.T) {
	r := NewRegistry()
	names := []string{"m0", "m1", "m2", "m3", "m4"}
	for _, n := range names {
		require.NoError(t, r.Insert(KindModule, n, n))
	}

	assert.Len(t, r.List(KindModule, 0, 2), 2)
	assert.Len(t, r.List(KindModule, 4, 2), 1)
	assert.Empty(t, r.List(KindModule, 5, 2))
	assert.Empty(t, r.List(KindModule, 0, 0))

	// Registration order is preserved.
	got := r.List(KindModule, 0, len(names))
	for i, obj := range got {
		assert.Equal(t, names[i], obj)
	}
}

func TestIteratorBlocksMutation(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Insert(KindTC, "a", 1))
	require.NoError(t, r.Insert(KindTC, "b", 2))

	it := r.NewIter(KindTC)
	assert.ErrorIs(t, r.Insert(KindTC, "c", 3), ErrIterating)
	assert.ErrorIs(t, r.Remove(KindTC, "a"), ErrIterating)

	var seen []interface{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		seen = append(seen, obj)
	}
	assert.Equal(t, []interface{}{1, 2}, seen)

	it.Release()
	it.Release() // double release is a no-op

	require.NoError(t, r.Insert(KindTC, "c", 3))
}

func TestIterEmptyKind(t *testing.T) {
	r := NewRegistry()
	it := r.NewIter(KindPort)
	defer it.Release()
	assert.Nil(t, it.Next())
}
