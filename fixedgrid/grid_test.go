// Package fixedgrid_test contains unit tests for the Grid container.
package fixedgrid_test

import (
	"hash/maphash"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/fixedgrid"
)

type cell struct{ r, c int }

// TestNewInvalidExtents ensures New rejects a zero row count and negative columns.
func TestNewInvalidExtents(t *testing.T) {
	_, err := fixedgrid.New(0, 3, func(int, int) int { return 0 })
	require.ErrorIs(t, err, fixedgrid.ErrZeroRows)

	_, err = fixedgrid.New(2, -1, func(int, int) int { return 0 })
	require.ErrorIs(t, err, fixedgrid.ErrNegativeCols)

	_, err = fixedgrid.NewUninit[int](-4, 1)
	require.ErrorIs(t, err, fixedgrid.ErrZeroRows)
}

// TestExtentsOverflow ensures h*v overflow is rejected instead of wrapping
// to a small allocation behind huge extents.
func TestExtentsOverflow(t *testing.T) {
	_, err := fixedgrid.FromRaw[int](math.MaxInt/2+1, 2, nil)
	require.ErrorIs(t, err, fixedgrid.ErrTooLarge)

	_, err = fixedgrid.NewZero[byte](4, math.MaxInt/2)
	require.ErrorIs(t, err, fixedgrid.ErrTooLarge)

	_, err = fixedgrid.NewUninit[int](math.MaxInt, math.MaxInt)
	require.ErrorIs(t, err, fixedgrid.ErrTooLarge)

	// Zero columns never overflow.
	g, err := fixedgrid.NewZero[int](math.MaxInt, 0)
	require.NoError(t, err)
	require.Equal(t, 0, g.Size())
}

// TestStorageIdentity checks ref_2d and the flattened layout against the generator.
func TestStorageIdentity(t *testing.T) {
	const h, v = 5, 3
	calls := 0
	g, err := fixedgrid.New(h, v, func(r, c int) cell {
		calls++
		return cell{r, c}
	})
	require.NoError(t, err)
	require.Equal(t, h*v, calls, "generator must run once per slot")
	require.Equal(t, h, g.HSize())
	require.Equal(t, v, g.VSize())
	require.Equal(t, h*v, g.Size())

	rows := g.Rows()
	flat := g.Flat()
	for i := 0; i < h; i++ {
		for j := 0; j < v; j++ {
			require.Equal(t, cell{i, j}, rows[i][j])
			require.Equal(t, cell{i, j}, flat[j+i*v])
			got, ok := g.At(i, j)
			require.True(t, ok)
			require.Equal(t, cell{i, j}, got)
		}
	}
}

// TestRowViewsDoNotOverlap verifies appending to a row never clobbers the next one.
func TestRowViewsDoNotOverlap(t *testing.T) {
	g, err := fixedgrid.New(3, 2, func(r, c int) int { return r*10 + c })
	require.NoError(t, err)

	row0 := g.Row(0)
	require.Equal(t, 2, cap(row0))
	_ = append(row0, 99)

	v, ok := g.At(1, 0)
	require.True(t, ok)
	require.Equal(t, 10, v)
	require.Nil(t, g.Row(3))
	require.Nil(t, g.Row(-1))
}

// TestAtSetOutOfRange ensures checked accessors never panic on bad input.
func TestAtSetOutOfRange(t *testing.T) {
	g, err := fixedgrid.NewZero[float64](2, 2)
	require.NoError(t, err)

	_, ok := g.At(-1, 0)
	require.False(t, ok)
	_, ok = g.At(0, 2)
	require.False(t, ok)
	require.Nil(t, g.Ptr(2, 0))

	require.ErrorIs(t, g.Set(2, 0, 1.5), fixedgrid.ErrOutOfRange)
	require.NoError(t, g.Set(1, 1, 7.89))
	require.Equal(t, 7.89, *g.Ptr(1, 1))
	require.Equal(t, 7.89, g.AtUnchecked(1, 1))

	*g.PtrUnchecked(0, 1) = 2.5
	require.Equal(t, 2.5, g.Row(0)[1])
}

// TestFromRaw covers the length check and adoption of the buffer.
func TestFromRaw(t *testing.T) {
	_, err := fixedgrid.FromRaw(2, 3, []int{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, fixedgrid.ErrShapeMismatch)

	g, err := fixedgrid.FromRaw(2, 3, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, g.Row(1))

	raw := g.IntoRaw()
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, raw)
	require.Equal(t, 0, g.Size())
	_, ok := g.At(0, 0)
	require.False(t, ok, "grid must be empty after IntoRaw")
}

// TestEmptyRows checks that v == 0 yields h empty rows.
func TestEmptyRows(t *testing.T) {
	g, err := fixedgrid.New(4, 0, func(int, int) string { return "x" })
	require.NoError(t, err)
	require.Equal(t, 0, g.Size())
	rows := g.Rows()
	require.Len(t, rows, 4)
	for _, r := range rows {
		require.Empty(t, r)
	}
	require.Equal(t, "[]\n[]\n[]\n[]\n", g.String())
}

// TestZeroSizePayload builds, walks and discards grids of struct{}.
func TestZeroSizePayload(t *testing.T) {
	for _, ext := range [][2]int{{1, 0}, {1, 1}, {7, 13}, {1000, 1000}} {
		g, err := fixedgrid.New(ext[0], ext[1], func(int, int) struct{} { return struct{}{} })
		require.NoError(t, err)
		require.Equal(t, ext[0]*ext[1], g.Size())
		n := 0
		for _, row := range g.Rows() {
			n += len(row)
		}
		require.Equal(t, g.Size(), n)
		c := g.Clone()
		require.True(t, fixedgrid.Equal(g, c))
	}
}

// TestCloneIndependence ensures Clone does not share storage in either direction.
func TestCloneIndependence(t *testing.T) {
	g, err := fixedgrid.New(3, 3, func(r, c int) int { return r + c })
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.Set(0, 0, 100))
	v, _ := g.At(0, 0)
	require.Equal(t, 0, v, "source must not see writes to the clone")

	require.NoError(t, g.Set(2, 2, -1))
	v, _ = c.At(2, 2)
	require.Equal(t, 4, v, "clone must not see writes to the source")

	deep := fixedgrid.Must(fixedgrid.New(1, 2, func(_, c int) []int { return []int{c} }))
	dup := deep.CloneFunc(func(s []int) []int { return append([]int(nil), s...) })
	dup.Row(0)[1][0] = 42
	require.Equal(t, 1, deep.Row(0)[1][0])
}

// TestEqualCompareHash checks structural equality, ordering and hashing.
func TestEqualCompareHash(t *testing.T) {
	a := fixedgrid.Must(fixedgrid.FromRaw(2, 2, []int{1, 2, 3, 4}))
	b := fixedgrid.Must(fixedgrid.FromRaw(2, 2, []int{1, 2, 3, 4}))
	c := fixedgrid.Must(fixedgrid.FromRaw(2, 2, []int{1, 2, 3, 5}))
	d := fixedgrid.Must(fixedgrid.FromRaw(1, 4, []int{1, 2, 3, 4}))

	require.True(t, fixedgrid.Equal(a, b))
	require.False(t, fixedgrid.Equal(a, c))
	require.False(t, fixedgrid.Equal(a, d), "same contents, different row count")
	require.True(t, fixedgrid.Equal[int](nil, nil))
	require.False(t, fixedgrid.Equal(a, nil))

	require.Equal(t, 0, fixedgrid.Compare(a, b))
	require.Equal(t, -1, fixedgrid.Compare(a, c))
	require.Equal(t, 1, fixedgrid.Compare(a, d))

	seed := maphash.MakeSeed()
	require.Equal(t, fixedgrid.Hash(a, seed), fixedgrid.Hash(b, seed))
	require.NotEqual(t, fixedgrid.Hash(a, seed), fixedgrid.Hash(c, seed))
}

// TestUninitCommit exercises the initialize-then-commit path.
func TestUninitCommit(t *testing.T) {
	u, err := fixedgrid.NewUninit[int](2, 2)
	require.NoError(t, err)

	require.NoError(t, u.Set(0, 0, 1))
	require.NoError(t, u.Set(0, 1, 2))
	require.NoError(t, u.Set(1, 0, 3))
	require.ErrorIs(t, u.Set(2, 0, 9), fixedgrid.ErrOutOfRange)

	_, err = u.Commit()
	require.ErrorIs(t, err, fixedgrid.ErrUninitialized)
	require.Equal(t, 3, u.Written())

	require.NoError(t, u.Set(1, 1, 4))
	g, err := u.Commit()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, g.Flat())

	_, err = u.Commit()
	require.ErrorIs(t, err, fixedgrid.ErrCommitted)
	require.ErrorIs(t, u.Set(0, 0, 0), fixedgrid.ErrCommitted)
}
