package BTree

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	Go_Collections "github.com/g-m-twostay/go-collections"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

var reversed = Go_Collections.Reverse[int](Go_Collections.Compare[int])

func mustNew(t *testing.T, degree int, cmp Go_Collections.Comparator[int]) *BTree[int] {
	t.Helper()
	tree, err := New(degree, cmp)
	require.NoError(t, err)
	return tree
}

// withTree builds the degree 2 tree of 0 to 15, adding the odd values first.
func withTree(t *testing.T) *BTree[int] {
	t.Helper()
	tree := mustNew(t, 2, Go_Collections.Compare[int])
	for i := 1; i <= 15; i += 2 {
		require.True(t, tree.Add(i))
	}
	for i := 0; i <= 15; i += 2 {
		require.True(t, tree.Add(i))
	}
	require.False(t, tree.Corrupt())
	return tree
}

const full = "<(8)[(2,5)[(0,1)][(3,4)][(6,7)]][(11,14)[(9,10)][(12,13)][(15)]]>"

func TestNew(t *testing.T) {
	for _, d := range []int{-1, 0, 1} {
		_, err := New[int](d, Go_Collections.Compare[int])
		assert.ErrorIs(t, err, Go_Collections.ErrInvalidArgument)
		_, err = NewOrdered[int](d)
		assert.ErrorIs(t, err, Go_Collections.ErrInvalidArgument)
	}
	tree, err := NewOrdered[int](3)
	require.NoError(t, err)
	assert.True(t, tree.Empty())
	assert.Equal(t, "<()>", tree.String())
	assert.Equal(t, 3, tree.MinDegree())
	assert.Zero(t, tree.Height())
	assert.Nil(t, tree.Levels())
	assert.False(t, tree.Corrupt())
}

func TestBTree_MinMax(t *testing.T) {
	tree := mustNew(t, 2, Go_Collections.Compare[int])
	_, err := tree.Max()
	assert.ErrorIs(t, err, Go_Collections.ErrEmptyCollection)
	_, err = tree.Min()
	assert.ErrorIs(t, err, Go_Collections.ErrEmptyCollection)
	tree.Add(4)
	m, _ := tree.Max()
	assert.Equal(t, 4, m)
	m, _ = tree.Min()
	assert.Equal(t, 4, m)

	for _, c := range []struct {
		cmp      Go_Collections.Comparator[int]
		min, max int
	}{{Go_Collections.Compare[int], 0, 9}, {reversed, 9, 0}} {
		tree = mustNew(t, 2, c.cmp)
		for _, v := range []int{6, 1, 0, 3, 4, 8, 9, 7} {
			tree.Add(v)
		}
		m, err = tree.Min()
		require.NoError(t, err)
		assert.Equal(t, c.min, m)
		m, err = tree.Max()
		require.NoError(t, err)
		assert.Equal(t, c.max, m)
	}
	m, _ = withTree(t).Min()
	assert.Equal(t, 0, m)
}

func TestBTree_Add(t *testing.T) {
	tree := mustNew(t, 2, Go_Collections.Compare[int])
	assert.True(t, tree.Add(4))
	for range 9 {
		assert.False(t, tree.Add(4))
	}
	assert.Equal(t, "<(4)>", tree.String())
	assert.EqualValues(t, 1, tree.Size())

	tree = mustNew(t, 2, reversed)
	for i := range 3 {
		tree.Add(i)
	}
	assert.Equal(t, "<(2,1,0)>", tree.String())

	tree = withTree(t)
	assert.Equal(t, full, tree.String())
	assert.EqualValues(t, 16, tree.Size())
	assert.Equal(t, 3, tree.Height())
	assert.Equal(t, [][]int{{8}, {2, 5, 11, 14}, {0, 1, 3, 4, 6, 7, 9, 10, 12, 13, 15}}, tree.Levels())
}

func TestBTree_Clear(t *testing.T) {
	tree := mustNew(t, 14, Go_Collections.Compare[int])
	tree.Add(1)
	tree.Clear()
	assert.Zero(t, tree.Size())

	tree = withTree(t)
	it := tree.Begin()
	tree.Clear()
	assert.True(t, tree.Empty())
	assert.Equal(t, "<()>", tree.String())
	assert.False(t, it.Valid())
	assert.False(t, tree.Corrupt())
}

func TestBTree_Erase(t *testing.T) {
	tree := mustNew(t, 2, Go_Collections.Compare[int])
	assert.False(t, tree.Erase(11))
	tree.Add(11)
	assert.True(t, tree.Erase(11))
	assert.Zero(t, tree.Size())
	assert.Equal(t, "<()>", tree.String())

	for _, c := range []struct {
		name  string
		erase []int
		want  string
	}{
		{"root", []int{8, 7}, "<(6)[(2,4)[(0,1)][(3)][(5)]][(11,14)[(9,10)][(12,13)][(15)]]>"},
		{"internal", []int{5, 4, 6, 2}, "<(8)[(3)[(0,1)][(7)]][(11,14)[(9,10)][(12,13)][(15)]]>"},
		{"leaf", []int{3, 4, 5}, "<(8)[(1,6)[(0)][(2)][(7)]][(11,14)[(9,10)][(12,13)][(15)]]>"},
		{"merge", []int{3, 4, 5, 6, 0, 1}, "<(11)[(8)[(2,7)][(9,10)]][(14)[(12,13)][(15)]]>"},
	} {
		t.Run(c.name, func(t *testing.T) {
			tree := withTree(t)
			for _, v := range c.erase {
				require.True(t, tree.Erase(v))
				require.False(t, tree.Corrupt())
			}
			assert.Equal(t, c.want, tree.String())
			assert.EqualValues(t, 16-len(c.erase), tree.Size())
		})
	}

	tree = withTree(t)
	assert.False(t, tree.Erase(-999))
	assert.Equal(t, full, tree.String())
}

func TestBTree_Collapse(t *testing.T) {
	tree := withTree(t)
	for i := range 16 {
		require.True(t, tree.Erase(i))
		require.False(t, tree.Corrupt(), "after erasing %d", i)
	}
	assert.True(t, tree.Empty())
	assert.Equal(t, "<()>", tree.String())
	assert.Zero(t, tree.Height())
}

func TestBTree_Find(t *testing.T) {
	tree := mustNew(t, 99, Go_Collections.Compare[int])
	_, ok := tree.Find(0)
	assert.False(t, ok)
	tree = mustNew(t, 4, Go_Collections.Compare[int])
	tree.Add(0)
	it, ok := tree.Find(0)
	require.True(t, ok)
	v, _ := it.Value()
	assert.Equal(t, 0, v)

	tree = withTree(t)
	for _, x := range []int{8, 14, 3} {
		it, ok = tree.Find(x)
		require.True(t, ok)
		v, err := it.Value()
		require.NoError(t, err)
		assert.Equal(t, x, v)
	}
	tree.Erase(5)
	_, ok = tree.Find(5)
	assert.False(t, ok)
	assert.False(t, tree.Contains(5))
	assert.True(t, tree.Contains(4))
}

func TestBTree_Iterate(t *testing.T) {
	tree := mustNew(t, 2, Go_Collections.Compare[int])
	assert.Empty(t, Go_Collections.ToSlice[int](tree))
	tree.Add(4)
	assert.Equal(t, []int{4}, Go_Collections.ToSlice[int](tree))

	tree = withTree(t)
	want := make([]int, 16)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, tree.Values())
	var got []int
	for it := tree.Begin(); it.Valid(); require.NoError(t, it.Forward()) {
		v, _ := it.Value()
		got = append(got, v)
	}
	assert.Equal(t, want, got)
	got = got[:0]
	for it := tree.End(); it.Valid(); require.NoError(t, it.Back()) {
		v, _ := it.Value()
		got = append(got, 15-v)
	}
	assert.Equal(t, want, got)
	got = got[:0]
	for v := range tree.Backward() {
		got = append(got, 15-v)
	}
	assert.Equal(t, want, got)
	got = got[:0]
	for v := range tree.All() {
		if v == 5 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, want[:5], got)
}

func TestBTree_Iterator(t *testing.T) {
	tree := withTree(t)
	it := tree.End()
	require.NoError(t, it.Forward())
	assert.False(t, it.Valid())
	assert.ErrorIs(t, it.Forward(), Go_Collections.ErrInvalidIterator)
	_, err := it.Value()
	assert.ErrorIs(t, err, Go_Collections.ErrInvalidIterator)

	it = tree.Begin()
	require.NoError(t, it.Back())
	assert.ErrorIs(t, it.Back(), Go_Collections.ErrInvalidIterator)
	assert.ErrorIs(t, tree.EraseAt(it), Go_Collections.ErrInvalidIterator)

	other := withTree(t)
	assert.ErrorIs(t, tree.EraseAt(other.Begin()), Go_Collections.ErrInvalidIterator)
	assert.ErrorIs(t, tree.EraseAt(nil), Go_Collections.ErrInvalidIterator)
	assert.Equal(t, full, tree.String())

	// any modification invalidates outstanding iterators.
	it, _ = tree.Find(3)
	tree.Add(100)
	assert.False(t, it.Valid())
	it, _ = tree.Find(3)
	assert.False(t, tree.Add(3))
	assert.True(t, it.Valid())
	tree.Erase(100)
	assert.False(t, it.Valid())

	it, _ = tree.Find(8)
	require.NoError(t, tree.EraseAt(it))
	assert.False(t, it.Valid())
	assert.False(t, tree.Contains(8))
	assert.ErrorIs(t, tree.EraseAt(it), Go_Collections.ErrInvalidIterator)
	assert.False(t, tree.Corrupt())
}

// TestBTree_Random cross checks random adds and erases against google/btree
// for several degrees.
func TestBTree_Random(t *testing.T) {
	for _, d := range []int{2, 3, 5, 16} {
		tree := mustNew(t, d, Go_Collections.Compare[int])
		oracle := btree.NewOrderedG[int](d)
		for range tAddN {
			v := rg.Intn(tAddValRange)
			_, found := oracle.ReplaceOrInsert(v)
			require.Equal(t, !found, tree.Add(v))
		}
		require.EqualValues(t, oracle.Len(), tree.Size())
		require.False(t, tree.Corrupt(), "degree %d", d)
		for range tAddN {
			v := rg.Intn(tAddValRange)
			_, found := oracle.Delete(v)
			require.Equal(t, found, tree.Contains(v))
			if rg.Intn(2) == 0 {
				require.Equal(t, found, tree.Erase(v))
			} else if it, ok := tree.Find(v); ok {
				require.NoError(t, tree.EraseAt(it))
			}
		}
		require.False(t, tree.Corrupt(), "degree %d", d)
		var want []int
		oracle.Ascend(func(v int) bool {
			want = append(want, v)
			return true
		})
		require.Equal(t, want, tree.Values())
		if m, ok := oracle.Min(); ok {
			got, err := tree.Min()
			require.NoError(t, err)
			assert.Equal(t, m, got)
		}
	}
}

func TestBTree_Corrupt(t *testing.T) {
	tree := withTree(t)
	tree.root.children[0].values[0] = 9
	assert.True(t, tree.Corrupt())

	tree = withTree(t)
	tree.root.children[1].children[2].parent = tree.root
	assert.True(t, tree.Corrupt())

	tree = withTree(t)
	tree.root.children[1].children[2].values.pop()
	tree.sz--
	assert.True(t, tree.Corrupt())

	tree = withTree(t)
	tree.sz++
	assert.True(t, tree.Corrupt())
}

func TestBTree_Pretty(t *testing.T) {
	tree := withTree(t)
	p := tree.Pretty()
	assert.Contains(t, p, "(8)\n")
	assert.Contains(t, p, "(2,5)")
	assert.Contains(t, p, "(15)")
	assert.NotEmpty(t, mustNew(t, 2, Go_Collections.Compare[int]).Pretty())
}

func TestBTree_Logging(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tree, err := NewOrdered[int](2, Go_Collections.WithLogger(l))
	require.NoError(t, err)
	for i := range 4 {
		tree.Add(i)
	}
	assert.Contains(t, buf.String(), "btree root split")
	for i := range 4 {
		tree.Erase(i)
	}
	assert.Contains(t, buf.String(), "btree nodes merged")
	assert.Contains(t, buf.String(), "btree root collapsed")
	buf.Reset()
	assert.Error(t, tree.EraseAt(tree.Begin()))
	assert.Contains(t, buf.String(), "rejected iterator")
}
