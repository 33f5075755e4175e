// SPDX-License-Identifier: MIT
// Package dlist_test verifies List ordering and O(1) handle removal,
// including stale and foreign handle rejection.

package dlist_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wugraph/dlist"
)

const (
	NRandomOps = 3000
	RandomSeed = 7
)

type ListSuite struct {
	suite.Suite
	l *dlist.List[int]
}

func (s *ListSuite) SetupTest() {
	s.l = dlist.New[int]()
}

func (s *ListSuite) TestPushOrder() {
	require := s.Require()
	s.l.PushBack(2)
	s.l.PushBack(3)
	s.l.PushFront(1)

	require.Equal([]int{1, 2, 3}, s.l.Values())
	require.Equal(3, s.l.Len())
	require.Equal(1, s.l.Front().Value)
	require.Equal(3, s.l.Back().Value)
	require.Nil(s.l.Front().Prev())
	require.Nil(s.l.Back().Next())
}

func (s *ListSuite) TestRemoveByHandle() {
	require := s.Require()
	a := s.l.PushBack(1)
	b := s.l.PushBack(2)
	c := s.l.PushBack(3)

	require.True(s.l.Remove(b))
	require.Equal([]int{1, 3}, s.l.Values())
	require.Nil(b.List(), "removed handle must be detached")

	require.True(s.l.Remove(a))
	require.True(s.l.Remove(c))
	require.Zero(s.l.Len())
	require.Nil(s.l.Front())
	require.Nil(s.l.Back())
}

func (s *ListSuite) TestStaleHandleRejected() {
	require := s.Require()
	n := s.l.PushBack(1)
	s.l.PushBack(2)

	require.True(s.l.Remove(n))
	require.False(s.l.Remove(n), "second removal of the same handle")
	require.False(s.l.Remove(nil))
	require.Equal([]int{2}, s.l.Values())
}

func (s *ListSuite) TestForeignHandleRejected() {
	require := s.Require()
	other := dlist.New[int]()
	foreign := other.PushBack(9)
	s.l.PushBack(1)

	require.False(s.l.Remove(foreign))
	require.Equal(1, s.l.Len())
	require.Equal(1, other.Len())
	require.Same(other, foreign.List())
}

func (s *ListSuite) TestHandlesSurviveUnrelatedMutation() {
	require := s.Require()
	keep := s.l.PushBack(100)
	for i := 0; i < 50; i++ {
		n := s.l.PushFront(i)
		if i%3 == 0 {
			s.l.Remove(n)
		}
		s.l.PushBack(-i)
	}
	before := s.l.Len()
	require.True(s.l.Remove(keep))
	require.Equal(before-1, s.l.Len())
	require.NotContains(s.l.Values(), 100)
}

func (s *ListSuite) TestAllAllowsRemovingYieldedNode() {
	require := s.Require()
	nodes := map[int]*dlist.Node[int]{}
	for i := 1; i <= 5; i++ {
		nodes[i] = s.l.PushBack(i)
	}

	var seen []int
	for v := range s.l.All() {
		seen = append(seen, v)
		if v%2 == 0 {
			s.l.Remove(nodes[v])
		}
	}
	require.Equal([]int{1, 2, 3, 4, 5}, seen)
	require.Equal([]int{1, 3, 5}, s.l.Values())

	// Early break stops iteration.
	count := 0
	for range s.l.All() {
		count++
		break
	}
	require.Equal(1, count)
}

func (s *ListSuite) TestClearDetachesHandles() {
	require := s.Require()
	n := s.l.PushBack(1)
	s.l.PushBack(2)

	s.l.Clear()
	require.Zero(s.l.Len())
	require.Empty(s.l.Values())
	require.Nil(n.List())
	require.False(s.l.Remove(n))

	s.l.PushBack(3)
	require.Equal([]int{3}, s.l.Values())
}

func TestListSuite(t *testing.T) {
	suite.Run(t, new(ListSuite))
}

func TestList_ZeroValueUsable(t *testing.T) {
	var l dlist.List[string]
	require.Nil(t, l.Front())
	require.Empty(t, l.Values())

	n := l.PushBack("x")
	l.PushFront("w")
	require.Equal(t, []string{"w", "x"}, l.Values())
	require.True(t, l.Remove(n))
	require.Equal(t, []string{"w"}, l.Values())
}

// TestList_MatchesReferenceList mirrors random pushes and handle removals
// into a gods doubly linked list and compares contents after every step.
func TestList_MatchesReferenceList(t *testing.T) {
	rng := rand.New(rand.NewPCG(RandomSeed, RandomSeed))
	l := dlist.New[int]()
	ref := doublylinkedlist.New()
	var handles []*dlist.Node[int]

	for op := 0; op < NRandomOps; op++ {
		switch {
		case rng.IntN(4) == 0 && len(handles) > 0:
			i := rng.IntN(len(handles))
			h := handles[i]
			idx := ref.IndexOf(h.Value)
			require.True(t, l.Remove(h), "op %d", op)
			ref.Remove(idx)
			handles = slices.Delete(handles, i, i+1)
		case rng.IntN(2) == 0:
			handles = append(handles, l.PushFront(op))
			ref.Prepend(op)
		default:
			handles = append(handles, l.PushBack(op))
			ref.Append(op)
		}

		require.Equal(t, ref.Size(), l.Len(), "op %d", op)
	}

	want := make([]int, 0, ref.Size())
	for _, v := range ref.Values() {
		want = append(want, v.(int))
	}
	require.Equal(t, want, l.Values())
}
