package club_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubledger/pkg/club"
)

func placement(area, group string) club.Placement {
	return club.Placement{Terms: club.Terms{Area: area, Group: group}}
}

func TestAddPlacement(t *testing.T) {
	t.Parallel()

	t.Run("first placement becomes primary and is mirrored", func(t *testing.T) {
		t.Parallel()
		c := &club.Client{ID: "c1"}
		p := placement("Center", "Kids 6-8")
		p.PayAmount = 5000
		p.RemainingLessons = club.IntPtr(3)

		require.NoError(t, club.AddPlacement(c, p))
		assert.Equal(t, "Center", c.Area)
		assert.Equal(t, 5000.0, c.PayAmount)
		require.NotNil(t, c.RemainingLessons)

		*c.Placements[0].RemainingLessons = 10
		assert.Equal(t, 3, *c.RemainingLessons, "mirror must not alias the placement")
	})

	t.Run("secondary placement leaves top level alone", func(t *testing.T) {
		t.Parallel()
		c := &club.Client{ID: "c1"}
		require.NoError(t, club.AddPlacement(c, placement("Center", "Kids")))
		require.NoError(t, club.AddPlacement(c, placement("North", "Teens")))
		assert.Equal(t, "Center", c.Area)
		assert.Len(t, c.Placements, 2)
	})

	t.Run("rejects duplicate pair", func(t *testing.T) {
		t.Parallel()
		c := &club.Client{ID: "c1"}
		require.NoError(t, club.AddPlacement(c, placement("Center", "Kids")))
		err := club.AddPlacement(c, placement("Center", "Kids"))
		assert.ErrorIs(t, err, club.ErrDuplicatePlacement)
		assert.Len(t, c.Placements, 1)
	})

	t.Run("rejects fifth placement", func(t *testing.T) {
		t.Parallel()
		c := &club.Client{ID: "c1"}
		require.NoError(t, club.AddPlacement(c, placement("A", "1")))
		require.NoError(t, club.AddPlacement(c, placement("A", "2")))
		require.NoError(t, club.AddPlacement(c, placement("B", "1")))
		require.NoError(t, club.AddPlacement(c, placement("B", "2")))
		assert.ErrorIs(t, club.AddPlacement(c, placement("C", "1")), club.ErrTooManyPlacements)
	})

	t.Run("rejects fourth area", func(t *testing.T) {
		t.Parallel()
		c := &club.Client{ID: "c1"}
		require.NoError(t, club.AddPlacement(c, placement("A", "1")))
		require.NoError(t, club.AddPlacement(c, placement("B", "1")))
		require.NoError(t, club.AddPlacement(c, placement("C", "1")))
		assert.ErrorIs(t, club.AddPlacement(c, placement("D", "1")), club.ErrTooManyAreas)
	})

	t.Run("rejects empty pair", func(t *testing.T) {
		t.Parallel()
		c := &club.Client{ID: "c1"}
		assert.ErrorIs(t, club.AddPlacement(c, placement("A", "")), club.ErrEmptyPlacement)
	})
}

func TestEffectivePlacements(t *testing.T) {
	t.Parallel()

	legacy := club.Client{ID: "c1", PayStatus: club.PayDebt, Terms: club.Terms{Area: "Center", Group: "Kids"}}
	got := club.EffectivePlacements(legacy)
	require.Len(t, got, 1)
	assert.Equal(t, "Kids", got[0].Group)
	assert.Equal(t, club.PayDebt, got[0].PayStatus)

	assert.Empty(t, club.EffectivePlacements(club.Client{ID: "c2"}))
}

func TestPlacementLookup(t *testing.T) {
	t.Parallel()

	ps := []club.Placement{
		{ID: "p1", Terms: club.Terms{Area: "A", Group: "1"}},
		{ID: "p2", Terms: club.Terms{Area: "B", Group: "2"}},
	}
	assert.Equal(t, 1, club.PlacementIndexByID(ps, "p2"))
	assert.Equal(t, -1, club.PlacementIndexByID(ps, ""))
	assert.Equal(t, 0, club.PlacementIndexByPair(ps, "A", "1"))
	assert.Equal(t, -1, club.PlacementIndexByPair(ps, "A", "2"))
}

func TestIsManualTracked(t *testing.T) {
	t.Parallel()

	assert.True(t, club.IsManualTracked("Индивидуальные", club.PlanMonthly))
	assert.True(t, club.IsManualTracked("Adults evening", ""))
	assert.True(t, club.IsManualTracked("Kids", club.PlanIndividual))
	assert.False(t, club.IsManualTracked("Kids", club.PlanMonthly))
}
