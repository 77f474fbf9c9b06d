package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proclubshub/backend/internal/domain/entity"
)

func TestStandingTableSortedByPointsDescending(t *testing.T) {
	repo := &fakeStandingRepo{logos: map[string]string{"Red FC": "https://x/red.png"}}
	svc := NewStandingService(repo, nil)

	for _, s := range []entity.Standing{
		{Club: "Green Rovers", Points: 4},
		{Club: "Red FC", Points: 12},
		{Club: "Blue United", Points: 7},
	} {
		row := s
		require.NoError(t, svc.Create(context.Background(), &row))
	}

	table, err := svc.Table(context.Background())
	require.NoError(t, err)
	require.Len(t, table, 3)
	for i := 0; i < len(table)-1; i++ {
		assert.GreaterOrEqual(t, table[i].Points, table[i+1].Points)
	}
	assert.Equal(t, "Red FC", table[0].Club)
	assert.Equal(t, "https://x/red.png", table[0].Logo)
	// dangling club reference yields an empty logo
	assert.Equal(t, "", table[1].Logo)
}

func TestStandingTiesKeepInsertionOrder(t *testing.T) {
	repo := &fakeStandingRepo{}
	svc := NewStandingService(repo, nil)

	first := entity.Standing{Club: "Red FC", Points: 9}
	second := entity.Standing{Club: "Blue United", Points: 9}
	require.NoError(t, svc.Create(context.Background(), &first))
	require.NoError(t, svc.Create(context.Background(), &second))

	table, err := svc.Table(context.Background())
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, "Red FC", table[0].Club)
	assert.Equal(t, "Blue United", table[1].Club)
}

func TestStandingPartialUpdate(t *testing.T) {
	repo := &fakeStandingRepo{}
	svc := NewStandingService(repo, nil)

	row := entity.Standing{Club: "Red FC", Points: 9, Played: 5, Won: 3}
	require.NoError(t, svc.Create(context.Background(), &row))

	updated, err := svc.Update(context.Background(), row.ID, UpdateStandingInput{
		Points: intptr(12),
		Played: intptr(6),
		Won:    intptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Points)
	assert.Equal(t, 6, updated.Played)
	assert.Equal(t, 4, updated.Won)
	assert.Equal(t, "Red FC", updated.Club)
}
