package rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Floranaras/Sokoban-solver/internal/board"
)

func TestSingleRoomCoversAllFloor(t *testing.T) {
	b := board.Parse("#####\n#@$.#\n#####")
	labels := Compute(b)

	room := labels.RoomOf(b.Index(1, 1))
	require.NotEqual(t, noRoom, room)
	assert.Equal(t, room, labels.RoomOf(b.Index(1, 2)))
	assert.Equal(t, room, labels.RoomOf(b.Index(1, 3)))
	assert.Equal(t, noRoom, labels.RoomOf(b.Index(0, 0)))
}

func TestTwoDisjointRoomsGetDistinctIDs(t *testing.T) {
	b := board.Parse("#####\n#@.##\n#####\n##.$#\n#####")
	labels := Compute(b)

	topRoom := labels.RoomOf(b.Index(1, 1))
	bottomRoom := labels.RoomOf(b.Index(3, 2))
	assert.NotEqual(t, topRoom, bottomRoom)
	require.Len(t, labels.GoalCount, 2)
}

func TestGoalCountPerRoom(t *testing.T) {
	// two rooms joined nowhere, neither containing a goal.
	b := board.Parse("#######\n#@ #$  #\n#######")
	labels := Compute(b)

	leftRoom := labels.RoomOf(b.Index(1, 1))
	rightRoom := labels.RoomOf(b.Index(1, 4))
	require.NotEqual(t, leftRoom, rightRoom)
	assert.Equal(t, 0, labels.GoalCount[leftRoom])
	assert.Equal(t, 0, labels.GoalCount[rightRoom])
}

func TestRoomWithOneGoalCountsIt(t *testing.T) {
	b := board.Parse("######\n#@$ .#\n######")
	labels := Compute(b)

	room := labels.RoomOf(b.Index(1, 1))
	assert.Equal(t, 1, labels.GoalCount[room])
}
