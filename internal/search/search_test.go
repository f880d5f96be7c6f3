package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Floranaras/Sokoban-solver/internal/heuristic"
	"github.com/Floranaras/Sokoban-solver/internal/puzzle"
)

// replay walks the player through moves one cell per character, pushing any
// box encountered in the walk direction, and reports whether every box ends
// on a goal. It mirrors expand's push/walk rules independently of the
// search engine, for the solution-validity round-trip law of spec.md §8.
func replay(t *testing.T, p *puzzle.Puzzle, moves string) bool {
	t.Helper()
	b := p.Board
	player := b.Player
	boxes := append([]int(nil), b.Boxes...)

	step := map[byte][2]int{
		'u': {-1, 0},
		'd': {1, 0},
		'l': {0, -1},
		'r': {0, 1},
	}

	for i := 0; i < len(moves); i++ {
		d, ok := step[moves[i]]
		require.True(t, ok, "unrecognized move byte %q", moves[i])

		pr, pc := b.RowCol(player)
		nr, nc := pr+d[0], pc+d[1]
		require.True(t, b.InBounds(nr, nc), "move %d walks out of bounds", i)
		next := b.Index(nr, nc)
		require.False(t, b.IsWall(next), "move %d walks into a wall", i)

		if bi := indexOf(boxes, next); bi >= 0 {
			pr2, pc2 := nr+d[0], nc+d[1]
			require.True(t, b.InBounds(pr2, pc2), "move %d pushes a box out of bounds", i)
			dest := b.Index(pr2, pc2)
			require.False(t, b.IsWall(dest), "move %d pushes a box into a wall", i)
			require.True(t, indexOf(boxes, dest) < 0, "move %d pushes a box onto another box", i)
			boxes[bi] = dest
		}
		player = next
	}

	for _, box := range boxes {
		if !b.IsGoal(box) {
			return false
		}
	}
	return true
}

func TestTrivialOneMoveSolve(t *testing.T) {
	p := puzzle.New("#####\n#@$.#\n#####")
	moves, stats := Solve(p, Options{})
	require.NotEmpty(t, moves)
	assert.True(t, replay(t, p, moves))
	assert.Greater(t, stats.NodesExplored, 0)
}

func TestStraightCorridor(t *testing.T) {
	p := puzzle.New("#######\n#@ $ .#\n#######")
	moves, _ := Solve(p, Options{})
	require.NotEmpty(t, moves)
	assert.True(t, replay(t, p, moves))
}

func TestBoxAlreadyOnGoalSolvesImmediately(t *testing.T) {
	p := puzzle.New("###\n#*#\n#@#\n###")
	moves, _ := Solve(p, Options{})
	assert.Equal(t, "", moves)
}

func TestCornerTrappedBoxIsUnsolvable(t *testing.T) {
	// the box sits in a corner where every push requires either a wall
	// destination or a player standing on a wall: it can never move.
	p := puzzle.New("####\n#$ #\n#@ .#\n####")
	moves, _ := Solve(p, Options{})
	assert.Equal(t, "", moves)
}

func TestTwoBoxTwoGoalSolvesWithEachBoxOnItsOwnGoal(t *testing.T) {
	// Single connected room, two boxes, two goals: ordinary box-occupancy
	// rules (a box can't be pushed onto another box) are what keep this
	// solvable, not the room-capacity predicate — both boxes and both
	// goals share one room id here, so GoalCount never drops below the
	// box count regardless of how the boxes are arranged within it. See
	// the dedicated room-capacity tests below for the predicate itself.
	p := puzzle.New("#########\n#.$ @ $.#\n#########")
	moves, stats := Solve(p, Options{})
	require.NotEmpty(t, moves)
	assert.True(t, replay(t, p, moves))
	assert.Greater(t, stats.NodesExplored, 0)
}

// Room membership is fixed for a box's whole lifetime: a push only ever
// moves a box to an adjacent non-wall cell, and the room decomposer
// always assigns adjacent non-wall cells to the same component. So a
// genuinely distinct room only arises from a wall-separated, disconnected
// region of the board — these tests build exactly that: a reachable room
// the player can solve, plus a second, disconnected room whose own
// box/goal balance (not reachable or pushable at all) still feeds into
// roomCapacityViolated's per-room counts on every push anywhere on the
// board, because it recomputes over the entire current box list.

func twoRoomBoard(secondRoomRow string) string {
	return "#####\n#@$.#\n#####\n#####\n" + secondRoomRow + "\n#####"
}

func TestRoomCapacityViolatedDetectsOverloadedRoom(t *testing.T) {
	// second room holds two boxes (one on its single goal, one not): its
	// box count permanently exceeds its goal count.
	p := puzzle.New(twoRoomBoard("#*$ #"))
	assert.True(t, roomCapacityViolated(p, p.Board.Boxes))
}

func TestRoomCapacityViolatedAcceptsBalancedRooms(t *testing.T) {
	// second room holds exactly one box, already on its one goal.
	p := puzzle.New(twoRoomBoard("#*  #"))
	assert.False(t, roomCapacityViolated(p, p.Board.Boxes))
}

func TestRoomCapacityPruningBlocksEveryPushWhenAnotherRoomIsOverloaded(t *testing.T) {
	// the disconnected second room is permanently overloaded, so every
	// push anywhere on the board — including the unrelated, otherwise
	// legal push in the first room — is rejected by the room-capacity
	// predicate. No successor is ever generated and the search reports
	// the puzzle unsolvable.
	p := puzzle.New(twoRoomBoard("#*$ #"))
	moves, stats := Solve(p, Options{})
	assert.Equal(t, "", moves)
	assert.Equal(t, 1, stats.NodesGenerated)
}

func TestBalancedDisconnectedRoomDoesNotBlockTheReachableRoom(t *testing.T) {
	// same layout, but the disconnected second room is already balanced
	// (pre-solved), so the reachable first room's push is never rejected
	// and the puzzle solves normally.
	p := puzzle.New(twoRoomBoard("#*  #"))
	moves, stats := Solve(p, Options{})
	require.NotEmpty(t, moves)
	assert.True(t, replay(t, p, moves))
	assert.Greater(t, stats.NodesGenerated, 1)
}

func TestPullReachabilityCorridorFindsSolution(t *testing.T) {
	p := puzzle.New("#@$     .#")
	moves, _ := Solve(p, Options{})
	require.NotEmpty(t, moves)
	assert.True(t, replay(t, p, moves))
}

func TestNoBoxesNoGoalsSolvesWithEmptyOutput(t *testing.T) {
	p := puzzle.New("###\n#@#\n###")
	moves, _ := Solve(p, Options{})
	assert.Equal(t, "", moves)
}

func TestUnequalBoxAndGoalCountsNeverReportsSolved(t *testing.T) {
	// two boxes, one goal: no state can have every box on a goal.
	p := puzzle.New("######\n#@$$.#\n######")
	moves, _ := Solve(p, Options{VisitedCapacity: 500, OpenCapacity: 500})
	assert.Equal(t, "", moves)
}

func TestHeuristicZeroAtGoalMatchesSolverTermination(t *testing.T) {
	p := puzzle.New("###\n#*#\n#@#\n###")
	assert.Equal(t, 0, heuristic.Calculate(p.Board, p.Board.Boxes))
}
