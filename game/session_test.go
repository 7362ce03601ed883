package game_test

import (
	"testing"
	"time"

	"github.com/plus3/tetramino/board"
	"github.com/plus3/tetramino/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, opts ...game.Option) (*game.Session, *recordingSink, *fakeClock) {
	t.Helper()
	sink := &recordingSink{}
	clock := newFakeClock()
	base := []game.Option{
		game.WithRandomizer(onlyO),
		game.WithClock(clock),
		game.WithSink(sink),
	}
	return game.New(append(base, opts...)...), sink, clock
}

func TestNewSession(t *testing.T) {
	s, sink, _ := newSession(t)

	assert.True(t, s.Active())
	assert.Equal(t, []game.Sound{game.SoundSoundtrack}, sink.take())

	snap := s.Snapshot()
	assert.Equal(t, board.ShapeO.Shape().SpawnTiles(), snap.Tiles)
	for _, d := range snap.Next {
		assert.Equal(t, board.Descriptor{Color: board.Sky, Shape: board.ShapeO}, d)
	}
	assert.Equal(t, game.Stats{Active: true}, s.Stats())
}

func TestSessionMoves(t *testing.T) {
	s, sink, _ := newSession(t)
	sink.take()

	s.Enqueue(game.CommandLeft)
	s.Enqueue(game.CommandLeft)
	s.Update(0.016)

	assert.Equal(t, []game.Sound{game.SoundMove, game.SoundMove}, sink.take())
	assert.Equal(t, 2, s.Snapshot().Tiles[0].Col)

	s.Enqueue(game.CommandLeft)
	s.Enqueue(game.CommandLeft)
	s.Enqueue(game.CommandLeft)
	s.Update(0.016)
	assert.Equal(t, []game.Sound{game.SoundMove, game.SoundMove}, sink.take(), "a blocked move is silent")
	assert.Equal(t, 0, s.Snapshot().Tiles[0].Col)

	s.Enqueue(game.CommandRotate)
	s.Update(0.016)
	assert.Equal(t, []game.Sound{game.SoundRotate}, sink.take())
	assert.Equal(t, board.Position{Row: 1, Col: 1}, s.Snapshot().Tiles[0])
}

func TestSessionHardDrop(t *testing.T) {
	s, sink, _ := newSession(t)
	sink.take()

	s.Enqueue(game.CommandHardDrop)
	s.Update(0.016)

	assert.Equal(t, []game.Sound{game.SoundFall}, sink.take())
	stats := s.Stats()
	assert.Equal(t, 1, stats.Pieces)
	assert.Equal(t, 4, stats.Filled)
	assert.Equal(t, board.ShapeO.Shape().SpawnTiles(), s.Snapshot().Tiles, "next piece spawned")
}

func TestSessionIgnoresMovesAfterHardDrop(t *testing.T) {
	s, sink, _ := newSession(t)
	sink.take()

	s.Enqueue(game.CommandHardDrop)
	s.Enqueue(game.CommandLeft)
	s.Update(0.016)

	assert.Equal(t, []game.Sound{game.SoundFall}, sink.take())

	snap := s.Snapshot()
	assert.Equal(t, board.Cell{Color: board.Sky}, snap.Grid.Get(board.Rows-1, 4))
	assert.True(t, snap.Grid.IsEmpty(board.Rows-1, 3))
}

func TestSessionClearsLines(t *testing.T) {
	s, sink, _ := newSession(t)
	sink.take()

	for _, col := range []int{0, 2, 4, 6, 8} {
		for c := board.SpawnCol; c > col; c-- {
			s.Enqueue(game.CommandLeft)
		}
		for c := board.SpawnCol; c < col; c++ {
			s.Enqueue(game.CommandRight)
		}
		s.Enqueue(game.CommandHardDrop)
		s.Update(0.016)
	}

	sounds := sink.take()
	require.NotEmpty(t, sounds)
	assert.Equal(t, game.SoundLineClear, sounds[len(sounds)-1])

	stats := s.Stats()
	assert.Equal(t, 5, stats.Pieces)
	assert.Equal(t, 2, stats.Lines)
	assert.Zero(t, stats.Filled)
	assert.True(t, stats.Active)
}

func TestSessionGameOver(t *testing.T) {
	s, sink, _ := newSession(t)
	sink.take()

	frames := 0
	for s.Active() && frames < 50 {
		s.Enqueue(game.CommandHardDrop)
		s.Update(0.016)
		frames++
	}

	require.False(t, s.Active())
	assert.Equal(t, 10, frames)
	assert.Equal(t, 10, s.Stats().Pieces)

	sounds := sink.take()
	assert.Equal(t, game.SoundGameOver, sounds[len(sounds)-1])

	snap := s.Snapshot()
	assert.False(t, snap.Active)
	assert.Negative(t, snap.Tiles[0].Row)

	s.Enqueue(game.CommandHardDrop)
	s.Enqueue(game.CommandLeft)
	s.Update(0.016)
	assert.Empty(t, sink.take(), "nothing happens after game over")
	assert.Equal(t, 10, s.Stats().Pieces)
}

func TestSessionGravity(t *testing.T) {
	s, _, clock := newSession(t)

	start := s.Snapshot().Tiles
	s.Update(0.016)
	assert.Equal(t, start, s.Snapshot().Tiles)

	clock.Advance(board.SlowDelay)
	s.Update(0.7)
	assert.Equal(t, start[0].Row+1, s.Snapshot().Tiles[0].Row)

	s.Enqueue(game.CommandSoftDropFast)
	clock.Advance(board.FastDelay)
	s.Update(0.05)
	assert.Equal(t, start[0].Row+2, s.Snapshot().Tiles[0].Row)

	s.Enqueue(game.CommandSoftDropSlow)
	clock.Advance(board.FastDelay)
	s.Update(0.05)
	assert.Equal(t, start[0].Row+2, s.Snapshot().Tiles[0].Row)
}

func TestSessionGravityPlacesPiece(t *testing.T) {
	s, sink, clock := newSession(t)
	sink.take()

	s.Enqueue(game.CommandSoftDropFast)
	for i := 0; i < 40 && s.Stats().Pieces == 0; i++ {
		clock.Advance(board.FastDelay)
		s.Update(0.05)
	}

	assert.Equal(t, 1, s.Stats().Pieces)
	assert.Empty(t, sink.take(), "gravity placement is silent")
	assert.Equal(t, board.FastDelay, fallDelayAfterSpawn(s, clock))
}

// fallDelayAfterSpawn measures the new piece's gravity interval.
func fallDelayAfterSpawn(s *game.Session, clock *fakeClock) time.Duration {
	row := s.Snapshot().Tiles[0].Row
	clock.Advance(board.FastDelay)
	s.Update(0.05)
	if s.Snapshot().Tiles[0].Row > row {
		return board.FastDelay
	}
	return board.SlowDelay
}

func TestSoundsDeliveredAfterFrame(t *testing.T) {
	var s *game.Session
	var piecesAtFall int
	sink := game.SinkFunc(func(sound game.Sound) {
		if sound == game.SoundFall {
			piecesAtFall = s.Stats().Pieces
		}
	})

	s = game.New(game.WithRandomizer(onlyO), game.WithClock(newFakeClock()), game.WithSink(sink))
	s.Enqueue(game.CommandHardDrop)
	s.Update(0.016)

	assert.Equal(t, 1, piecesAtFall)
}

func TestSnapshotLeavesFieldAlone(t *testing.T) {
	s, _, _ := newSession(t)

	snap := s.Snapshot()
	assert.Equal(t, 8, snap.Grid.Filled(), "piece and shadow are composed")
	assert.Zero(t, s.Stats().Filled)
}

func TestSessionRestart(t *testing.T) {
	s, _, _ := newSession(t)
	for s.Active() {
		s.Enqueue(game.CommandHardDrop)
		s.Update(0.016)
	}

	s.Restart()
	assert.True(t, s.Active())
	stats := s.Stats()
	assert.Zero(t, stats.Pieces)
	assert.Zero(t, stats.Filled)
}

func TestSchedulerStatsOrder(t *testing.T) {
	s, _, _ := newSession(t)
	s.Update(0.016)

	stats := s.SchedulerStats()
	names := make([]string, 0, len(stats.Systems))
	for _, sys := range stats.Systems {
		names = append(names, sys.Name)
	}
	assert.Equal(t, []string{"InputSystem", "GravitySystem", "PlacementSystem", "GameOverSystem", "EventSystem"}, names)
	assert.EqualValues(t, 1, stats.Frames)

	assert.Equal(t, 6, s.StorageStats().SingletonCount)
}
