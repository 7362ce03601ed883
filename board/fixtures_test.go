package board_test

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/plus3/tetramino/board"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// fixtureCases loads testdata/name and groups its files by the directory
// part of their names: "single/before" lands in cases["single"]["before"].
func fixtureCases(t *testing.T, name string) map[string]map[string]string {
	t.Helper()

	archive, err := txtar.ParseFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	cases := make(map[string]map[string]string)
	for _, f := range archive.Files {
		dir, file := path.Split(f.Name)
		dir = strings.TrimSuffix(dir, "/")
		if cases[dir] == nil {
			cases[dir] = make(map[string]string)
		}
		cases[dir][file] = string(f.Data)
	}
	return cases
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseGrid reads the format produced by Grid.String. Colored cells are
// filled with fill.
func parseGrid(t *testing.T, text string, fill board.Color) board.Grid {
	t.Helper()

	var g board.Grid
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, board.Rows)

	for row, line := range lines {
		require.Len(t, line, board.Cols, "row %d", row)
		for col, ch := range line {
			switch ch {
			case '.':
			case '#':
				g.Set(row, col, board.Cell{Color: fill})
			case '+':
				g.Set(row, col, board.Cell{Color: fill, Transparency: board.ShadowTransparency})
			default:
				t.Fatalf("row %d col %d: unexpected %q", row, col, ch)
			}
		}
	}
	return g
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// scriptedRand replays vals in a loop, reduced modulo n.
type scriptedRand struct {
	vals []int
	next int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.vals[r.next%len(r.vals)]
	r.next++
	return v % n
}
