package minefield

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealSingleCell(t *testing.T) {
	tests := []struct {
		name     string
		pos      Pos
		wantTile Tile
		want     []string
	}{
		{
			name:     "number",
			pos:      Pos{1, 0},
			wantTile: Number1,
			want:     []string{"UKUUU", "UUUUU", "UUUUU", "UUUUU", "UUUUU"},
		},
		{
			name:     "number two",
			pos:      Pos{1, 1},
			wantTile: Number2,
			want:     []string{"UUUUU", "UKUUU", "UUUUU", "UUUUU", "UUUUU"},
		},
		{
			name:     "mine",
			pos:      Pos{2, 2},
			wantTile: Mine,
			want:     []string{"UUUUU", "UUUUU", "UUKUU", "UUUUU", "UUUUU"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			field := newField(t,
				"X....",
				".....",
				"..X..",
				".....",
				".....",
			)

			tile, err := field.Reveal(test.pos.X, test.pos.Y)
			require.NoError(t, err)
			assert.Equal(t, test.wantTile, tile)
			assert.Equal(t, test.want, shownLayout(field))
		})
	}
}

func TestRevealFlood(t *testing.T) {
	field := newField(t,
		"X....",
		".....",
		"..X..",
		".....",
		".....",
	)

	tile, err := field.Reveal(4, 4)
	require.NoError(t, err)
	assert.Equal(t, Empty, tile)

	assert.Equal(t, []string{
		"UKKKK",
		"KUKKK",
		"KKUKK",
		"KKKKK",
		"KKKKK",
	}, shownLayout(field))
	assert.False(t, field.CheckWin())

	tile, err = field.Reveal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Number2, tile)
	assert.True(t, field.CheckWin())
}

func TestRevealFloodRow(t *testing.T) {
	field := newField(t, "X..")

	tile, err := field.Reveal(2, 0)
	require.NoError(t, err)
	assert.Equal(t, Empty, tile)
	assert.Equal(t, []string{"UKK"}, shownLayout(field))
	assert.True(t, field.CheckWin())
}

func TestRevealFloodStopsAtNumbers(t *testing.T) {
	// The numbers in the middle column wall off the right half
	field := newField(t,
		"..X..",
		".....",
		"..X..",
		".....",
		"..X..",
	)

	_, err := field.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"KKUUU",
		"KKUUU",
		"KKUUU",
		"KKUUU",
		"KKUUU",
	}, shownLayout(field))
}

func TestRevealFloodThroughFlags(t *testing.T) {
	field := newField(t,
		"X...",
		"....",
		"....",
	)
	require.NoError(t, field.ToggleFlag(3, 2))

	_, err := field.Reveal(3, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"UKKK",
		"KKKK",
		"KKKK",
	}, shownLayout(field))
	assert.Equal(t, 0, field.NumFlags())
}

func TestRevealFlagged(t *testing.T) {
	field := newField(t, "X..", "...")
	require.NoError(t, field.ToggleFlag(2, 1))

	_, err := field.Reveal(2, 1)
	assert.ErrorIs(t, err, ErrFlagged)

	state, _ := field.StateAt(2, 1)
	assert.Equal(t, Flagged, state)
	assert.Equal(t, []string{"UUU", "UUF"}, shownLayout(field))
}

func TestRevealOutOfBounds(t *testing.T) {
	field := newField(t, "X..", "...")

	for _, pos := range []Pos{{3, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		_, err := field.Reveal(pos.X, pos.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds, "%v", pos)
	}
	assert.Equal(t, []string{"UUU", "UUU"}, shownLayout(field))
}

func TestRevealKnownCellAgain(t *testing.T) {
	field := newField(t, "X..", "...")

	_, err := field.Reveal(2, 0)
	require.NoError(t, err)
	before := shownLayout(field)

	tile, err := field.Reveal(2, 0)
	require.NoError(t, err)
	assert.Equal(t, Empty, tile)
	assert.Equal(t, before, shownLayout(field))
}

// expectedRegion computes the cells revealed from an empty start cell with a
// recursive walk: the 4-connected empty cells plus the numbers they touch.
func expectedRegion(field *Minefield, start Pos) map[Pos]bool {
	region := make(map[Pos]bool)

	var walk func(pos Pos)
	walk = func(pos Pos) {
		if region[pos] {
			return
		}
		region[pos] = true

		for _, offset := range orthogonal {
			neighbor := pos.Add(offset)
			tile, ok := field.TileAt(neighbor.X, neighbor.Y)
			if !ok {
				continue
			}
			switch {
			case tile == Empty:
				walk(neighbor)
			case tile.IsNumber():
				region[neighbor] = true
			}
		}
	}
	walk(start)

	return region
}

func TestRevealFloodRandomFields(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		field, err := New(16, 12)
		require.NoError(t, err)
		require.NoError(t, field.Generate(r, 25))

		var empties []Pos
		for y := 0; y < field.Height(); y++ {
			for x := 0; x < field.Width(); x++ {
				if tile, _ := field.TileAt(x, y); tile == Empty {
					empties = append(empties, Pos{x, y})
				}
			}
		}
		if len(empties) == 0 {
			continue
		}

		start := empties[r.Intn(len(empties))]
		want := expectedRegion(field, start)

		_, err = field.Reveal(start.X, start.Y)
		require.NoError(t, err)

		for y := 0; y < field.Height(); y++ {
			for x := 0; x < field.Width(); x++ {
				state, _ := field.StateAt(x, y)
				tile, _ := field.TileAt(x, y)

				assert.Equal(t, want[Pos{x, y}], state == Known, "cell (%d, %d) from %v", x, y, start)
				if tile == Mine {
					assert.NotEqual(t, Known, state)
				}
			}
		}
	}
}
