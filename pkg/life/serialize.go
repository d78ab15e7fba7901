package life

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"life-torus/pkg/core"
)

// Save writes the board as Size().H lines of Size().W characters, '1' for a
// live cell and '0' for a dead one, each line terminated by '\n'.
func (b *Board) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	row := make([]byte, b.size.W+1)
	row[b.size.W] = '\n'
	for y := 0; y < b.size.H; y++ {
		for x := 0; x < b.size.W; x++ {
			row[x] = '0'
			if _, ok := b.live[core.Point{X: x, Y: y}]; ok {
				row[x] = '1'
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// MarshalText implements encoding.TextMarshaler using the Save format.
func (b *Board) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error the board is
// left unchanged.
func (b *Board) UnmarshalText(text []byte) error {
	return b.Load(bytes.NewReader(text))
}

// Parse reads a board saved by Save. The height is the number of lines and
// the width is the length of the first line with trailing whitespace removed.
// Every row must be at least as long as the first, and the first row may only
// contain '0' and '1'. In later rows '1' is live and any other character is
// dead; anything past the width is ignored.
func Parse(r io.Reader) (*Board, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), " \t\r\n"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	// A file ending in blank lines still describes the rows above them.
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrLoad)
	}

	w, h := len(rows[0]), len(rows)
	if w == 0 {
		return nil, fmt.Errorf("%w: first row is empty", ErrLoad)
	}
	b := New(w, h)
	for y, row := range rows {
		if len(row) < w {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrLoad, y+1, len(row), w)
		}
		for x := 0; x < w; x++ {
			c := row[x]
			// The first row sets the width, so it must be a clean grid row.
			if y == 0 && c != '0' && c != '1' {
				return nil, fmt.Errorf("%w: row 1 column %d: unexpected %q", ErrLoad, x+1, c)
			}
			if c == '1' {
				b.live[core.Point{X: x, Y: y}] = struct{}{}
			}
		}
	}
	return b, nil
}

// Load replaces the board with one read from r. On error the board is left
// unchanged.
func (b *Board) Load(r io.Reader) error {
	next, err := Parse(r)
	if err != nil {
		return err
	}
	*b = *next
	return nil
}

// LoadFile loads the board from path. On error the board is left unchanged.
func (b *Board) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()
	return b.Load(f)
}

// SaveFile writes the board to path. The file is written next to its final
// location and renamed into place, so a failed save keeps the old contents.
func (b *Board) SaveFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := b.Save(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
