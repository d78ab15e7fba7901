package life

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"life-torus/pkg/core"
)

func TestSaveFormat(t *testing.T) {
	b := boardWith(t, 4, 3, core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 1}, core.Point{X: 1, Y: 2})
	var buf bytes.Buffer
	if err := b.Save(&buf); err != nil {
		t.Fatalf("save: %v", err)
	}
	want := "1000\n0001\n0100\n"
	if buf.String() != want {
		t.Fatalf("saved %q, expected %q", buf.String(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	r := core.NewRNG(21)
	for _, s := range []core.Size{{W: 1, H: 1}, {W: 1, H: 7}, {W: 13, H: 2}, {W: 64, H: 48}, {W: 200, H: 200}} {
		b := New(s.W, s.H)
		b.RandomFill(r)
		b.Step()

		text, err := b.MarshalText()
		if err != nil {
			t.Fatalf("%dx%d: marshal: %v", s.W, s.H, err)
		}
		got, err := Parse(bytes.NewReader(text))
		if err != nil {
			t.Fatalf("%dx%d: parse: %v", s.W, s.H, err)
		}
		if !got.Equal(b) {
			t.Fatalf("%dx%d: round trip changed the board", s.W, s.H)
		}
	}
}

func TestRoundTripEmptyBoard(t *testing.T) {
	b := New(5, 3)
	var got Board
	text, err := b.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(b) {
		t.Fatalf("empty board round trip gave %+v", got.Size())
	}
}

func TestParseToleratesLineEndings(t *testing.T) {
	b, err := Parse(strings.NewReader("010\r\n111  \r\n000\r\n\r\n\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.Size() != (core.Size{W: 3, H: 3}) {
		t.Fatalf("size = %+v, expected 3x3", b.Size())
	}
	expectCells(t, b, core.Point{X: 1, Y: 0}, core.Point{X: 0, Y: 1}, core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 1})
}

func TestParseWithoutFinalNewline(t *testing.T) {
	b, err := Parse(strings.NewReader("01\n10"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	expectCells(t, b, core.Point{X: 1, Y: 0}, core.Point{X: 0, Y: 1})
}

func TestParseIgnoresCellsPastFirstRowWidth(t *testing.T) {
	b, err := Parse(strings.NewReader("01\n1011\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.Size() != (core.Size{W: 2, H: 2}) {
		t.Fatalf("size = %+v, expected 2x2", b.Size())
	}
	expectCells(t, b, core.Point{X: 1, Y: 0}, core.Point{X: 0, Y: 1})
}

func TestParseTreatsUnknownCharactersAsDeadBelowFirstRow(t *testing.T) {
	b, err := Parse(strings.NewReader("0100\n01x0\n.1 1\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.Size() != (core.Size{W: 4, H: 3}) {
		t.Fatalf("size = %+v, expected 4x3", b.Size())
	}
	expectCells(t, b, core.Point{X: 1, Y: 0}, core.Point{X: 1, Y: 1}, core.Point{X: 1, Y: 2}, core.Point{X: 3, Y: 2})
}

func TestParseFailures(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"blank":        "\n\n",
		"ragged":       "0101\n010\n0000\n",
		"blank row":    "01\n\n10\n",
		"bad char":     "0x00\n0100\n",
		"leading char": "a01\n000\n",
	}
	for name, text := range cases {
		if _, err := Parse(strings.NewReader(text)); !errors.Is(err, ErrLoad) {
			t.Fatalf("%s: err = %v, expected ErrLoad", name, err)
		}
	}
}

func TestFailedLoadLeavesBoardUnchanged(t *testing.T) {
	b := boardWith(t, 6, 6, core.Point{X: 1, Y: 1}, core.Point{X: 4, Y: 5})
	b.Step()
	before := New(6, 6)
	for _, p := range b.Cells() {
		mustSet(t, before, p.X, p.Y)
	}

	if err := b.Load(strings.NewReader("0101\n01\n")); !errors.Is(err, ErrLoad) {
		t.Fatalf("load err = %v, expected ErrLoad", err)
	}
	if err := b.LoadFile(filepath.Join(t.TempDir(), "missing.sav")); !errors.Is(err, ErrLoad) {
		t.Fatalf("missing file err = %v, expected ErrLoad", err)
	}
	if !b.Equal(before) {
		t.Fatal("failed load modified the board")
	}
	if b.Generation() != 1 {
		t.Fatalf("failed load reset the generation to %d", b.Generation())
	}
}

func TestSaveFileLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.sav")
	b := New(9, 7)
	b.RandomFill(core.NewRNG(8))
	if err := b.SaveFile(path); err != nil {
		t.Fatalf("save file: %v", err)
	}

	loaded := New(2, 2)
	if err := loaded.LoadFile(path); err != nil {
		t.Fatalf("load file: %v", err)
	}
	if !loaded.Equal(b) {
		t.Fatal("board read from file differs from the saved board")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the save file to remain, found %d entries", len(entries))
	}
}
