package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc resolves offsets of a source document into lines and columns.
type PosDoc struct {
	src []byte
	// starts holds the offset of the first byte of each line after the
	// first.
	starts []int
}

func NewPosDoc(src []byte) *PosDoc {
	d := &PosDoc{src: src}
	for i, c := range src {
		if c == '\n' {
			d.starts = append(d.starts, i+1)
		}
	}
	return d
}

// LineCol returns the zero based line and column of off.
func (d *PosDoc) LineCol(off int) (int, int) {
	line := sort.SearchInts(d.starts, off+1)
	if line == 0 {
		return 0, off
	}
	return line, off - d.starts[line-1]
}

func (d *PosDoc) Pos(off int) *Pos {
	return &Pos{I: off, D: d}
}

// Pos is an offset into a PosDoc.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

// String renders p one based, with a short excerpt of the source.
func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	lo, hi := max(0, p.I-8), min(p.I+8, len(p.D.src))
	excerpt := strconv.Quote(string(p.D.src[lo:hi]))
	l, c := p.LineCol()
	return fmt.Sprintf("%d:%d near %s", l+1, c+1, excerpt)
}
