package token

import (
	"fmt"
	"strconv"
)

// PosDoc is the source a set of positions refer to.
type PosDoc struct {
	d []byte
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d", sample, p.I)
}
