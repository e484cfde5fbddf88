package shared

import "fmt"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func ParseColor(s string) (Color, bool) {
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	default:
		return White, false
	}
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := ParseColor(string(text))
	if !ok {
		return fmt.Errorf("invalid color %q", string(text))
	}
	*c = parsed
	return nil
}

// Pos is a board coordinate. Both components are non-negative; the
// south-west corner of a board is (0, 0).
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPos(x, y int) Pos { return Pos{X: x, Y: y} }

// Shift offsets the position, refusing shifts that would move any
// component below zero.
func (p Pos) Shift(dx, dy int) (Pos, bool) {
	x := p.X + dx
	y := p.Y + dy
	if x < 0 || y < 0 {
		return Pos{}, false
	}
	return Pos{X: x, Y: y}, true
}

func (p Pos) North() Pos { return Pos{X: p.X, Y: p.Y + 1} }
func (p Pos) East() Pos  { return Pos{X: p.X + 1, Y: p.Y} }

func (p Pos) South() (Pos, bool) { return p.Shift(0, -1) }
func (p Pos) West() (Pos, bool)  { return p.Shift(-1, 0) }

func (p Pos) Add(q Pos) Pos { return Pos{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Pos) AbsDiff(q Pos) Pos {
	return Pos{X: abs(p.X - q.X), Y: abs(p.Y - q.Y)}
}

func (p Pos) DirectionShift(d Direction) (Pos, bool) {
	dx, dy := d.Offset()
	return p.Shift(dx, dy)
}

func (p Pos) SubDirectionShift(sd SubDirection) (Pos, bool) {
	dx, dy := sd.Offset()
	return p.Shift(dx, dy)
}

// Less orders positions lexicographically, x before y.
func (p Pos) Less(q Pos) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Pos) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Tick is the granularity of a clock advance. Every movement tick may
// cascade into a turn tick, and every turn tick into a round tick.
type Tick uint8

const (
	TickMovement Tick = iota
	TickTurn
	TickRound
)

func (t Tick) String() string {
	switch t {
	case TickMovement:
		return "movement"
	case TickTurn:
		return "turn"
	case TickRound:
		return "round"
	default:
		return fmt.Sprintf("tick(%d)", t)
	}
}

// Time is a countdown (or a clock) expressed in the three game
// granularities. Decrements saturate at zero.
type Time struct {
	Round    int `json:"round"`
	Turn     int `json:"turn"`
	Movement int `json:"movement"`
}

func NewTime(rounds, turns, movements int) Time {
	return Time{Round: rounds, Turn: turns, Movement: movements}
}

func Rounds(n int) Time    { return Time{Round: n} }
func Turns(n int) Time     { return Time{Turn: n} }
func Movements(n int) Time { return Time{Movement: n} }

func (t Time) Add(o Time) Time {
	return Time{Round: t.Round + o.Round, Turn: t.Turn + o.Turn, Movement: t.Movement + o.Movement}
}

func (t Time) IsZero() bool {
	return t.Round == 0 && t.Turn == 0 && t.Movement == 0
}

// OnTick decrements the component matching the given granularity,
// saturating at zero.
func (t *Time) OnTick(tick Tick) {
	switch tick {
	case TickMovement:
		if t.Movement > 0 {
			t.Movement--
		}
	case TickTurn:
		if t.Turn > 0 {
			t.Turn--
		}
	case TickRound:
		if t.Round > 0 {
			t.Round--
		}
	}
}

func (t Time) String() string {
	return fmt.Sprintf("%dr %dt %dm", t.Round, t.Turn, t.Movement)
}
