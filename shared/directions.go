package shared

import "fmt"

type Direction uint8

const (
	DirN Direction = iota
	DirE
	DirS
	DirW
)

func (d Direction) String() string {
	switch d {
	case DirN:
		return "N"
	case DirE:
		return "E"
	case DirS:
		return "S"
	case DirW:
		return "W"
	default:
		return "?"
	}
}

func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "N":
		return DirN, true
	case "E":
		return DirE, true
	case "S":
		return DirS, true
	case "W":
		return DirW, true
	default:
		return DirN, false
	}
}

func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, ok := ParseDirection(string(text))
	if !ok {
		return fmt.Errorf("invalid direction %q", string(text))
	}
	*d = parsed
	return nil
}

func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DirN:
		return 0, 1
	case DirE:
		return 1, 0
	case DirS:
		return 0, -1
	default:
		return -1, 0
	}
}

// RelatedSubDirections returns the three compass points facing the
// direction, counter-clockwise first.
func (d Direction) RelatedSubDirections() [3]SubDirection {
	switch d {
	case DirN:
		return [3]SubDirection{SubNW, SubN, SubNE}
	case DirE:
		return [3]SubDirection{SubNE, SubE, SubSE}
	case DirS:
		return [3]SubDirection{SubSE, SubS, SubSW}
	default:
		return [3]SubDirection{SubSW, SubW, SubNW}
	}
}

type SubDirection uint8

const (
	SubN SubDirection = iota
	SubNE
	SubE
	SubSE
	SubS
	SubSW
	SubW
	SubNW
)

func (sd SubDirection) String() string {
	switch sd {
	case SubN:
		return "N"
	case SubNE:
		return "NE"
	case SubE:
		return "E"
	case SubSE:
		return "SE"
	case SubS:
		return "S"
	case SubSW:
		return "SW"
	case SubW:
		return "W"
	case SubNW:
		return "NW"
	default:
		return "?"
	}
}

func ParseSubDirection(s string) (SubDirection, bool) {
	switch s {
	case "N":
		return SubN, true
	case "NE":
		return SubNE, true
	case "E":
		return SubE, true
	case "SE":
		return SubSE, true
	case "S":
		return SubS, true
	case "SW":
		return SubSW, true
	case "W":
		return SubW, true
	case "NW":
		return SubNW, true
	default:
		return SubN, false
	}
}

func (sd SubDirection) MarshalText() ([]byte, error) { return []byte(sd.String()), nil }

func (sd *SubDirection) UnmarshalText(text []byte) error {
	parsed, ok := ParseSubDirection(string(text))
	if !ok {
		return fmt.Errorf("invalid subdirection %q", string(text))
	}
	*sd = parsed
	return nil
}

func (sd SubDirection) Offset() (dx, dy int) {
	switch sd {
	case SubN:
		return 0, 1
	case SubNE:
		return 1, 1
	case SubE:
		return 1, 0
	case SubSE:
		return 1, -1
	case SubS:
		return 0, -1
	case SubSW:
		return -1, -1
	case SubW:
		return -1, 0
	default:
		return -1, 1
	}
}

type Axis uint8

const (
	AxisNS Axis = iota
	AxisEW
)

func (a Axis) String() string {
	if a == AxisNS {
		return "NS"
	}
	return "EW"
}
