package game

// RandomNumberGenerator is a linear congruential generator. The state
// is the whole struct, so a serialized board replays identically.
type RandomNumberGenerator struct {
	Seed uint64 `json:"seed"`
	A    uint64 `json:"a"`
	C    uint64 `json:"c"`
	M    uint64 `json:"m"`
}

const (
	rngMultiplier = 1103515245
	rngIncrement  = 12345
	rngModulus    = 32768
)

func NewRNG(seed uint64) RandomNumberGenerator {
	return RandomNumberGenerator{
		Seed: seed % rngModulus,
		A:    rngMultiplier,
		C:    rngIncrement,
		M:    rngModulus,
	}
}

func (r *RandomNumberGenerator) Next() {
	r.Seed = (r.A*r.Seed + r.C) % r.M
}

func (r *RandomNumberGenerator) Uint64() uint64 { return r.Seed }

// Float64 maps the current state into [0, 1).
func (r *RandomNumberGenerator) Float64() float64 {
	return float64(r.Seed) / float64(r.M)
}

// IntN advances the generator and returns a value in [0, n).
func (r *RandomNumberGenerator) IntN(n int) int {
	r.Next()
	return int(r.Seed % uint64(n))
}

// BoardRng keeps one stream per tick granularity. A stream only
// advances on its own tick, so every query inside one movement sees
// the same value.
type BoardRng struct {
	Movement RandomNumberGenerator `json:"movement"`
	Turn     RandomNumberGenerator `json:"turn"`
	Round    RandomNumberGenerator `json:"round"`
}

func NewBoardRng(movementSeed, turnSeed, roundSeed uint64) BoardRng {
	return BoardRng{
		Movement: NewRNG(movementSeed),
		Turn:     NewRNG(turnSeed),
		Round:    NewRNG(roundSeed),
	}
}

func DefaultBoardRng() BoardRng { return NewBoardRng(1, 1, 1) }

func (r *BoardRng) NextMovement() { r.Movement.Next() }
func (r *BoardRng) NextTurn()     { r.Turn.Next() }
func (r *BoardRng) NextRound()    { r.Round.Next() }
