package game

import (
	"encoding/json"
	"fmt"

	"carlettos_chess/internal/logging"
	"carlettos_chess/shared"
)

// Board is the whole game state: tiles in shape enumeration order,
// the three RNG streams, the clock, the players, the cards in play,
// the dead pile and the pending events. The tile index is rebuilt on
// construction and deserialization, never serialized.
type Board struct {
	Tiles      []Tile      `json:"tiles"`
	Rng        BoardRng    `json:"rng"`
	Time       shared.Time `json:"time"`
	Players    []Player    `json:"players"`
	Cards      Cards       `json:"cards"`
	DeadPieces []Piece     `json:"dead_pieces"`
	Shape      Shape       `json:"shape"`
	Events     Events      `json:"events"`

	index map[shared.Pos]int
}

// NewBoard builds a board over the shape with the given players. Tiles
// follow the shape's enumeration order.
func NewBoard(shape Shape, players []Player) *Board {
	points := shape.Points()
	tiles := make([]Tile, 0, len(points))
	for _, pos := range points {
		tiles = append(tiles, NewTile(pos))
	}
	b := &Board{
		Tiles:   tiles,
		Rng:     DefaultBoardRng(),
		Players: players,
		Shape:   shape,
	}
	b.reindex()
	return b
}

// WithShape builds an empty board with the default two players.
func WithShape(shape Shape) *Board {
	return NewBoard(shape, []Player{
		NewPlayer(shared.White, 0, nil),
		NewPlayer(shared.Black, 1, nil),
	})
}

// WithEmptyTiles builds a board over the shape with no players at all.
func WithEmptyTiles(shape Shape) *Board {
	return NewBoard(shape, nil)
}

func (b *Board) reindex() {
	b.index = make(map[shared.Pos]int, len(b.Tiles))
	for i := range b.Tiles {
		b.index[b.Tiles[i].Pos] = i
	}
}

// UnmarshalJSON restores the board and rebuilds the tile index.
func (b *Board) UnmarshalJSON(data []byte) error {
	type alias Board
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*b = Board(a)
	b.reindex()
	return nil
}

func (b *Board) Contains(pos shared.Pos) bool {
	return b.Shape.Contains(pos)
}

// Get returns the tile at pos, or nil outside the shape.
func (b *Board) Get(pos shared.Pos) *Tile {
	i, ok := b.index[pos]
	if !ok {
		return nil
	}
	return &b.Tiles[i]
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos shared.Pos) bool {
	tile := b.Get(pos)
	return tile != nil && tile.IsEmpty()
}

func (b *Board) HasPiece(pos shared.Pos) bool {
	tile := b.Get(pos)
	return tile != nil && tile.HasPiece()
}

// SameColor reports whether both tiles exist and hold pieces of the
// same color (or are both empty).
func (b *Board) SameColor(pos1, pos2 shared.Pos) bool {
	t1, t2 := b.Get(pos1), b.Get(pos2)
	if t1 == nil || t2 == nil {
		return false
	}
	c1, ok1 := t1.Color()
	c2, ok2 := t2.Color()
	return ok1 == ok2 && c1 == c2
}

func (b *Board) PieceAt(pos shared.Pos) *Piece {
	tile := b.Get(pos)
	if tile == nil {
		return nil
	}
	return &tile.Piece
}

// Data returns the piece data at pos, or nil for empty or off-board
// tiles.
func (b *Board) Data(pos shared.Pos) *PieceData {
	tile := b.Get(pos)
	if tile == nil {
		return nil
	}
	return tile.Piece.Data
}

// NearbyTiles returns the orthogonally adjacent tiles that exist,
// north, east, south, west.
func (b *Board) NearbyTiles(pos shared.Pos) []*Tile {
	candidates := []shared.Pos{pos.North(), pos.East()}
	if south, ok := pos.South(); ok {
		candidates = append(candidates, south)
	}
	if west, ok := pos.West(); ok {
		candidates = append(candidates, west)
	}
	var tiles []*Tile
	for _, p := range candidates {
		if tile := b.Get(p); tile != nil {
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// RowTiles returns the tiles in a row, in tile order.
func (b *Board) RowTiles(row int) []*Tile {
	var tiles []*Tile
	for i := range b.Tiles {
		if b.Tiles[i].Pos.Y == row {
			tiles = append(tiles, &b.Tiles[i])
		}
	}
	return tiles
}

func (b *Board) Height() int { return b.Shape.Height() }

func (b *Board) PosVec() []shared.Pos { return b.Shape.Points() }

// PosVecFromPattern returns every board position other than from that
// the pattern accepts.
func (b *Board) PosVecFromPattern(from shared.Pos, pattern func(from, to shared.Pos) bool) []shared.Pos {
	var out []shared.Pos
	for i := range b.Tiles {
		pos := b.Tiles[i].Pos
		if pos != from && pattern(from, pos) {
			out = append(out, pos)
		}
	}
	return out
}

// TilesFromPattern returns every tile other than from's that the
// pattern accepts.
func (b *Board) TilesFromPattern(from shared.Pos, pattern func(from, to shared.Pos) bool) []*Tile {
	var out []*Tile
	for i := range b.Tiles {
		pos := b.Tiles[i].Pos
		if pos != from && pattern(from, pos) {
			out = append(out, &b.Tiles[i])
		}
	}
	return out
}

// LastDead returns the most recently killed piece, or nil.
func (b *Board) LastDead() *Piece {
	if len(b.DeadPieces) == 0 {
		return nil
	}
	return &b.DeadPieces[len(b.DeadPieces)-1]
}

// RemoveLastDead pops the most recently killed piece. Returns the
// empty piece when the pile is empty.
func (b *Board) RemoveLastDead() Piece {
	if len(b.DeadPieces) == 0 {
		return Piece{}
	}
	piece := b.DeadPieces[len(b.DeadPieces)-1]
	b.DeadPieces = b.DeadPieces[:len(b.DeadPieces)-1]
	return piece
}

func (b *Board) LastDeadWithColor(color shared.Color) *Piece {
	for i := len(b.DeadPieces) - 1; i >= 0; i-- {
		if c, ok := b.DeadPieces[i].Color(); ok && c == color {
			return &b.DeadPieces[i]
		}
	}
	return nil
}

func (b *Board) RemoveLastDeadWithColor(color shared.Color) Piece {
	for i := len(b.DeadPieces) - 1; i >= 0; i-- {
		if c, ok := b.DeadPieces[i].Color(); ok && c == color {
			piece := b.DeadPieces[i]
			b.DeadPieces = append(b.DeadPieces[:i], b.DeadPieces[i+1:]...)
			return piece
		}
	}
	return Piece{}
}

// MovePiece relocates the piece at from to the empty destination.
func (b *Board) MovePiece(from, to shared.Pos) error {
	src := b.Get(from)
	dst := b.Get(to)
	if src == nil || dst == nil {
		return ErrOutOfBoard
	}
	if src.IsEmpty() {
		return ErrEmptyTile
	}
	piece := src.Remove()
	piece.Data.Moved = true
	dst.Replace(piece)
	return nil
}

// TakePiece relocates the piece at from onto the occupied destination,
// pushing the victim on the dead pile.
func (b *Board) TakePiece(from, to shared.Pos) error {
	src := b.Get(from)
	dst := b.Get(to)
	if src == nil || dst == nil {
		return ErrOutOfBoard
	}
	if src.IsEmpty() {
		return ErrEmptyTile
	}
	piece := src.Remove()
	piece.Data.Moved = true
	dead := dst.Replace(piece)
	if !dead.IsNone() {
		b.DeadPieces = append(b.DeadPieces, dead)
	}
	return nil
}

// AttackPiece kills the piece at to without moving the attacker.
// Attacking an empty tile is a no-op for the dead pile.
func (b *Board) AttackPiece(from, to shared.Pos) error {
	dst := b.Get(to)
	if dst == nil {
		return ErrOutOfBoard
	}
	dead := dst.Remove()
	if !dead.IsNone() {
		b.DeadPieces = append(b.DeadPieces, dead)
	}
	return nil
}

// Make executes an action. It performs, it does not validate: legality
// checks belong to Piece.CanDo before calling Make.
func (b *Board) Make(action Action) error {
	switch action.Kind {
	case ActionMove:
		return b.MovePiece(action.From, action.To)
	case ActionTake:
		return b.TakePiece(action.From, action.To)
	case ActionAttack:
		return b.AttackPiece(action.From, action.To)
	case ActionAbility:
		return b.useAbility(action.From, action.Info)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAction, action.Kind)
	}
}

// useAbility runs the ability of the piece at from, then stamps its
// cooldown, marks the once-per-game flag and charges the owner's mana.
func (b *Board) useAbility(from shared.Pos, info *Info) error {
	tile := b.Get(from)
	if tile == nil {
		return ErrOutOfBoard
	}
	piece := tile.Piece
	if piece.Data == nil {
		return ErrEmptyTile
	}
	ability := AbilityOf(piece.Kind)
	if ability == nil {
		return ErrNoAbility
	}
	if info == nil {
		info = NoInfo()
	}
	// Data is shared by reference, so the stamp lands even when the
	// ability relocates the piece.
	data := piece.Data
	if err := ability.Use(b, from, info); err != nil {
		return err
	}
	abilityData := ability.Data()
	data.Cooldown = data.Cooldown.Add(abilityData.Cooldown)
	data.Properties.MarkAbilityUsed()
	if player := b.PlayerFromColor(data.Color); player != nil {
		player.Mana = player.Mana.Sub(abilityData.Cost)
	}
	return nil
}

func (b *Board) PlayerFromID(id int) *Player {
	for i := range b.Players {
		if b.Players[i].ID == id {
			return &b.Players[i]
		}
	}
	return nil
}

func (b *Board) PlayerFromColor(color shared.Color) *Player {
	for i := range b.Players {
		if b.Players[i].Color == color {
			return &b.Players[i]
		}
	}
	return nil
}

// CurrentPlayer is the player whose turn is running, or nil on a board
// without players.
func (b *Board) CurrentPlayer() *Player {
	if len(b.Players) == 0 {
		return nil
	}
	return &b.Players[b.Time.Turn%len(b.Players)]
}

func (b *Board) AddEvent(event Event) {
	b.Events = append(b.Events, event)
}

func (b *Board) HasCardOnBoard(card Card) bool {
	return b.Cards.Contains(card)
}

func (b *Board) HasAnyCardOnBoard(cards ...Card) bool {
	return b.Cards.ContainsAny(cards...)
}

// Tick advances the clock one movement. When the movement count
// reaches the current player's movements it cascades into a turn tick,
// and when the turn count reaches the player count, into a round tick.
// At each granularity the order is tiles, player(s), board cards,
// events, RNG stream.
func (b *Board) Tick() {
	logging.Info("movement tick", logging.Fields{
		"round": b.Time.Round, "turn": b.Time.Turn, "movement": b.Time.Movement,
	})
	b.Time.Movement++
	b.tickAll(shared.TickMovement)

	current := b.CurrentPlayer()
	if current == nil || b.Time.Movement != int(current.Movements) {
		return
	}
	logging.Info("turn tick", logging.Fields{
		"round": b.Time.Round, "turn": b.Time.Turn,
	})
	finished := current.ID
	b.Time.Movement = 0
	b.Time.Turn++
	b.tickAllFor(shared.TickTurn, b.PlayerFromID(finished))

	if b.Time.Turn != len(b.Players) {
		return
	}
	logging.Info("round tick", logging.Fields{"round": b.Time.Round})
	b.Time.Turn = 0
	b.Time.Round++
	b.tickAll(shared.TickRound)
}

func (b *Board) tickAll(tick shared.Tick) {
	b.tickAllFor(tick, b.CurrentPlayer())
}

// tickAllFor ages the board at one granularity. Round ticks reach
// every player; the other granularities only reach the given one.
func (b *Board) tickAllFor(tick shared.Tick, player *Player) {
	for i := range b.Tiles {
		b.Tiles[i].Tick(tick)
	}
	if tick == shared.TickRound {
		for i := range b.Players {
			b.Players[i].Tick(tick)
		}
	} else if player != nil {
		player.Tick(tick)
	}
	b.Cards.Tick(tick, PlaceOnBoard)
	b.Events.Tick(tick)
	switch tick {
	case shared.TickMovement:
		b.Rng.NextMovement()
	case shared.TickTurn:
		b.Rng.NextTurn()
	case shared.TickRound:
		b.Rng.NextRound()
	}
}

// FireDueEvents runs and removes every event whose countdown reached
// zero, in queue order. Ticking never fires events; callers decide
// when due events go off.
func (b *Board) FireDueEvents() []error {
	var due []Event
	kept := b.Events[:0]
	for _, event := range b.Events {
		if event.IsDue() {
			due = append(due, event)
			continue
		}
		kept = append(kept, event)
	}
	b.Events = kept

	var errs []error
	for _, event := range due {
		for _, fn := range event.Functions {
			if err := fn.Act(b); err != nil {
				errs = append(errs, fmt.Errorf("event %q: %w", event.Name, err))
			}
		}
	}
	return errs
}
