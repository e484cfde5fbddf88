package game

import (
	"fmt"

	"carlettos_chess/shared"
)

type PieceKind uint8

const (
	NoPiece PieceKind = iota

	// Default pieces
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	// Custom starting pieces
	Archer
	Ballista
	Builder
	Cannon
	Catapult
	CrazyPawn
	Magician
	Paladin
	Ram
	ShieldBearer
	Ship
	SuperPawn
	TeslaTower
	Wall
	Warlock

	// Demonic pieces
	Portal
)

var pieceKindNames = map[PieceKind]string{
	NoPiece:      "none",
	Pawn:         "pawn",
	Knight:       "knight",
	Bishop:       "bishop",
	Rook:         "rook",
	Queen:        "queen",
	King:         "king",
	Archer:       "archer",
	Ballista:     "ballista",
	Builder:      "builder",
	Cannon:       "cannon",
	Catapult:     "catapult",
	CrazyPawn:    "crazy_pawn",
	Magician:     "magician",
	Paladin:      "paladin",
	Ram:          "ram",
	ShieldBearer: "shield_bearer",
	Ship:         "ship",
	SuperPawn:    "super_pawn",
	TeslaTower:   "tesla_tower",
	Wall:         "wall",
	Warlock:      "warlock",
	Portal:       "portal",
}

func (k PieceKind) String() string {
	if name, ok := pieceKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("piece(%d)", k)
}

func ParsePieceKind(s string) (PieceKind, bool) {
	for kind, name := range pieceKindNames {
		if name == s {
			return kind, true
		}
	}
	return NoPiece, false
}

func (k PieceKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *PieceKind) UnmarshalText(text []byte) error {
	parsed, ok := ParsePieceKind(string(text))
	if !ok {
		return fmt.Errorf("invalid piece kind %q", string(text))
	}
	*k = parsed
	return nil
}

// Piece is a kind plus its per-piece state. The zero value is the
// empty piece; its Data is nil.
type Piece struct {
	Kind PieceKind  `json:"kind"`
	Data *PieceData `json:"data,omitempty"`
}

func (p Piece) IsNone() bool { return p.Kind == NoPiece }

func (p Piece) Color() (shared.Color, bool) {
	if p.Data == nil {
		return shared.White, false
	}
	return p.Data.Color, true
}

func (p Piece) hasType(kind TypeKind) bool {
	if p.Data == nil {
		return false
	}
	for _, t := range p.Data.Types {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

func (p Piece) IsBiologic() bool  { return p.hasType(TypeBiologic) }
func (p Piece) IsStructure() bool { return p.hasType(TypeStructure) }
func (p Piece) IsImmune() bool    { return p.hasType(TypeImmune) }
func (p Piece) IsHeroic() bool    { return p.hasType(TypeHeroic) }
func (p Piece) IsDemonic() bool   { return p.hasType(TypeDemonic) }
func (p Piece) IsDead() bool      { return p.hasType(TypeDead) }

// IsTransportable reports whether the piece can be carried by a
// transport of the given capacity.
func (p Piece) IsTransportable(maxWeight int) bool {
	if p.Data == nil {
		return false
	}
	for _, t := range p.Data.Types {
		if t.Kind == TypeTransportable && t.Value <= maxWeight {
			return true
		}
	}
	return false
}

// IsImpenetrable reports whether the piece stops abilities of the
// given strength.
func (p Piece) IsImpenetrable(minStrength int) bool {
	if p.Data == nil {
		return false
	}
	for _, t := range p.Data.Types {
		if t.Kind == TypeImpenetrable && t.Value >= minStrength {
			return true
		}
	}
	return false
}

func (p Piece) IsTough(maxLife int) bool {
	if p.Data == nil {
		return false
	}
	for _, t := range p.Data.Types {
		if t.Kind == TypeTough && t.Value <= maxLife {
			return true
		}
	}
	return false
}

func (p Piece) IsType(t Type) bool {
	switch t.Kind {
	case TypeTransportable:
		return p.IsTransportable(t.Value)
	case TypeImpenetrable:
		return p.IsImpenetrable(t.Value)
	case TypeTough:
		return p.IsTough(t.Value)
	default:
		return p.hasType(t.Kind)
	}
}

func (p *Piece) AddType(t Type) {
	if p.Data == nil {
		return
	}
	p.Data.Types = append(p.Data.Types, t)
}

// capability is the per-kind behavior table entry. A nil predicate
// means the kind can never perform that action; a nil ability means
// the kind has none.
type capability struct {
	move    func(b *Board, color shared.Color, from, to shared.Pos) bool
	take    func(b *Board, color shared.Color, from, to shared.Pos) bool
	attack  func(b *Board, color shared.Color, from, to shared.Pos) bool
	ability Ability
}

func plain(pattern func(from, to shared.Pos) bool) func(*Board, shared.Color, shared.Pos, shared.Pos) bool {
	return func(_ *Board, _ shared.Color, from, to shared.Pos) bool {
		return pattern(from, to)
	}
}

func onBoard(pattern func(b *Board, from, to shared.Pos) bool) func(*Board, shared.Color, shared.Pos, shared.Pos) bool {
	return func(b *Board, _ shared.Color, from, to shared.Pos) bool {
		return pattern(b, from, to)
	}
}

var capabilities map[PieceKind]capability

func init() {
	capabilities = map[PieceKind]capability{
		Pawn: {
			move:    pawnMove,
			take:    pawnTake,
			ability: pawnAbility{},
		},
		Knight: {
			move:    plain(knightMove),
			take:    plain(knightMove),
			ability: knightAbility{},
		},
		Bishop: {
			move:    onBoard(bishopMove),
			take:    onBoard(bishopMove),
			ability: bishopAbility{},
		},
		Rook: {
			move:    onBoard(rookMove),
			take:    onBoard(rookMove),
			ability: rookAbility{},
		},
		Queen: {
			move:    onBoard(queenMove),
			take:    onBoard(queenMove),
			ability: queenAbility{},
		},
		King: {
			move:    plain(kingMove),
			take:    plain(kingMove),
			ability: kingAbility{},
		},
		Archer: {
			move: plain(archerMove),
			attack: func(_ *Board, _ shared.Color, from, to shared.Pos) bool {
				return squareRange(from, to, 4)
			},
		},
		Ballista: {
			move: plain(structureMove),
			attack: func(b *Board, color shared.Color, from, to shared.Pos) bool {
				strength := 0
				if data := b.Data(from); data != nil {
					strength = data.Strength()
				}
				return blockeableCross(b, color, from, to, 6, strength)
			},
		},
		Builder: {
			move: plain(magicianMove),
			take: func(_ *Board, _ shared.Color, from, to shared.Pos) bool {
				return crossRange(from, to, 1)
			},
			ability: builderAbility{},
		},
		Cannon: {
			move: plain(structureMove),
			attack: func(_ *Board, _ shared.Color, from, to shared.Pos) bool {
				return squareRange(from, to, 3)
			},
		},
		Catapult: {
			move:    plain(structureMove),
			ability: catapultAbility{},
		},
		CrazyPawn: {
			move:    onBoard(crazyPawnMove),
			take:    onBoard(crazyPawnMove),
			ability: crazyPawnAbility{},
		},
		Magician: {
			move:    plain(magicianMove),
			ability: magicianAbility{},
		},
		Paladin: {
			move:    onBoard(queenMove),
			take:    onBoard(queenMove),
			ability: paladinAbility{},
		},
		Ram: {
			move:    plain(structureMove),
			ability: ramAbility{},
		},
		ShieldBearer: {
			move:    pawnMove,
			take:    pawnTake,
			ability: shieldBearerAbility{},
		},
		Ship: {
			move:    plain(magicianMove),
			take:    plain(kingMove),
			ability: shipAbility{},
		},
		SuperPawn: {
			move:    superPawnMove,
			take:    superPawnTake,
			ability: superPawnAbility{},
		},
		TeslaTower: {
			move:    plain(magicianMove),
			take:    plain(structureMove),
			ability: teslaTowerAbility{},
		},
		Wall: {},
		Warlock: {
			move:    plain(magicianMove),
			ability: warlockAbility{},
		},
		Portal: {
			ability: portalAbility{},
		},
	}
}

// AbilityOf returns the ability registered for the kind, or nil.
func AbilityOf(kind PieceKind) Ability {
	return capabilities[kind].ability
}

// CanDo reports whether the piece may perform the action. It checks
// the type and effect vetoes first, then the per-kind pattern. For
// abilities it additionally requires an elapsed cooldown, enough mana
// on the owning player, an unspent once-per-game flag and the
// ability's own precondition.
func (p Piece) CanDo(b *Board, action Action) bool {
	if p.Data == nil {
		return false
	}
	if !p.Data.CanDo(action) {
		return false
	}
	caps := capabilities[p.Kind]
	switch action.Kind {
	case ActionMove:
		return caps.move != nil && caps.move(b, p.Data.Color, action.From, action.To)
	case ActionTake:
		return caps.take != nil && caps.take(b, p.Data.Color, action.From, action.To)
	case ActionAttack:
		return caps.attack != nil && caps.attack(b, p.Data.Color, action.From, action.To)
	case ActionAbility:
		if caps.ability == nil {
			return false
		}
		if !p.Data.Cooldown.IsZero() {
			return false
		}
		if p.Data.Properties.HasUsedAbility() {
			return false
		}
		if player := b.PlayerFromColor(p.Data.Color); player == nil || player.Mana < caps.ability.Data().Cost {
			return false
		}
		return caps.ability.CanUse(b, action.From, action.Info)
	default:
		return false
	}
}

// CanBe reports whether the piece may be the target of the action.
// Empty pieces can be targeted by anything.
func (p Piece) CanBe(action Action) bool {
	if p.Data == nil {
		return true
	}
	return p.Data.CanBe(action)
}

func (p Piece) Tick(tick shared.Tick) {
	if p.Data == nil {
		return
	}
	p.Data.Tick(tick)
}

func NewPawn(color shared.Color) Piece {
	return Piece{Kind: Pawn, Data: NewPieceData(color, Biologic(), Transportable(2))}
}

func NewKnight(color shared.Color) Piece {
	return Piece{Kind: Knight, Data: NewPieceData(color, Biologic(), Transportable(4))}
}

func NewBishop(color shared.Color) Piece {
	return Piece{Kind: Bishop, Data: NewPieceData(color, Biologic(), Transportable(3))}
}

func NewRook(color shared.Color) Piece {
	return Piece{Kind: Rook, Data: NewPieceData(color, Structure())}
}

func NewQueen(color shared.Color) Piece {
	return Piece{Kind: Queen, Data: NewPieceData(color, Biologic(), Heroic())}
}

func NewKing(color shared.Color) Piece {
	return Piece{Kind: King, Data: NewPieceDataWithProps(color,
		[]Type{Biologic(), Heroic(), Immune()},
		[]Property{AbilityUsed(false)})}
}

func NewArcher(color shared.Color) Piece {
	return Piece{Kind: Archer, Data: NewPieceData(color, Biologic(), Transportable(3))}
}

func NewBallista(color shared.Color) Piece {
	return Piece{Kind: Ballista, Data: NewPieceDataWithProps(color,
		[]Type{Structure()},
		[]Property{Strength(3)})}
}

func NewBuilder(color shared.Color) Piece {
	return Piece{Kind: Builder, Data: NewPieceData(color, Biologic(), Transportable(3))}
}

func NewCannon(color shared.Color) Piece {
	return Piece{Kind: Cannon, Data: NewPieceData(color, Structure())}
}

func NewCatapult(color shared.Color) Piece {
	return Piece{Kind: Catapult, Data: NewPieceData(color, Structure())}
}

func NewCrazyPawn(color shared.Color) Piece {
	return Piece{Kind: CrazyPawn, Data: NewPieceData(color, Biologic(), Transportable(2))}
}

func NewMagician(color shared.Color) Piece {
	return Piece{Kind: Magician, Data: NewPieceData(color, Biologic(), Transportable(4), Heroic(), Immune())}
}

func NewPaladin(color shared.Color) Piece {
	return Piece{Kind: Paladin, Data: NewPieceData(color, Biologic(), Transportable(4), Heroic(), Immune())}
}

func NewRam(color shared.Color) Piece {
	return Piece{Kind: Ram, Data: NewPieceDataWithProps(color,
		[]Type{Structure()},
		[]Property{Strength(2)})}
}

func NewShieldBearer(color shared.Color) Piece {
	return Piece{Kind: ShieldBearer, Data: NewPieceData(color, Biologic(), Transportable(2), Impenetrable(5))}
}

func NewShip(color shared.Color) Piece {
	return Piece{Kind: Ship, Data: NewPieceData(color, Structure())}
}

func NewSuperPawn(color shared.Color) Piece {
	return Piece{Kind: SuperPawn, Data: NewPieceData(color, Biologic(), Transportable(2))}
}

func NewTeslaTower(color shared.Color) Piece {
	return Piece{Kind: TeslaTower, Data: NewPieceData(color, Structure())}
}

func NewWall(color shared.Color) Piece {
	return Piece{Kind: Wall, Data: NewPieceData(color, Structure(), Impenetrable(2))}
}

func NewWarlock(color shared.Color) Piece {
	return Piece{Kind: Warlock, Data: NewPieceData(color, Transportable(5), Demonic(), Immune())}
}

func NewPortal(color shared.Color) Piece {
	return Piece{Kind: Portal, Data: NewPieceData(color, Structure())}
}
