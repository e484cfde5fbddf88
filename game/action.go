package game

import (
	"fmt"

	"carlettos_chess/shared"
)

type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionTake
	ActionAttack
	ActionAbility
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionTake:
		return "take"
	case ActionAttack:
		return "attack"
	case ActionAbility:
		return "ability"
	default:
		return fmt.Sprintf("action(%d)", k)
	}
}

// Action is a request against the board. Move, Take and Attack carry a
// target position; Ability carries an Info payload instead.
type Action struct {
	Kind ActionKind `json:"kind"`
	From shared.Pos `json:"from"`
	To   shared.Pos `json:"to"`
	Info *Info      `json:"info,omitempty"`
}

func MoveAction(from, to shared.Pos) Action {
	return Action{Kind: ActionMove, From: from, To: to}
}

func TakeAction(from, to shared.Pos) Action {
	return Action{Kind: ActionTake, From: from, To: to}
}

func AttackAction(from, to shared.Pos) Action {
	return Action{Kind: ActionAttack, From: from, To: to}
}

func AbilityAction(from shared.Pos, info *Info) Action {
	return Action{Kind: ActionAbility, From: from, Info: info}
}

func (a Action) IsMove() bool    { return a.Kind == ActionMove }
func (a Action) IsTake() bool    { return a.Kind == ActionTake }
func (a Action) IsAttack() bool  { return a.Kind == ActionAttack }
func (a Action) IsAbility() bool { return a.Kind == ActionAbility }

type InfoKind uint8

const (
	InfoNone InfoKind = iota
	InfoPiece
	InfoPos
	InfoDirection
	InfoSubDirection
	InfoInteger
	InfoCatapult
	InfoPaladin
)

func (k InfoKind) String() string {
	switch k {
	case InfoNone:
		return "none"
	case InfoPiece:
		return "piece"
	case InfoPos:
		return "pos"
	case InfoDirection:
		return "direction"
	case InfoSubDirection:
		return "subdirection"
	case InfoInteger:
		return "integer"
	case InfoCatapult:
		return "catapult"
	case InfoPaladin:
		return "paladin"
	default:
		return fmt.Sprintf("info(%d)", k)
	}
}

// Info is the payload of an ability action. Kind selects which fields
// are meaningful; abilities reject payloads of the wrong kind with
// ErrWrongInfo.
type Info struct {
	Kind         InfoKind            `json:"kind"`
	Piece        Piece               `json:"piece,omitempty"`
	Pos          shared.Pos          `json:"pos,omitempty"`
	Direction    shared.Direction    `json:"direction,omitempty"`
	SubDirection shared.SubDirection `json:"subdirection,omitempty"`
	Distance     int                 `json:"distance,omitempty"`
	Paladin      PaladinInfo         `json:"paladin,omitempty"`
}

func NoInfo() *Info { return &Info{Kind: InfoNone} }

func PieceInfo(p Piece) *Info { return &Info{Kind: InfoPiece, Piece: p} }

func PosInfo(p shared.Pos) *Info { return &Info{Kind: InfoPos, Pos: p} }

func DirectionInfo(d shared.Direction) *Info { return &Info{Kind: InfoDirection, Direction: d} }

func SubDirectionInfo(sd shared.SubDirection) *Info {
	return &Info{Kind: InfoSubDirection, SubDirection: sd}
}

func IntegerInfo(n int) *Info { return &Info{Kind: InfoInteger, Distance: n} }

// CatapultInfo bundles the throw of a catapult: which adjacent piece to
// pick up (subdirection), where to launch it (direction) and how far.
func CatapultInfo(d shared.Direction, sd shared.SubDirection, distance int) *Info {
	return &Info{Kind: InfoCatapult, Direction: d, SubDirection: sd, Distance: distance}
}

func PaladinAbilityInfo(p PaladinInfo) *Info { return &Info{Kind: InfoPaladin, Paladin: p} }

type PaladinMode uint8

const (
	PaladinAttack PaladinMode = iota
	PaladinInvulnerability
	PaladinRevive
)

func (m PaladinMode) String() string {
	switch m {
	case PaladinAttack:
		return "attack"
	case PaladinInvulnerability:
		return "invulnerability"
	case PaladinRevive:
		return "revive"
	default:
		return fmt.Sprintf("paladin(%d)", m)
	}
}

// PaladinInfo selects one of the paladin's three card-bound abilities
// and its target tile.
type PaladinInfo struct {
	Mode PaladinMode `json:"mode"`
	To   shared.Pos  `json:"to"`
}
