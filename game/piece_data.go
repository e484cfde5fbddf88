package game

import (
	"fmt"

	"carlettos_chess/shared"
)

type TypeKind uint8

const (
	TypeBiologic TypeKind = iota
	TypeStructure
	TypeTransportable
	TypeImpenetrable
	TypeImmune
	TypeHeroic
	TypeDemonic
	TypeTough
	TypeDead
)

func (k TypeKind) String() string {
	switch k {
	case TypeBiologic:
		return "biologic"
	case TypeStructure:
		return "structure"
	case TypeTransportable:
		return "transportable"
	case TypeImpenetrable:
		return "impenetrable"
	case TypeImmune:
		return "immune"
	case TypeHeroic:
		return "heroic"
	case TypeDemonic:
		return "demonic"
	case TypeTough:
		return "tough"
	case TypeDead:
		return "dead"
	default:
		return fmt.Sprintf("type(%d)", k)
	}
}

func ParseTypeKind(s string) (TypeKind, bool) {
	switch s {
	case "biologic":
		return TypeBiologic, true
	case "structure":
		return TypeStructure, true
	case "transportable":
		return TypeTransportable, true
	case "impenetrable":
		return TypeImpenetrable, true
	case "immune":
		return TypeImmune, true
	case "heroic":
		return TypeHeroic, true
	case "demonic":
		return TypeDemonic, true
	case "tough":
		return TypeTough, true
	case "dead":
		return TypeDead, true
	default:
		return TypeBiologic, false
	}
}

func (k TypeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *TypeKind) UnmarshalText(text []byte) error {
	parsed, ok := ParseTypeKind(string(text))
	if !ok {
		return fmt.Errorf("invalid type kind %q", string(text))
	}
	*k = parsed
	return nil
}

// Type is an intrinsic trait of a piece. Value is the weight of a
// transportable, the strength of an impenetrable or the life of a
// tough piece; it is zero for the rest.
type Type struct {
	Kind  TypeKind `json:"kind"`
	Value int      `json:"value,omitempty"`
}

func Biologic() Type         { return Type{Kind: TypeBiologic} }
func Structure() Type        { return Type{Kind: TypeStructure} }
func Transportable(w int) Type { return Type{Kind: TypeTransportable, Value: w} }
func Impenetrable(s int) Type  { return Type{Kind: TypeImpenetrable, Value: s} }
func Immune() Type           { return Type{Kind: TypeImmune} }
func Heroic() Type           { return Type{Kind: TypeHeroic} }
func Demonic() Type          { return Type{Kind: TypeDemonic} }
func Tough(life int) Type    { return Type{Kind: TypeTough, Value: life} }
func Dead() Type             { return Type{Kind: TypeDead} }

func (t Type) CanDo(Action) bool { return true }

func (t Type) CanBe(action Action) bool {
	switch t.Kind {
	case TypeImmune:
		return !action.IsAbility()
	case TypeHeroic:
		return !action.IsAttack()
	default:
		return true
	}
}

func (t Type) OnDo(Action) {}

func (t Type) OnBe(action Action) {
	switch t.Kind {
	case TypeDemonic:
		// TODO: refund mana to the owner when a demonic piece dies.
	case TypeTough:
		// TODO: decrement life via the Taken property instead of dying.
	}
}

type EffectKind uint8

const (
	EffectDeactivate EffectKind = iota
	EffectFire
	EffectIce
	EffectInvulnerability
)

func (k EffectKind) String() string {
	switch k {
	case EffectDeactivate:
		return "deactivate"
	case EffectFire:
		return "fire"
	case EffectIce:
		return "ice"
	case EffectInvulnerability:
		return "invulnerability"
	default:
		return fmt.Sprintf("effect(%d)", k)
	}
}

func ParseEffectKind(s string) (EffectKind, bool) {
	switch s {
	case "deactivate":
		return EffectDeactivate, true
	case "fire":
		return EffectFire, true
	case "ice":
		return EffectIce, true
	case "invulnerability":
		return EffectInvulnerability, true
	default:
		return EffectDeactivate, false
	}
}

func (k EffectKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *EffectKind) UnmarshalText(text []byte) error {
	parsed, ok := ParseEffectKind(string(text))
	if !ok {
		return fmt.Errorf("invalid effect kind %q", string(text))
	}
	*k = parsed
	return nil
}

// Effect is a transient condition on a piece. Duration counts down on
// every tick granularity it carries; an effect with zero duration is
// dropped on the next piece tick.
type Effect struct {
	Kind     EffectKind  `json:"kind"`
	Duration shared.Time `json:"duration"`
}

func Deactivate() Effect      { return Effect{Kind: EffectDeactivate, Duration: shared.Rounds(6)} }
func Fire() Effect            { return Effect{Kind: EffectFire, Duration: shared.Rounds(5)} }
func Ice() Effect             { return Effect{Kind: EffectIce, Duration: shared.Rounds(3)} }
func Invulnerability() Effect { return Effect{Kind: EffectInvulnerability, Duration: shared.Rounds(3)} }

func (e Effect) CanDo(Action) bool {
	switch e.Kind {
	case EffectDeactivate, EffectIce:
		return false
	default:
		return true
	}
}

func (e Effect) CanBe(Action) bool {
	return e.Kind != EffectInvulnerability
}

type PropertyKind uint8

const (
	PropertyAbilityUsed PropertyKind = iota
	PropertyTaken
	PropertyPieces
	PropertyStrength
)

func (k PropertyKind) String() string {
	switch k {
	case PropertyAbilityUsed:
		return "ability_used"
	case PropertyTaken:
		return "taken"
	case PropertyPieces:
		return "pieces"
	case PropertyStrength:
		return "strength"
	default:
		return fmt.Sprintf("property(%d)", k)
	}
}

// Property is mutable per-piece bookkeeping: a once-per-game ability
// flag, a taken counter, a carried piece list or a strength rating.
type Property struct {
	Kind   PropertyKind `json:"kind"`
	Flag   bool         `json:"flag,omitempty"`
	Count  int          `json:"count,omitempty"`
	Pieces []Piece      `json:"pieces,omitempty"`
}

func AbilityUsed(used bool) Property { return Property{Kind: PropertyAbilityUsed, Flag: used} }
func Taken(times int) Property      { return Property{Kind: PropertyTaken, Count: times} }
func Strength(s int) Property       { return Property{Kind: PropertyStrength, Count: s} }
func CarriedPieces(pieces ...Piece) Property {
	return Property{Kind: PropertyPieces, Pieces: pieces}
}

type Types []Type

func (ts Types) CanDo(action Action) bool {
	for _, t := range ts {
		if !t.CanDo(action) {
			return false
		}
	}
	return true
}

func (ts Types) CanBe(action Action) bool {
	for _, t := range ts {
		if !t.CanBe(action) {
			return false
		}
	}
	return true
}

func (ts Types) OnDo(action Action) {
	for _, t := range ts {
		t.OnDo(action)
	}
}

func (ts Types) OnBe(action Action) {
	for _, t := range ts {
		t.OnBe(action)
	}
}

type Effects []Effect

func (es Effects) CanDo(action Action) bool {
	for _, e := range es {
		if !e.CanDo(action) {
			return false
		}
	}
	return true
}

func (es Effects) CanBe(action Action) bool {
	for _, e := range es {
		if !e.CanBe(action) {
			return false
		}
	}
	return true
}

type Properties []Property

func (ps Properties) HasUsedAbility() bool {
	for _, p := range ps {
		if p.Kind == PropertyAbilityUsed && p.Flag {
			return true
		}
	}
	return false
}

func (ps Properties) MarkAbilityUsed() {
	for i := range ps {
		if ps[i].Kind == PropertyAbilityUsed {
			ps[i].Flag = true
		}
	}
}

func (ps Properties) TakenTimes() int {
	times := 0
	for _, p := range ps {
		if p.Kind == PropertyTaken {
			times += p.Count
		}
	}
	return times
}

func (ps Properties) Strength() int {
	strength := 0
	for _, p := range ps {
		if p.Kind == PropertyStrength {
			strength += p.Count
		}
	}
	return strength
}

func (ps Properties) ContainsPiece(kind PieceKind) bool {
	for _, p := range ps {
		if p.Kind != PropertyPieces {
			continue
		}
		for _, piece := range p.Pieces {
			if piece.Kind == kind {
				return true
			}
		}
	}
	return false
}

// PieceData is the state every real piece carries. A nil PieceData
// means the tile is empty.
type PieceData struct {
	Moved      bool        `json:"moved"`
	Cooldown   shared.Time `json:"cooldown"`
	Color      shared.Color `json:"color"`
	Types      Types       `json:"types"`
	Effects    Effects     `json:"effects"`
	Properties Properties  `json:"properties"`
}

func NewPieceData(color shared.Color, types ...Type) *PieceData {
	return &PieceData{Color: color, Types: types}
}

func NewPieceDataWithProps(color shared.Color, types []Type, properties []Property) *PieceData {
	return &PieceData{Color: color, Types: types, Properties: properties}
}

func (d *PieceData) CanDo(action Action) bool {
	return d.Types.CanDo(action) && d.Effects.CanDo(action)
}

func (d *PieceData) CanBe(action Action) bool {
	return d.Types.CanBe(action) && d.Effects.CanBe(action)
}

func (d *PieceData) OnDo(action Action) {
	d.Types.OnDo(action)
}

func (d *PieceData) OnBe(action Action) {
	d.Types.OnBe(action)
}

func (d *PieceData) Strength() int { return d.Properties.Strength() }

func (d *PieceData) AddEffect(effect Effect) {
	d.Effects = append(d.Effects, effect)
}

func (d *PieceData) HasEffect(kind EffectKind) bool {
	for _, e := range d.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Tick ages the cooldown and every effect, dropping effects whose
// duration reached zero before this tick.
func (d *PieceData) Tick(tick shared.Tick) {
	kept := d.Effects[:0]
	for _, e := range d.Effects {
		if e.Duration.IsZero() {
			continue
		}
		e.Duration.OnTick(tick)
		kept = append(kept, e)
	}
	d.Effects = kept
	d.Cooldown.OnTick(tick)
}
