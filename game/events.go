package game

import (
	"fmt"

	"carlettos_chess/shared"
)

// Events is the board's pending event queue, in insertion order.
type Events []Event

func (es Events) Tick(tick shared.Tick) {
	for i := range es {
		es[i].Tick(tick)
	}
}

// Event is a named batch of functions that becomes due when its
// countdown reaches zero. Pos is an optional anchor for display.
type Event struct {
	Name      string          `json:"name"`
	Time      shared.Time     `json:"time"`
	Pos       *shared.Pos     `json:"pos,omitempty"`
	Functions []EventFunction `json:"functions"`
}

func NewEvent(name string, functions ...EventFunction) Event {
	return Event{Name: name, Time: shared.Turns(1), Functions: functions}
}

func EventWithTime(name string, time shared.Time, functions ...EventFunction) Event {
	return Event{Name: name, Time: time, Functions: functions}
}

func EventWithPos(name string, pos shared.Pos, functions ...EventFunction) Event {
	return Event{Name: name, Time: shared.Turns(1), Pos: &pos, Functions: functions}
}

func FullEvent(name string, time shared.Time, pos shared.Pos, functions ...EventFunction) Event {
	return Event{Name: name, Time: time, Pos: &pos, Functions: functions}
}

func (e *Event) Tick(tick shared.Tick) {
	e.Time.OnTick(tick)
}

func (e *Event) IsDue() bool { return e.Time.IsZero() }

type EventFunctionKind uint8

const (
	EventNothing EventFunctionKind = iota
	EventTakeCard
	EventShuffleDeck
	EventApplyEffect
)

func (k EventFunctionKind) String() string {
	switch k {
	case EventNothing:
		return "nothing"
	case EventTakeCard:
		return "take_card"
	case EventShuffleDeck:
		return "shuffle_deck"
	case EventApplyEffect:
		return "apply_effect"
	default:
		return fmt.Sprintf("event_function(%d)", k)
	}
}

// EventFunction is one deferred board mutation. Kind selects which
// fields are meaningful.
type EventFunction struct {
	Kind   EventFunctionKind `json:"kind"`
	Player int               `json:"player,omitempty"`
	Effect Effect            `json:"effect,omitempty"`
	Origin shared.Pos        `json:"origin,omitempty"`
	Filter *FilterFunction   `json:"filter,omitempty"`
}

func Nothing() EventFunction { return EventFunction{Kind: EventNothing} }

func TakeCard(playerID int) EventFunction {
	return EventFunction{Kind: EventTakeCard, Player: playerID}
}

func ShuffleDeck(playerID int) EventFunction {
	return EventFunction{Kind: EventShuffleDeck, Player: playerID}
}

// ApplyEffect adds the effect to every piece the filter accepts,
// measured from origin. The origin tile itself is skipped.
func ApplyEffect(effect Effect, origin shared.Pos, filter FilterFunction) EventFunction {
	return EventFunction{Kind: EventApplyEffect, Effect: effect, Origin: origin, Filter: &filter}
}

func (f EventFunction) Act(b *Board) error {
	switch f.Kind {
	case EventNothing:
		return nil
	case EventTakeCard:
		player := b.PlayerFromID(f.Player)
		if player == nil {
			return ErrPlayerNotFound
		}
		return player.TakeFromDeck()
	case EventShuffleDeck:
		player := b.PlayerFromID(f.Player)
		if player == nil {
			return ErrPlayerNotFound
		}
		player.Deck.Shuffle(&b.Rng.Turn)
		return nil
	case EventApplyEffect:
		if f.Filter == nil {
			return nil
		}
		for _, pos := range b.PosVecFromPattern(f.Origin, func(from, to shared.Pos) bool {
			return f.Filter.Matches(b, from, to)
		}) {
			if data := b.Data(pos); data != nil {
				data.AddEffect(f.Effect)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: event function %d", ErrUnknownAction, f.Kind)
	}
}

type FilterKind uint8

const (
	FilterSquare FilterKind = iota
	FilterCross
	FilterIsType
	FilterIsNotType
	FilterIsColor
	FilterIsNotColor
	FilterHasEffect
	FilterPair
	FilterTrio
)

func (k FilterKind) String() string {
	switch k {
	case FilterSquare:
		return "square"
	case FilterCross:
		return "cross"
	case FilterIsType:
		return "is_type"
	case FilterIsNotType:
		return "is_not_type"
	case FilterIsColor:
		return "is_color"
	case FilterIsNotColor:
		return "is_not_color"
	case FilterHasEffect:
		return "has_effect"
	case FilterPair:
		return "pair"
	case FilterTrio:
		return "trio"
	default:
		return fmt.Sprintf("filter(%d)", k)
	}
}

// FilterFunction selects board positions relative to an origin.
// Pair and Trio are conjunctions of their sub-filters.
type FilterFunction struct {
	Kind   FilterKind       `json:"kind"`
	Range  int              `json:"range,omitempty"`
	Type   Type             `json:"type,omitempty"`
	Color  shared.Color     `json:"color,omitempty"`
	Effect EffectKind       `json:"effect,omitempty"`
	Subs   []FilterFunction `json:"subs,omitempty"`
}

func SquareFilter(r int) FilterFunction { return FilterFunction{Kind: FilterSquare, Range: r} }

func CrossFilter(r int) FilterFunction { return FilterFunction{Kind: FilterCross, Range: r} }

func IsTypeFilter(t Type) FilterFunction { return FilterFunction{Kind: FilterIsType, Type: t} }

func IsNotTypeFilter(t Type) FilterFunction { return FilterFunction{Kind: FilterIsNotType, Type: t} }

func IsColorFilter(c shared.Color) FilterFunction {
	return FilterFunction{Kind: FilterIsColor, Color: c}
}

func IsNotColorFilter(c shared.Color) FilterFunction {
	return FilterFunction{Kind: FilterIsNotColor, Color: c}
}

func HasEffectFilter(kind EffectKind) FilterFunction {
	return FilterFunction{Kind: FilterHasEffect, Effect: kind}
}

func PairFilter(a, b FilterFunction) FilterFunction {
	return FilterFunction{Kind: FilterPair, Subs: []FilterFunction{a, b}}
}

func TrioFilter(a, b, c FilterFunction) FilterFunction {
	return FilterFunction{Kind: FilterTrio, Subs: []FilterFunction{a, b, c}}
}

func (f FilterFunction) Matches(board *Board, from, to shared.Pos) bool {
	switch f.Kind {
	case FilterSquare:
		return squareRange(from, to, f.Range)
	case FilterCross:
		return crossRange(from, to, f.Range)
	case FilterIsType:
		piece := board.PieceAt(to)
		return piece != nil && piece.IsType(f.Type)
	case FilterIsNotType:
		piece := board.PieceAt(to)
		return piece != nil && !piece.IsType(f.Type)
	case FilterIsColor:
		data := board.Data(to)
		return data != nil && data.Color == f.Color
	case FilterIsNotColor:
		data := board.Data(to)
		return data != nil && data.Color != f.Color
	case FilterHasEffect:
		data := board.Data(to)
		return data != nil && data.HasEffect(f.Effect)
	case FilterPair, FilterTrio:
		for _, sub := range f.Subs {
			if !sub.Matches(board, from, to) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
