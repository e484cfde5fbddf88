package game

import "carlettos_chess/shared"

// DefaultChessboard is the classic 8x8 opening position with the
// default two players.
func DefaultChessboard() *Board {
	b := WithShape(DefaultChessboardShape())
	back := []func(shared.Color) Piece{
		NewRook, NewKnight, NewBishop, NewQueen, NewKing, NewBishop, NewKnight, NewRook,
	}
	for x, constructor := range back {
		b.Get(shared.NewPos(x, 0)).Replace(constructor(shared.White))
		b.Get(shared.NewPos(x, 7)).Replace(constructor(shared.Black))
		b.Get(shared.NewPos(x, 1)).Replace(NewPawn(shared.White))
		b.Get(shared.NewPos(x, 6)).Replace(NewPawn(shared.Black))
	}
	return b
}

// CChessboard is the full 16x17 opening position. Both players start
// with five mana, three movement cards in the deck and one in hand.
// The four corner-adjacent magic tiles are where warlocks open
// portals.
func CChessboard() *Board {
	white := NewPlayer(shared.White, 0, Cards{CardAddMovement, CardAddMovement, CardAddMovement})
	white.Hand.Add(CardAddMovement)
	white.Mana = 5

	black := NewPlayer(shared.Black, 1, Cards{CardAddMovement, CardAddMovement, CardAddMovement})
	black.Hand.Add(CardAddMovement)
	black.Mana = 5

	b := NewBoard(CChessboardShape(), []Player{white, black})

	for _, pos := range []shared.Pos{
		shared.NewPos(0, 7), shared.NewPos(0, 9),
		shared.NewPos(15, 7), shared.NewPos(15, 9),
	} {
		b.Get(pos).Magic = true
	}

	// Each row is symmetric: a piece at x mirrors at 15-x, white on
	// the south rows and black mirrored at 16-y.
	mirrored := func(x, y int, constructor func(shared.Color) Piece) {
		b.Get(shared.NewPos(x, y)).Replace(constructor(shared.White))
		b.Get(shared.NewPos(15-x, y)).Replace(constructor(shared.White))
		b.Get(shared.NewPos(x, 16-y)).Replace(constructor(shared.Black))
		b.Get(shared.NewPos(15-x, 16-y)).Replace(constructor(shared.Black))
	}
	single := func(x, y int, constructor func(shared.Color) Piece) {
		b.Get(shared.NewPos(x, y)).Replace(constructor(shared.White))
		b.Get(shared.NewPos(x, 16-y)).Replace(constructor(shared.Black))
	}

	mirrored(0, 0, NewCannon)
	mirrored(1, 0, NewRook)
	mirrored(2, 0, NewCatapult)
	mirrored(3, 0, NewKnight)
	mirrored(4, 0, NewWarlock)
	mirrored(5, 0, NewBishop)
	single(6, 0, NewMagician)
	single(7, 0, NewQueen)
	single(8, 0, NewKing)
	single(9, 0, NewPaladin)

	mirrored(0, 1, NewShip)
	mirrored(1, 1, NewTeslaTower)
	mirrored(2, 1, NewRam)
	mirrored(3, 1, NewBuilder)
	mirrored(4, 1, NewPawn)
	mirrored(5, 1, NewPawn)
	mirrored(6, 1, NewCrazyPawn)
	mirrored(7, 1, NewSuperPawn)

	mirrored(0, 2, NewBallista)
	mirrored(1, 2, NewArcher)
	mirrored(2, 2, NewArcher)
	mirrored(3, 2, NewShieldBearer)

	mirrored(0, 3, NewPawn)
	mirrored(1, 3, NewCrazyPawn)
	mirrored(2, 3, NewPawn)

	return b
}
