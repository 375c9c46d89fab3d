/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package board holds the composition board representation: two
// bitboards, movers and capturables, plus a per-square piece kind
// array. Unlike the engine's Position there is no Zobrist key,
// castling rights, en-passant square or move history - a composition
// has none of those, and a solved line is never unwound, only
// replayed by cloning the board before each trial move.
package board

import (
	"strings"

	"github.com/frankkopp/caissa/internal/attacks"
	"github.com/frankkopp/caissa/pkg/types"
)

// Piece describes one piece to be placed on an empty board.
type Piece struct {
	Kind   types.PieceKind
	Square types.Square
	Colour types.PieceColour
}

// Board is a composition position: the side to move plus the two
// bitboards movers and capturables. A square belongs to movers when
// it carries a piece the side to move may move (its own or a Neutral
// one), and to capturables when it carries a piece that could be
// captured by the side to move (the opponent's or a Neutral one) -
// see FlipSide. A square in both sets carries a Neutral piece.
type Board struct {
	sideToMove  types.Side
	kindAt      [64]types.PieceKind
	movers      types.Bitboard
	capturables types.Bitboard
}

// New builds a Board from a list of placements and the side to move.
// movers/capturables are derived from each placement's colour via the
// can_move/capturable relations: a piece is a mover when its colour is
// side_to_move or Neutral, and a capturable when its colour is the
// opponent's or Neutral.
func New(pieces []Piece, sideToMove types.Side) *Board {
	b := &Board{sideToMove: sideToMove}
	for i := range b.kindAt {
		b.kindAt[i] = types.PkNone
	}
	for _, p := range pieces {
		b.kindAt[p.Square] = p.Kind
		if types.CanMove(sideToMove, p.Colour) {
			b.movers.PushSquare(p.Square)
		}
		if types.Capturable(sideToMove, p.Colour) {
			b.capturables.PushSquare(p.Square)
		}
	}
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// SideToMove returns the side currently to move.
func (b *Board) SideToMove() types.Side {
	return b.sideToMove
}

// Movers returns the bitboard of squares the side to move could
// legally move a piece from (before filtering for check).
func (b *Board) Movers() types.Bitboard {
	return b.movers
}

// Capturables returns the bitboard of squares carrying a piece the
// side to move could capture.
func (b *Board) Capturables() types.Bitboard {
	return b.capturables
}

// Occupied returns every occupied square.
func (b *Board) Occupied() types.Bitboard {
	return b.movers | b.capturables
}

// Friendlies returns the squares carrying a piece that belongs
// strictly to the side to move (movers but not capturable).
func (b *Board) Friendlies() types.Bitboard {
	return b.movers &^ b.capturables
}

// Unfriendlies returns the squares carrying a piece belonging
// strictly to the opponent (capturable but not a mover).
func (b *Board) Unfriendlies() types.Bitboard {
	return b.capturables &^ b.movers
}

// Neutrals returns the squares carrying a neutral piece.
func (b *Board) Neutrals() types.Bitboard {
	return b.movers & b.capturables
}

// KindAt returns the piece kind occupying sq, or PkNone if empty.
func (b *Board) KindAt(sq types.Square) types.PieceKind {
	return b.kindAt[sq]
}

// ApplyMove mutates the board to reflect playing m. The caller is
// responsible for only ever applying pseudo-legal moves generated
// against this same board state.
func (b *Board) ApplyMove(m types.Move) {
	from := m.From()
	to := m.To()

	wasNeutral := b.movers.Has(from) && b.capturables.Has(from)

	b.movers.PopSquare(from)
	b.capturables.PopSquare(from)
	b.movers.PopSquare(to)
	b.capturables.PopSquare(to)

	kind := m.Kind()
	if m.IsPromotion() {
		kind = m.Promotion()
	}
	b.kindAt[to] = kind
	b.kindAt[from] = types.PkNone

	b.movers.PushSquare(to)
	if wasNeutral {
		b.capturables.PushSquare(to)
	}
}

// FlipSide swaps movers and capturables and toggles the side to
// move. A square holding a neutral piece is in both sets, so the
// swap leaves it unchanged - a neutral piece is always a mover and
// always capturable, for either side.
func (b *Board) FlipSide() {
	b.movers, b.capturables = b.capturables, b.movers
	b.sideToMove = b.sideToMove.Flip()
}

// KingThreatenedNow reports whether some mover of the side to move
// could, given the current occupancy, reach a square carrying an
// unfriendly king. It does not consider whose turn it actually is to
// capture that king - callers that need "is the side to move's own
// king in check" call this after FlipSide on a clone.
func (b *Board) KingThreatenedNow() bool {
	unfriendlyKings := types.BbZero
	rest := b.Unfriendlies()
	for rest != types.BbZero {
		sq := rest.PopLsb()
		if b.kindAt[sq] == types.King {
			unfriendlyKings.PushSquare(sq)
		}
	}
	if unfriendlyKings == types.BbZero {
		return false
	}

	occupied := b.Occupied()
	movers := b.movers
	for movers != types.BbZero {
		from := movers.PopLsb()
		if attacks.Moves(b.kindAt[from], b.sideToMove, from, occupied)&unfriendlyKings != types.BbZero {
			return true
		}
	}
	return false
}

// String renders the board as one line per rank, all eight ranks,
// high rank first, for debugging.
func (b *Board) String() string {
	var s strings.Builder
	for r := types.Rank8; ; r-- {
		for f := types.FileA; f <= types.FileH; f++ {
			sq := types.SquareOf(f, r)
			k := b.kindAt[sq]
			if k == types.PkNone {
				s.WriteString(".")
				continue
			}
			letter := k.Char()
			if b.capturables.Has(sq) && !b.movers.Has(sq) {
				letter = strings.ToLower(letter)
			}
			s.WriteString(letter)
		}
		s.WriteString("\n")
		if r == types.Rank1 {
			break
		}
	}
	return s.String()
}
