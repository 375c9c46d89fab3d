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

// Package attacks dispatches to the precomputed leaper and magic
// bitboard attack tables in pkg/types. Unlike the engine's Attacks
// type this holds no per-position cache: a composition board is
// cloned and mutated on every ply rather than searched alongside a
// Zobrist key, so there is nothing durable to memoize against.
package attacks

import "github.com/frankkopp/caissa/pkg/types"

// Moves returns the squares a piece of kind k, belonging to side, on
// square sq may reach given the current occupancy - ignoring whether
// the destination square is friendly or capturable. The move
// generator applies that filter itself from the board's movers and
// capturables sets.
func Moves(k types.PieceKind, side types.Side, sq types.Square, occupied types.Bitboard) types.Bitboard {
	switch k {
	case types.Pawn:
		return pawnMoves(side, sq, occupied)
	case types.Bishop, types.Rook, types.Queen, types.Knight, types.King:
		return types.GetAttacksBb(k, sq, occupied)
	default:
		return types.BbZero
	}
}

// pawnMoves returns a pawn's pseudo-legal destinations: forward push,
// double push from the start rank when unblocked, and diagonal
// captures. Diagonal destinations are filtered to occupied squares
// here, since - unlike sliders and leapers - a pawn cannot move
// diagonally without capturing; as with every other kind, dropping
// friendly-occupied squares is left to the move generator.
func pawnMoves(side types.Side, sq types.Square, occupied types.Bitboard) types.Bitboard {
	dir := side.MoveDirection()
	moves := types.BbZero

	one := sq.To(dir)
	if one == types.SqNone || occupied.Has(one) {
		return moves | (types.GetPawnAttacks(side, sq) & occupied)
	}
	moves |= types.PushSquare(types.BbZero, one)

	if sq.RankOf() == side.PawnStartRank() {
		two := one.To(dir)
		if two != types.SqNone && !occupied.Has(two) {
			moves |= types.PushSquare(types.BbZero, two)
		}
	}

	moves |= types.GetPawnAttacks(side, sq) & occupied
	return moves
}
