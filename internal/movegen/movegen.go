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

// Package movegen produces the pseudo-legal move list for a board in
// a fixed, deterministic order. There is no staged generation here
// (captures first, then quiet moves, then the rest) as the engine
// does for move ordering - a composition solver tries every move
// until one refutes or completes the stipulation, so ordering by
// expected strength buys nothing.
package movegen

import (
	"github.com/frankkopp/caissa/internal/attacks"
	"github.com/frankkopp/caissa/internal/board"
	"github.com/frankkopp/caissa/pkg/types"
)

// Generate returns every pseudo-legal move for the side to move on b,
// in ascending from-square, then ascending to-square order. Pawn
// promotions are generated in the fixed order Bishop, Knight, Rook,
// Queen, matching types.PromotionKinds.
func Generate(b *board.Board) []types.Move {
	moves := make([]types.Move, 0, 32)
	occupied := b.Occupied()
	friendlies := b.Friendlies()
	side := b.SideToMove()

	movers := b.Movers()
	for movers != types.BbZero {
		from := movers.PopLsb()
		kind := b.KindAt(from)

		dest := attacks.Moves(kind, side, from, occupied) &^ friendlies

		if kind == types.Pawn && promotes(from, side) {
			moves = appendPromotions(moves, from, dest, occupied)
			continue
		}

		for dest != types.BbZero {
			to := dest.PopLsb()
			if occupied.Has(to) {
				moves = append(moves, types.CreateCapture(from, to, kind))
			} else {
				moves = append(moves, types.CreateMove(from, to, kind))
			}
		}
	}
	return moves
}

// promotes reports whether a pawn on from, moving forward one step,
// would land on the promotion rank. Every destination reachable from
// from - push or diagonal capture - shares that same rank, so this
// single check decides promotion for the whole destination set.
func promotes(from types.Square, side types.Side) bool {
	ahead := from.To(side.MoveDirection())
	return ahead != types.SqNone && ahead.RankOf() == side.PawnLastRank()
}

// appendPromotions generates one move per destination square per
// promotion kind, in types.PromotionKinds order, for a pawn on its
// last step before promoting.
func appendPromotions(moves []types.Move, from types.Square, dest types.Bitboard, occupied types.Bitboard) []types.Move {
	for dest != types.BbZero {
		to := dest.PopLsb()
		isCapture := occupied.Has(to)
		for _, promo := range types.PromotionKinds {
			moves = append(moves, types.CreatePromotion(from, to, promo, isCapture))
		}
	}
	return moves
}
