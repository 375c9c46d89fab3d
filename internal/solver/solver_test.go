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

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/caissa/internal/board"
	"github.com/frankkopp/caissa/pkg/types"
)

// TestDirectMateInOne solves Rh1-h8#, a ladder mate: White king b6
// covers a7 and b7, the rook delivers check along rank 8 and covers
// b8 along the same ray.
func TestDirectMateInOne(t *testing.T) {
	b := board.New([]board.Piece{
		{Kind: types.King, Square: types.SqB6, Colour: types.ColourWhite},
		{Kind: types.Rook, Square: types.SqH1, Colour: types.ColourWhite},
		{Kind: types.King, Square: types.SqA8, Colour: types.ColourBlack},
	}, types.White)

	solutions, ok := Solve(b, []Requirement{Any, Mate})
	assert.True(t, ok)
	assert.Len(t, solutions, 1)
	assert.Equal(t, "Rh1-h8", solutions[0].Move.String())
	assert.Empty(t, solutions[0].Children, "a Mate requirement never recurses past the mating move")
}

// TestDirectMateInOneFailsWithoutMatingMove checks that Solve reports
// no solution when the stipulation cannot be met at all.
func TestDirectMateInOneFailsWithoutMatingMove(t *testing.T) {
	b := board.New([]board.Piece{
		{Kind: types.King, Square: types.SqB6, Colour: types.ColourWhite},
		{Kind: types.King, Square: types.SqA8, Colour: types.ColourBlack},
	}, types.White)

	_, ok := Solve(b, []Requirement{Any, Mate})
	assert.False(t, ok)
}

// TestHelpMateInOne solves a cooperative mate in one: Black's king
// steps to b8 so White's rook can deliver Rh1*h8#. Any bishop move
// fails, since the bishop can then recapture on h8. The requirement
// list mirrors stipulation.HelpMate(1): one (Any, Any) pair for the
// cooperating move and White's reply, then a bare Mate that probes
// the resulting position rather than playing a further move.
func TestHelpMateInOne(t *testing.T) {
	b := board.New([]board.Piece{
		{Kind: types.King, Square: types.SqB6, Colour: types.ColourWhite},
		{Kind: types.Rook, Square: types.SqH1, Colour: types.ColourWhite},
		{Kind: types.King, Square: types.SqA8, Colour: types.ColourBlack},
		{Kind: types.Bishop, Square: types.SqH8, Colour: types.ColourBlack},
	}, types.Black)

	solutions, ok := Solve(b, []Requirement{Any, Any, Mate})
	assert.True(t, ok)

	var found bool
	for _, root := range solutions {
		assert.Equal(t, types.SqA8, root.Move.From(), "the cooperating move must be a king move")
		for _, child := range root.Children {
			if child.Move.String() == "Rh1*h8" {
				found = true
			}
		}
	}
	assert.True(t, found, "expected Rh1*h8# to be reachable after Black's king move")
}

// TestAnyRequirementCollectsEveryLegalMove checks that a bare Any
// requirement with no further plies returns one solution per legal
// move, each with no children.
func TestAnyRequirementCollectsEveryLegalMove(t *testing.T) {
	b := board.New([]board.Piece{
		{Kind: types.King, Square: types.SqA1, Colour: types.ColourWhite},
	}, types.White)

	solutions, ok := Solve(b, []Requirement{Any})
	assert.True(t, ok)
	assert.Len(t, solutions, 3, "a lone king in the corner has 3 legal moves")
	for _, s := range solutions {
		assert.Empty(t, s.Children)
	}
}

// TestEmptyRequirementListSucceedsVacuously checks the recursion base
// case: no requirements left means the line is already complete.
func TestEmptyRequirementListSucceedsVacuously(t *testing.T) {
	b := board.New([]board.Piece{
		{Kind: types.King, Square: types.SqA1, Colour: types.ColourWhite},
	}, types.White)

	solutions, ok := Solve(b, nil)
	assert.True(t, ok)
	assert.Nil(t, solutions)
}

// TestMateVsStalemateDistinguishesMateAndAllOrMate pins down the
// documented behaviour at a terminal ply with no legal moves: a
// checkmate satisfies both Mate and AllOrMate (every one of zero
// replies trivially continues the line), but a stalemate - no legal
// move, king not attacked - fails both, even though AllOrMate's own
// "every reply must continue the line" would vacuously hold with zero
// replies. The original source's behaviour is preserved rather than
// "fixed".
func TestMateVsStalemateDistinguishesMateAndAllOrMate(t *testing.T) {
	mated := board.New([]board.Piece{
		{Kind: types.King, Square: types.SqB6, Colour: types.ColourWhite},
		{Kind: types.Rook, Square: types.SqH8, Colour: types.ColourWhite},
		{Kind: types.King, Square: types.SqA8, Colour: types.ColourBlack},
	}, types.Black)

	_, ok := Solve(mated, []Requirement{Mate})
	assert.True(t, ok, "Black has no legal move and is in check: checkmate")
	_, ok = Solve(mated, []Requirement{AllOrMate})
	assert.True(t, ok, "AllOrMate accepts a checkmate at a terminal ply")

	stalemated := board.New([]board.Piece{
		{Kind: types.King, Square: types.SqF7, Colour: types.ColourWhite},
		{Kind: types.Queen, Square: types.SqG6, Colour: types.ColourWhite},
		{Kind: types.King, Square: types.SqH8, Colour: types.ColourBlack},
	}, types.Black)

	_, ok = Solve(stalemated, []Requirement{Mate})
	assert.False(t, ok, "Black has no legal move and is not in check: stalemate, not mate")
	_, ok = Solve(stalemated, []Requirement{AllOrMate})
	assert.False(t, ok, "AllOrMate fails on a stalemate rather than vacuously passing it")
}
