//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
}

func TestColourOf(t *testing.T) {
	assert.Equal(t, ColourWhite, ColourOf(White))
	assert.Equal(t, ColourBlack, ColourOf(Black))
}

// TestCanMove checks every (Side, PieceColour) pair against the
// relation's definition: a piece can be moved by s when it's Neutral
// or belongs to s.
func TestCanMove(t *testing.T) {
	assert.True(t, CanMove(White, ColourWhite))
	assert.True(t, CanMove(White, Neutral))
	assert.False(t, CanMove(White, ColourBlack))

	assert.True(t, CanMove(Black, ColourBlack))
	assert.True(t, CanMove(Black, Neutral))
	assert.False(t, CanMove(Black, ColourWhite))
}

// TestFriendly checks that only a piece sharing the side to move's
// own colour is friendly - Neutral is capturable but never friendly.
func TestFriendly(t *testing.T) {
	assert.True(t, Friendly(White, ColourWhite))
	assert.False(t, Friendly(White, ColourBlack))
	assert.False(t, Friendly(White, Neutral))

	assert.True(t, Friendly(Black, ColourBlack))
	assert.False(t, Friendly(Black, ColourWhite))
	assert.False(t, Friendly(Black, Neutral))
}

func TestCapturable(t *testing.T) {
	assert.True(t, Capturable(White, ColourBlack))
	assert.True(t, Capturable(White, Neutral))
	assert.False(t, Capturable(White, ColourWhite))

	assert.True(t, Capturable(Black, ColourWhite))
	assert.True(t, Capturable(Black, Neutral))
	assert.False(t, Capturable(Black, ColourBlack))
}

// TestNeutralIsBothMoverAndCapturable pins down the invariant
// board.New relies on: a Neutral piece is always a mover and always
// capturable, for either side to move.
func TestNeutralIsBothMoverAndCapturable(t *testing.T) {
	for _, s := range []Side{White, Black} {
		assert.True(t, CanMove(s, Neutral))
		assert.True(t, Capturable(s, Neutral))
		assert.False(t, Friendly(s, Neutral))
	}
}

func TestPawnDirectionsAndRanks(t *testing.T) {
	assert.Equal(t, North, White.MoveDirection())
	assert.Equal(t, South, Black.MoveDirection())
	assert.Equal(t, Rank2, White.PawnStartRank())
	assert.Equal(t, Rank7, Black.PawnStartRank())
	assert.Equal(t, Rank8, White.PawnLastRank())
	assert.Equal(t, Rank1, Black.PawnLastRank())
}
