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

import "fmt"

// Side is the two-valued side to move: White or Black. It answers
// "whose turn is it", which is distinct from a piece's own colour -
// a neutral piece moves for whichever Side is currently to move.
type Side uint8

// Values for Side.
const (
	White      Side = 0
	Black      Side = 1
	SideLength int  = 2
)

// Flip returns the opposite side.
func (s Side) Flip() Side {
	return s ^ 1
}

// IsValid checks if s represents a valid side.
func (s Side) IsValid() bool {
	return s < 2
}

// String returns "w" or "b".
func (s Side) String() string {
	switch s {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid side %d", s))
	}
}

// PieceColour is the three-valued colour carried by a piece on the
// board: Neutral, White, or Black. A Neutral piece moves for whoever
// is to move and may be captured by either side; it never leaves the
// board's set of possible capturees or possible movers.
type PieceColour uint8

// Values for PieceColour.
const (
	Neutral      PieceColour = 0
	ColourWhite  PieceColour = 1
	ColourBlack  PieceColour = 2
	ColourLength int         = 3
)

// IsValid checks if c represents a valid piece colour.
func (c PieceColour) IsValid() bool {
	return c <= ColourBlack
}

// String returns "n", "w" or "b".
func (c PieceColour) String() string {
	switch c {
	case Neutral:
		return "n"
	case ColourWhite:
		return "w"
	case ColourBlack:
		return "b"
	default:
		panic(fmt.Sprintf("invalid piece colour %d", c))
	}
}

// ColourOf converts a Side into the matching non-neutral PieceColour.
func ColourOf(s Side) PieceColour {
	if s == White {
		return ColourWhite
	}
	return ColourBlack
}

// CanMove reports whether a piece of colour c may be moved by the
// side to move s: true when c is Neutral or belongs to s.
func CanMove(s Side, c PieceColour) bool {
	return c == Neutral || c == ColourOf(s)
}

// Friendly reports whether a piece of colour c belongs to the side
// to move s, and so cannot be captured by it.
func Friendly(s Side, c PieceColour) bool {
	return c == ColourOf(s)
}

// Capturable reports whether a piece of colour c may be captured by
// the side to move s: true when c is Neutral or belongs to the
// opponent of s.
func Capturable(s Side, c PieceColour) bool {
	return c == Neutral || c == ColourOf(s.Flip())
}
