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
	"strings"
)

// Move is a 32-bit unsigned int encoding a chess move as a value
// type. There is no search sort-value field here, unlike the
// engine's Move: nothing in this domain ever orders a move list by
// expected strength, so those bits are simply not spent.
//
//  BITMAP 32-bit
//  |unused --------------------|c|--prom-|--kind-|---from---|--to---|
//  3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0 0 0 0
//  1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  ---------------------------------------------------------------
//                                            |           1 1 1 1 1 1  to
//                              |         1 1 1 1 1 1                  from
//                          1 1 1                                      moving piece kind
//                      1 1 1                                          promotion kind (PkNone if none)
//                    1                                                is-capture flag
type Move uint32

// MoveNone is the zero value: not a valid move.
const MoveNone Move = 0

const (
	fromShift      uint = 6
	kindShift      uint = 12
	promotionShift uint = 15
	captureShift   uint = 18

	squareMask Move = 0x3F
	toMask          = squareMask
	fromMask        = squareMask << fromShift
	kindMask   Move = 0x7 << kindShift
	promMask   Move = 0x7 << promotionShift
	captureBit Move = 1 << captureShift
)

// CreateMove encodes a quiet, non-promoting move.
func CreateMove(from, to Square, kind PieceKind) Move {
	return Move(to) | Move(from)<<fromShift | Move(kind)<<kindShift
}

// CreateCapture encodes a capturing move.
func CreateCapture(from, to Square, kind PieceKind) Move {
	return CreateMove(from, to, kind) | captureBit
}

// CreatePromotion encodes a (possibly capturing) pawn promotion.
func CreatePromotion(from, to Square, promotion PieceKind, isCapture bool) Move {
	m := Move(to) | Move(from)<<fromShift | Move(Pawn)<<kindShift | Move(promotion)<<promotionShift
	if isCapture {
		m |= captureBit
	}
	return m
}

// To returns the to-square of the move.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the from-square of the move.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// Kind returns the kind of the piece being moved.
func (m Move) Kind() PieceKind {
	return PieceKind((m & kindMask) >> kindShift)
}

// Promotion returns the promotion kind, or PkNone if this move is
// not a promotion.
func (m Move) Promotion() PieceKind {
	return PieceKind((m & promMask) >> promotionShift)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != PkNone
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool {
	return m&captureBit != 0
}

// IsValid reports whether the move has valid squares and kinds.
// MoveNone is not a valid move.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.Kind().IsValid() &&
		(m.Promotion() == PkNone || m.Promotion().CanBePromotion())
}

// String renders the move as "<K><from><sep><to>[=<P>]", matching
// the textual move format printed in solution trees: sep is "*" for
// a capture and "-" otherwise.
func (m Move) String() string {
	if m == MoveNone {
		return "-"
	}
	var b strings.Builder
	b.WriteString(m.Kind().Char())
	b.WriteString(m.From().String())
	if m.IsCapture() {
		b.WriteString("*")
	} else {
		b.WriteString("-")
	}
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString("=")
		b.WriteString(m.Promotion().Char())
	}
	return b.String()
}
