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

// PieceKind is a closed sum type over the six chess piece kinds. A
// source built on one base class with a virtual moves(...) method and
// one singleton per concrete kind is re-expressed here as a plain
// enum; dispatch happens through a switch in the attacks package
// instead of a vtable or a runtime registry.
type PieceKind uint8

// PieceKind values. Knight's letter is S, not N.
const (
	PkNone PieceKind = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
	PkLength
)

const pieceKindLetters = "-PBSRQK"

// Char returns the one-letter code for the piece kind.
func (k PieceKind) Char() string {
	if k >= PkLength {
		return "-"
	}
	return string(pieceKindLetters[k])
}

// String returns the one-letter code for the piece kind.
func (k PieceKind) String() string {
	return k.Char()
}

// CanBePromotion reports whether a pawn may promote to this kind.
// True for B, S, R, Q; false for P and K.
func (k PieceKind) CanBePromotion() bool {
	switch k {
	case Bishop, Knight, Rook, Queen:
		return true
	default:
		return false
	}
}

// IsValid reports whether k is one of the six real piece kinds.
func (k PieceKind) IsValid() bool {
	return k > PkNone && k < PkLength
}

// PieceKindFromChar parses a one-letter code into a PieceKind.
// Returns (PkNone, false) for an unrecognised letter.
func PieceKindFromChar(c byte) (PieceKind, bool) {
	switch c {
	case 'P':
		return Pawn, true
	case 'B':
		return Bishop, true
	case 'S':
		return Knight, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	default:
		return PkNone, false
	}
}

// PromotionKinds lists the kinds a pawn may promote to, in the fixed
// generation order B, S, R, Q. Order matters: it is observable in
// the move generator's output and in the solution tree.
var PromotionKinds = [4]PieceKind{Bishop, Knight, Rook, Queen}
