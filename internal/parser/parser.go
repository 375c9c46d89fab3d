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

// Package parser reads the board textual format: whitespace
// separated piece tokens, grouped under optional colour headers
// "Neutral", "White" and "Black". A token before any header is
// White. There is no FEN here - a composition board has no castling
// rights, en-passant square or half-move clock to encode.
package parser

import (
	"fmt"
	"strings"

	"github.com/frankkopp/caissa/internal/board"
	"github.com/frankkopp/caissa/pkg/types"
)

// ParseBoard parses the board textual format and returns the pieces
// it places. Does not assign a side to move; callers combine this
// with the side a stipulation requires.
func ParseBoard(input string) ([]board.Piece, error) {
	var pieces []board.Piece
	colour := types.ColourWhite

	for _, tok := range strings.Fields(input) {
		switch tok {
		case "Neutral":
			colour = types.Neutral
			continue
		case "White":
			colour = types.ColourWhite
			continue
		case "Black":
			colour = types.ColourBlack
			continue
		}

		p, err := parsePiece(tok, colour)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, p)
	}

	return pieces, nil
}

// parsePiece parses a single "<kind-letter><file-letter><rank-digit>"
// token, e.g. "Bd3", "Sg1", "Pe7".
func parsePiece(tok string, colour types.PieceColour) (board.Piece, error) {
	if len(tok) != 3 {
		return board.Piece{}, fmt.Errorf("invalid piece token %q", tok)
	}

	kind, ok := types.PieceKindFromChar(tok[0])
	if !ok {
		return board.Piece{}, fmt.Errorf("invalid piece kind in token %q", tok)
	}

	sq := types.MakeSquare(tok[1:])
	if !sq.IsValid() {
		return board.Piece{}, fmt.Errorf("invalid square in token %q", tok)
	}

	return board.Piece{Kind: kind, Square: sq, Colour: colour}, nil
}
