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

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqD4, MakeSquare("d4"))
}

func TestMakeSquareInvalidReturnsNone(t *testing.T) {
	assert.Equal(t, SqNone, MakeSquare("i4"))
	assert.Equal(t, SqNone, MakeSquare("d9"))
}

func TestFileFromChar(t *testing.T) {
	f, ok := FileFromChar('e')
	assert.True(t, ok)
	assert.Equal(t, FileE, f)

	_, ok = FileFromChar('i')
	assert.False(t, ok)
}

func TestRankFromChar(t *testing.T) {
	r, ok := RankFromChar('4')
	assert.True(t, ok)
	assert.Equal(t, Rank4, r)

	_, ok = RankFromChar('9')
	assert.False(t, ok)
}

func TestSquareOf(t *testing.T) {
	assert.Equal(t, SqD4, SquareOf(FileD, Rank4))
	assert.Equal(t, SqNone, SquareOf(FileNone, Rank4))
}

func TestFileOfRankOf(t *testing.T) {
	assert.Equal(t, FileD, SqD4.FileOf())
	assert.Equal(t, Rank4, SqD4.RankOf())
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "d4", SqD4.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareToEdgeReturnsNone(t *testing.T) {
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqA1.To(South))
	assert.Equal(t, SqNone, SqH8.To(East))
	assert.Equal(t, SqNone, SqH8.To(North))
}

func TestSquareToInterior(t *testing.T) {
	assert.Equal(t, SqD5, SqD4.To(North))
	assert.Equal(t, SqE4, SqD4.To(East))
	assert.Equal(t, SqD3, SqD4.To(South))
	assert.Equal(t, SqC4, SqD4.To(West))
}
