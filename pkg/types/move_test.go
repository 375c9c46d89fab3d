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

func TestCreateMove(t *testing.T) {
	m := CreateMove(SqD3, SqD4, Rook)
	assert.Equal(t, SqD3, m.From())
	assert.Equal(t, SqD4, m.To())
	assert.Equal(t, Rook, m.Kind())
	assert.False(t, m.IsCapture())
	assert.False(t, m.IsPromotion())
	assert.True(t, m.IsValid())
}

func TestCreateCapture(t *testing.T) {
	m := CreateCapture(SqD3, SqD7, Queen)
	assert.True(t, m.IsCapture())
	assert.Equal(t, Queen, m.Kind())
}

func TestCreatePromotion(t *testing.T) {
	m := CreatePromotion(SqE7, SqE8, Queen, false)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.Promotion())
	assert.Equal(t, Pawn, m.Kind())
	assert.False(t, m.IsCapture())

	capture := CreatePromotion(SqE7, SqD8, Rook, true)
	assert.True(t, capture.IsCapture())
	assert.True(t, capture.IsPromotion())
	assert.Equal(t, Rook, capture.Promotion())
}

func TestMoveNoneIsInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "-", MoveNone.String())
}

func TestMoveString(t *testing.T) {
	quiet := CreateMove(SqD3, SqD4, Rook)
	assert.Equal(t, "Rd3-d4", quiet.String())

	capture := CreateCapture(SqD3, SqD7, Rook)
	assert.Equal(t, "Rd3*d7", capture.String())

	promo := CreatePromotion(SqE7, SqE8, Queen, false)
	assert.Equal(t, "Pe7-e8=Q", promo.String())
}
