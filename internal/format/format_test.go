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

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/caissa/internal/solver"
	"github.com/frankkopp/caissa/pkg/types"
)

func TestSolutionsSingleRootNoChildren(t *testing.T) {
	solutions := []solver.Solution{
		{Move: types.CreateMove(types.SqH1, types.SqH8, types.Rook)},
	}
	assert.Equal(t, "Rh1-h8\n", Solutions(solutions))
}

// TestSolutionsIndentsChildrenByOneTabPerPly pins down the depth-first,
// pre-order, one-tab-per-ply rendering of a nested solution tree.
func TestSolutionsIndentsChildrenByOneTabPerPly(t *testing.T) {
	solutions := []solver.Solution{
		{
			Move: types.CreateMove(types.SqH8, types.SqG7, types.Bishop),
			Children: []solver.Solution{
				{Move: types.CreateMove(types.SqH1, types.SqH8, types.Rook)},
			},
		},
	}
	want := "Bh8-g7\n\tRh1-h8\n"
	assert.Equal(t, want, Solutions(solutions))
}

func TestSolutionsRendersMultipleRootsInOrder(t *testing.T) {
	solutions := []solver.Solution{
		{Move: types.CreateMove(types.SqA1, types.SqA2, types.King)},
		{Move: types.CreateMove(types.SqA1, types.SqB1, types.King)},
	}
	want := "Ka1-a2\nKa1-b1\n"
	assert.Equal(t, want, Solutions(solutions))
}

func TestSolutionsEmptyInputYieldsEmptyString(t *testing.T) {
	assert.Equal(t, "", Solutions(nil))
}

func TestSolutionsMultipleChildrenUnderOneRoot(t *testing.T) {
	solutions := []solver.Solution{
		{
			Move: types.CreateMove(types.SqA1, types.SqA2, types.King),
			Children: []solver.Solution{
				{Move: types.CreateMove(types.SqH8, types.SqH7, types.King)},
				{Move: types.CreateMove(types.SqH8, types.SqG8, types.King)},
			},
		},
	}
	want := "Ka1-a2\n\tKh8-h7\n\tKh8-g8\n"
	assert.Equal(t, want, Solutions(solutions))
}
