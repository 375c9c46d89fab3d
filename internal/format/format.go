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

// Package format renders a solution tree as indented, depth-first
// text. types.Move already knows how to render itself; this package
// only owns tree traversal and indentation.
package format

import (
	"strings"

	"github.com/frankkopp/caissa/internal/solver"
)

// Solutions renders every root solution in order, depth-first,
// pre-order, one move per line, indented by one tab per ply.
func Solutions(solutions []solver.Solution) string {
	var b strings.Builder
	for _, s := range solutions {
		writeSolution(&b, s, 0)
	}
	return b.String()
}

func writeSolution(b *strings.Builder, s solver.Solution, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("\t")
	}
	b.WriteString(s.Move.String())
	b.WriteString("\n")
	for _, child := range s.Children {
		writeSolution(b, child, depth+1)
	}
}
