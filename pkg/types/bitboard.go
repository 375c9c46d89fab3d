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
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with 1 bit for each square on the board.
type Bitboard uint64

// Bb returns a Bitboard of the given file.
func (f File) Bb() Bitboard {
	return fileBb[f]
}

// Bb returns a Bitboard of the given rank.
func (r Rank) Bb() Bitboard {
	return rankBb[r]
}

// Bb returns a Bitboard with just this square set.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the corresponding bit of the bitboard for the square.
func PushSquare(b Bitboard, sq Square) Bitboard {
	return b | sqBb[sq]
}

// PushSquare sets the corresponding bit of the bitboard for the square.
func (b *Bitboard) PushSquare(sq Square) Bitboard {
	*b |= sqBb[sq]
	return *b
}

// PopSquare clears the corresponding bit of the bitboard for the square.
func PopSquare(b Bitboard, sq Square) Bitboard {
	return b &^ sqBb[sq]
}

// PopSquare clears the corresponding bit of the bitboard for the square.
func (b *Bitboard) PopSquare(sq Square) Bitboard {
	*b = *b &^ sqBb[sq]
	return *b
}

// Has tests if a square (bit) is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// ShiftBitboard shifts all bits of a bitboard in the given direction
// by one square, clearing bits that would wrap around an edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case South:
		return b >> 8
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	case Northwest:
		return (b << 7) & FileHMask
	}
	return b
}

// Lsb returns the least significant set bit as a Square, or SqNone
// if the bitboard is empty.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit as a Square, or SqNone if
// the bitboard is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the least significant square and clears it in b.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b = *b & (*b - 1)
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// GetAttacksBb returns the squares attacked by a piece of kind k (not
// Pawn) placed on sq, given the current occupancy. Sliding kinds
// (Bishop, Rook, Queen) use the precomputed magic bitboard attack
// tables; Knight and King ignore occupied and use the precomputed
// leaper tables.
func GetAttacksBb(k PieceKind, sq Square, occupied Bitboard) Bitboard {
	switch k {
	case Bishop:
		return bishopMagics[sq].attacks(occupied)
	case Rook:
		return rookMagics[sq].attacks(occupied)
	case Queen:
		return bishopMagics[sq].attacks(occupied) | rookMagics[sq].attacks(occupied)
	case Knight, King:
		return nonSliderAttacks[k][sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb called with unsupported piece kind %s", k))
	}
}

// GetPawnAttacks returns the squares a pawn on sq attacks while side
// is to move. A neutral pawn uses whichever side is currently to
// move, so this is indexed by Side and never by a piece's own colour.
func GetPawnAttacks(side Side, sq Square) Bitboard {
	return pawnAttacks[side][sq]
}

// String returns a string representation of the 64 bits.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard returns a representation of b as an 8x8 board.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, Rank8-r).Bb()) > 0 {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// StringGrouped returns a string of the 64 bits grouped by rank, LSB
// to MSB (A1 B1 ... G8 H8).
func (b Bitboard) StringGrouped() string {
	var os strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", b))
	return os.String()
}

// Various constant bitboards.
const (
	BbZero = Bitboard(0)
	BbAll  = ^BbZero
	BbOne  = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb          = FileA_Bb << 1
	FileC_Bb          = FileA_Bb << 2
	FileD_Bb          = FileA_Bb << 3
	FileE_Bb          = FileA_Bb << 4
	FileF_Bb          = FileA_Bb << 5
	FileG_Bb          = FileA_Bb << 6
	FileH_Bb          = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb          = Rank1_Bb << (8 * 1)
	Rank3_Bb          = Rank1_Bb << (8 * 2)
	Rank4_Bb          = Rank1_Bb << (8 * 3)
	Rank5_Bb          = Rank1_Bb << (8 * 4)
	Rank6_Bb          = Rank1_Bb << (8 * 5)
	Rank7_Bb          = Rank1_Bb << (8 * 6)
	Rank8_Bb          = Rank1_Bb << (8 * 7)

	MsbMask   = ^(Bitboard(1) << 63)
	Rank8Mask = ^Rank8_Bb
	FileAMask = ^FileA_Bb
	FileHMask = ^FileH_Bb
)

// ////////////////////
// Private
// ////////////////////

func (sq Square) bitboard() Bitboard {
	return Bitboard(uint64(1) << sq)
}

var (
	sqBb       [SqLength]Bitboard
	rankBb     [8]Bitboard
	fileBb     [8]Bitboard
	sqToFileBb [SqLength]Bitboard
	sqToRankBb [SqLength]Bitboard

	// pawnAttacks[side][sq] holds the squares a pawn on sq attacks
	// while side is to move.
	pawnAttacks [SideLength][SqLength]Bitboard

	// nonSliderAttacks[kind][sq] holds the leaper attack set for King
	// and Knight; unused for every other kind.
	nonSliderAttacks [PkLength][SqLength]Bitboard

	rookTable  []Bitboard
	rookMagics [SqLength]magic

	bishopTable  []Bitboard
	bishopMagics [SqLength]magic
)

func init() {
	rankFileBbPreCompute()
	squareBitboardsPreCompute()
	leaperAttacksPreCompute()
	initMagicBitboards()
}

func rankFileBbPreCompute() {
	for i := Rank1; i <= Rank8; i++ {
		rankBb[i] = Rank1_Bb << (8 * i)
	}
	for i := FileA; i <= FileH; i++ {
		fileBb[i] = FileA_Bb << i
	}
}

func squareBitboardsPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = sq.bitboard()
		sqToFileBb[sq] = FileA_Bb << sq.FileOf()
		sqToRankBb[sq] = Rank1_Bb << (8 * sq.RankOf())
	}
}

// kingOffsets and knightOffsets are (file,rank) deltas; a delta is
// valid for a square only when it stays on the board, which also
// rules out the wraparound a single Direction step could produce.
var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func leaperAttacksPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for _, o := range kingOffsets {
			if nf, nr := f+o[0], r+o[1]; nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				nonSliderAttacks[King][sq] |= sqBb[SquareOf(File(nf), Rank(nr))]
			}
		}
		for _, o := range knightOffsets {
			if nf, nr := f+o[0], r+o[1]; nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				nonSliderAttacks[Knight][sq] |= sqBb[SquareOf(File(nf), Rank(nr))]
			}
		}
		for _, side := range [2]Side{White, Black} {
			drSign := 1
			if side == Black {
				drSign = -1
			}
			for _, df := range [2]int{-1, 1} {
				if nf, nr := f+df, r+drSign; nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
					pawnAttacks[side][sq] |= sqBb[SquareOf(File(nf), Rank(nr))]
				}
			}
		}
	}
}

// slidingAttack walks rays out from sq in each of the four given
// directions, stopping at (and including) the first occupied square.
// Used only while building the magic bitboard tables.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			next := s.To(directions[i])
			if next == SqNone {
				break
			}
			s = next
			attack |= sqBb[s]
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// magic is a single square's entry in the fancy magic bitboard
// scheme: ((occupied & Mask) * Number) >> Shift indexes Attacks.
type magic struct {
	Mask    Bitboard
	Number  Bitboard
	Attacks []Bitboard
	Shift   uint
}

func (m *magic) index(occupied Bitboard) uint {
	return uint(((occupied & m.Mask) * m.Number) >> m.Shift)
}

func (m *magic) attacks(occupied Bitboard) Bitboard {
	return m.Attacks[m.index(occupied)]
}

// initMagicBitboards builds the rook and bishop attack tables using
// the fancy magic scheme, following Stockfish's init_magics.
func initMagicBitboards() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	initMagics(rookTable, &rookMagics, &rookDirections)
	initMagics(bishopTable, &bishopMagics, &bishopDirections)
}

var magicSeeds = [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func initMagics(table []Bitboard, magics *[SqLength]magic, directions *[4]Direction) {
	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1_Bb | Rank8_Bb) &^ sqToRankBb[sq]) | ((FileA_Bb | FileH_Bb) &^ sqToFileBb[sq])

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = 64 - uint(m.Mask.PopCount())
		if sq == SqA1 {
			m.Attacks = table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		b := BbZero
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == BbZero {
				break
			}
		}

		rng := newPrnG(magicSeeds[sq.RankOf()])
		i := 0
		for i < size {
			m.Number = 0
			for bits.OnesCount64(uint64((m.Mask.mulHigh(m.Number)))) < 6 {
				m.Number = Bitboard(rng.sparseRand())
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// mulHigh returns the high byte of (mask*number), used to reject
// magic candidates whose top byte is too sparse before the full
// verification pass runs.
func (b Bitboard) mulHigh(number Bitboard) Bitboard {
	return (b * number) >> 56
}

// prnG is a xorshift64star pseudo-random generator, used only to
// search for magic numbers at table-build time.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (p *prnG) rand64() uint64 {
	p.s ^= p.s >> 12
	p.s ^= p.s << 25
	p.s ^= p.s >> 27
	return p.s * 2685821657736338717
}

// sparseRand returns a random value with roughly 1/8th of its bits
// set, which converges to a valid magic number faster than a dense
// random 64-bit value.
func (p *prnG) sparseRand() uint64 {
	return p.rand64() & p.rand64() & p.rand64()
}
