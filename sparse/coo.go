// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"sort"
)

// COO is an append-only triplet (coordinate) builder for sparse matrices.
//
// Description:
//
//	Finite-element assembly naturally produces per-element stamps that
//	overlap on shared vertices; COO accepts them in any order and in any
//	number, and ToCSR sorts and accumulates duplicates into canonical CSR.
//
// Invariants:
//   - every Append is range- and finiteness-checked before being recorded;
//   - duplicates are legal and sum at conversion time;
//   - a COO is single-use in spirit: converting does not reset the builder,
//     but further Appends after ToCSR only affect later conversions.
type COO struct {
	rows, cols int
	is, js     []int
	vs         []float64
}

// NewCOO returns an empty triplet builder for an r×c matrix.
// Returns ErrBadShape when r <= 0 or c <= 0.
func NewCOO(r, c int) (*COO, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}

	return &COO{rows: r, cols: c}, nil
}

// Dims reports the logical matrix shape (rows, cols).
func (c *COO) Dims() (int, int) { return c.rows, c.cols }

// Append records a single entry a[i,j] += v for the next conversion.
// Returns ErrOutOfRange for indices outside the shape and ErrNaNInf for
// non-finite values. Exact zeros are accepted (they may cancel or pad).
func (c *COO) Append(i, j int, v float64) error {
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	c.is = append(c.is, i)
	c.js = append(c.js, j)
	c.vs = append(c.vs, v)

	return nil
}

// ToCSR sorts the recorded triplets row-major, accumulates duplicates, and
// returns a canonical CSR matrix (ascending column indices per row).
// An empty builder yields a valid all-zero matrix.
func (c *COO) ToCSR() *CSR {
	order := make([]int, len(c.is))
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if c.is[ka] != c.is[kb] {
			return c.is[ka] < c.is[kb]
		}

		return c.js[ka] < c.js[kb]
	})

	out := &CSR{
		rows:   c.rows,
		cols:   c.cols,
		rowPtr: make([]int, c.rows+1),
	}
	prevI, prevJ := -1, -1
	for _, k := range order {
		i, j, v := c.is[k], c.js[k], c.vs[k]
		if i == prevI && j == prevJ {
			out.data[len(out.data)-1] += v
			continue
		}
		out.colIdx = append(out.colIdx, j)
		out.data = append(out.data, v)
		out.rowPtr[i+1]++
		prevI, prevJ = i, j
	}
	for i := 0; i < c.rows; i++ {
		out.rowPtr[i+1] += out.rowPtr[i]
	}

	return out
}
