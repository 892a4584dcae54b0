// SPDX-License-Identifier: MIT

package sparse

import "sort"

// FormatCSR names the storage layout reported by (*CSR).Format.
const FormatCSR = "csr"

// CSR is a compressed-sparse-row matrix.
//
// Storage invariants:
//   - len(rowPtr) == rows+1, rowPtr[0] == 0, rowPtr monotonically non-decreasing;
//   - column indices are strictly ascending within each row;
//   - len(colIdx) == len(data) == rowPtr[rows].
//
// Construct via (*COO).ToCSR; the zero value is not usable.
type CSR struct {
	rows, cols int
	rowPtr     []int
	colIdx     []int
	data       []float64
}

// Dims reports the matrix shape (rows, cols).
func (m *CSR) Dims() (int, int) { return m.rows, m.cols }

// NNZ reports the number of stored entries (including stored zeros).
func (m *CSR) NNZ() int { return len(m.data) }

// Format reports the storage layout name ("csr"); used by diagnostic events.
func (m *CSR) Format() string { return FormatCSR }

// At returns a[i,j], or 0 for structurally absent entries.
// Returns ErrOutOfRange for indices outside the shape.
// Lookup is a binary search within row i: O(log nnz(i)).
func (m *CSR) At(i, j int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], j)
	if k < hi && m.colIdx[k] == j {
		return m.data[k], nil
	}

	return 0, nil
}

// MulVec computes y = A·x in O(nnz).
// Returns ErrDimensionMismatch when len(x) != cols.
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(x) != m.cols {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sum += m.data[k] * x[m.colIdx[k]]
		}
		y[i] = sum
	}

	return y, nil
}

// Diagonal extracts the main diagonal as a dense vector of length min(rows, cols).
func (m *CSR) Diagonal() []float64 {
	n := m.rows
	if m.cols < n {
		n = m.cols
	}
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		v, _ := m.At(i, i)
		d[i] = v
	}

	return d
}

// AddScaled computes C = A + α·B over the union of both sparsity patterns.
// A (the receiver) and B must share the same shape; neither is mutated.
// This is the backward-Euler composition H = mass + t·stiffness.
// Returns ErrDimensionMismatch on shape disagreement.
func (m *CSR) AddScaled(b *CSR, alpha float64) (*CSR, error) {
	if m == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if m.rows != b.rows || m.cols != b.cols {
		return nil, ErrDimensionMismatch
	}

	out := &CSR{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: make([]int, m.rows+1),
		colIdx: make([]int, 0, m.NNZ()+b.NNZ()),
		data:   make([]float64, 0, m.NNZ()+b.NNZ()),
	}
	for i := 0; i < m.rows; i++ {
		ka, ea := m.rowPtr[i], m.rowPtr[i+1]
		kb, eb := b.rowPtr[i], b.rowPtr[i+1]
		// Two-pointer merge of ascending column lists.
		for ka < ea || kb < eb {
			switch {
			case kb >= eb || (ka < ea && m.colIdx[ka] < b.colIdx[kb]):
				out.colIdx = append(out.colIdx, m.colIdx[ka])
				out.data = append(out.data, m.data[ka])
				ka++
			case ka >= ea || b.colIdx[kb] < m.colIdx[ka]:
				out.colIdx = append(out.colIdx, b.colIdx[kb])
				out.data = append(out.data, alpha*b.data[kb])
				kb++
			default: // equal columns
				out.colIdx = append(out.colIdx, m.colIdx[ka])
				out.data = append(out.data, m.data[ka]+alpha*b.data[kb])
				ka++
				kb++
			}
		}
		out.rowPtr[i+1] = len(out.colIdx)
	}

	return out, nil
}
