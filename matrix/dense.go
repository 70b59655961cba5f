package matrix

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A 0×0 Dense is valid and represents the empty graph.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewDense", ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(op string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", op, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Values returns the matrix as freshly allocated rows. Every row is non-nil.
// Complexity: O(r*c).
func (m *Dense) Values() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// IsSymmetric reports whether m is square and m[i][j] == m[j][i] for all i,j.
// Complexity: O(n²).
func (m *Dense) IsSymmetric() bool {
	if m.r != m.c {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if m.data[i*m.c+j] != m.data[j*m.c+i] {
				return false
			}
		}
	}

	return true
}

// MarshalJSON encodes the matrix as an array of rows.
func (m *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Values())
}

// UnmarshalJSON decodes an array of equally long rows.
func (m *Dense) UnmarshalJSON(b []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	d, err := FromRows(rows)
	if err != nil {
		return err
	}
	*m = *d

	return nil
}

// MarshalYAML encodes the matrix as a sequence of rows.
func (m *Dense) MarshalYAML() (interface{}, error) {
	return m.Values(), nil
}

// FromRows builds a Dense from rows, rejecting ragged input.
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("FromRows", ErrBadShape)
		}
		copy(d.data[i*c:], row)
	}

	return d, nil
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(fmt.Sprint(m.data[i*m.c : (i+1)*m.c]))
		if i < m.r-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
