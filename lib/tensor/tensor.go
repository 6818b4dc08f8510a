package tensor

import "fmt"

// Tensor is a dense two-dimensional array of token ids.
type Tensor struct {
	Rows int
	Cols int
	Data [][]int
}

func New(rows, cols int) (*Tensor, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid tensor shape (%d, %d)", rows, cols)
	}

	data := make([][]int, rows)
	for i := range data {
		data[i] = make([]int, cols)
	}
	return &Tensor{
		Rows: rows,
		Cols: cols,
		Data: data,
	}, nil
}

// FromRows builds a tensor from equal-length rows. The rows are copied, so the tensor
// does not alias the caller's slices.
func FromRows(rows [][]int) (*Tensor, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}

	result, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has length %d, expected %d", i, len(row), cols)
		}
		copy(result.Data[i], row)
	}
	return result, nil
}

// Transpose returns a new tensor with rows and columns swapped.
func (t *Tensor) Transpose() *Tensor {
	data := make([][]int, t.Cols)
	for i := range data {
		data[i] = make([]int, t.Rows)
		for j := range data[i] {
			data[i][j] = t.Data[j][i]
		}
	}
	return &Tensor{
		Rows: t.Cols,
		Cols: t.Rows,
		Data: data,
	}
}

func (t *Tensor) Shape() (int, int) {
	return t.Rows, t.Cols
}

func (t *Tensor) Equal(other *Tensor) bool {
	if other == nil || t.Rows != other.Rows || t.Cols != other.Cols {
		return false
	}
	for i := range t.Data {
		for j := range t.Data[i] {
			if t.Data[i][j] != other.Data[i][j] {
				return false
			}
		}
	}
	return true
}
