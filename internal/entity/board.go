package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	Rows     = 6
	Columns  = 7
	Capacity = Rows * Columns

	// WinLength is the number of aligned marks needed to win.
	WinLength = 4

	EmptyMark = ""

	cellSeparator = " | "
	rowSeparator  = "---+----+----+----+----+----+----"
)

// Cell is a single grid position. An empty cell has no mark.
type Cell struct {
	Mark string
}

func (that Cell) IsEmpty() bool {
	return that.Mark == EmptyMark
}

// Board is the 6x7 grid. Row 0 is the top row, so gravity pulls marks towards Rows-1.
type Board struct {
	Cells [Rows][Columns]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// CellLabel returns the positional label of a cell, "01" for the top-left up to "42".
func CellLabel(row, col int) string {
	return fmt.Sprintf("%02d", row*Columns+col+1)
}

// ColumnLabel returns the label of a column, "01" up to "07".
func ColumnLabel(col int) string {
	return fmt.Sprintf("%02d", col+1)
}

// ColumnByLabel resolves a column label to its zero-based index.
func ColumnByLabel(label string) (int, error) {
	n, err := parseLabel(label, Columns)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidColumn, label)
	}

	return n - 1, nil
}

// CellByLabel resolves a cell label to its zero-based row and column.
func CellByLabel(label string) (int, int, error) {
	n, err := parseLabel(label, Capacity)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, label)
	}

	return (n - 1) / Columns, (n - 1) % Columns, nil
}

// parseLabel accepts only two-digit zero-padded numbers in 1..upper.
func parseLabel(label string, upper int) (int, error) {
	if len(label) != 2 {
		return 0, strconv.ErrSyntax
	}

	n, err := strconv.Atoi(label)
	if err != nil {
		return 0, err //nolint: wrapcheck // callers wrap with the domain error
	}

	if n < 1 || n > upper {
		return 0, strconv.ErrRange
	}

	return n, nil
}

func (that *Board) Cell(row, col int) Cell {
	return that.Cells[row][col]
}

func (that *Board) IsColumnFull(label string) (bool, error) {
	col, err := ColumnByLabel(label)
	if err != nil {
		return false, err
	}

	return that.isColumnFull(col), nil
}

func (that *Board) isColumnFull(col int) bool {
	// SetCell ignores gravity, so the top cell alone is not enough.
	for row := range Rows {
		if that.Cells[row][col].IsEmpty() {
			return false
		}
	}

	return true
}

// DropMark places the mark into the lowest empty row of the column and returns that row.
func (that *Board) DropMark(label, mark string) (int, error) {
	if mark == EmptyMark {
		return 0, apperror.ErrInvalidMark
	}

	col, err := ColumnByLabel(label)
	if err != nil {
		return 0, err
	}

	for row := Rows - 1; row >= 0; row-- {
		if that.Cells[row][col].IsEmpty() {
			that.Cells[row][col].Mark = mark
			return row, nil
		}
	}

	return 0, fmt.Errorf("%w: column %s", apperror.ErrColumnFull, label)
}

// SetCell places the mark directly into the labelled cell, ignoring gravity.
func (that *Board) SetCell(label, mark string) error {
	if mark == EmptyMark {
		return apperror.ErrInvalidMark
	}

	row, col, err := CellByLabel(label)
	if err != nil {
		return err
	}

	if !that.Cells[row][col].IsEmpty() {
		return fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, label)
	}

	that.Cells[row][col].Mark = mark

	return nil
}

func (that *Board) IsFull() bool {
	for col := range Columns {
		if !that.isColumnFull(col) {
			return false
		}
	}

	return true
}

// HasWin reports whether mark has WinLength aligned cells in any direction.
func (that *Board) HasWin(mark string) bool {
	if mark == EmptyMark {
		return false
	}

	return that.hasHorizontalWin(mark) ||
		that.hasVerticalWin(mark) ||
		that.hasDiagonalWin(mark)
}

func (that *Board) hasHorizontalWin(mark string) bool {
	for row := range Rows {
		consecutive := 0

		for col := range Columns {
			if that.Cells[row][col].Mark != mark {
				consecutive = 0
				continue
			}

			consecutive++
			if consecutive == WinLength {
				return true
			}
		}
	}

	return false
}

func (that *Board) hasVerticalWin(mark string) bool {
	for col := range Columns {
		consecutive := 0

		for row := range Rows {
			if that.Cells[row][col].Mark != mark {
				consecutive = 0
				continue
			}

			consecutive++
			if consecutive == WinLength {
				return true
			}
		}
	}

	return false
}

func (that *Board) hasDiagonalWin(mark string) bool {
	for row := 0; row+WinLength-1 < Rows; row++ {
		for col := range Columns {
			// down-right
			if col+WinLength-1 < Columns && that.isLine(mark, row, col, 1) {
				return true
			}

			// down-left
			if col-WinLength+1 >= 0 && that.isLine(mark, row, col, -1) {
				return true
			}
		}
	}

	return false
}

// isLine checks WinLength cells going down from (row, col), shifting colStep per row.
func (that *Board) isLine(mark string, row, col, colStep int) bool {
	for i := range WinLength {
		if that.Cells[row+i][col+i*colStep].Mark != mark {
			return false
		}
	}

	return true
}

// Render draws the grid for the console. Empty cells show their label.
func (that *Board) Render() string {
	rows := make([]string, 0, Rows)

	for row := range Rows {
		cells := make([]string, 0, Columns)

		for col := range Columns {
			cell := that.Cells[row][col]
			if cell.IsEmpty() {
				cells = append(cells, CellLabel(row, col))
			} else {
				cells = append(cells, cell.Mark)
			}
		}

		rows = append(rows, strings.Join(cells, cellSeparator))
	}

	return strings.Join(rows, "\n"+rowSeparator+"\n")
}

func (that *Board) String() string {
	return that.Render()
}
