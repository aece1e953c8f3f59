package table

// Rotate returns grid rotated a quarter turn counter-clockwise: the first
// output row is the last input column read top to bottom.  grid must be
// rectangular.
func Rotate[T any](grid [][]T) [][]T {
	if len(grid) == 0 {
		return [][]T{}
	}
	h, w := len(grid), len(grid[0])
	res := make([][]T, w)
	for i := range res {
		row := make([]T, h)
		col := w - 1 - i
		for j := 0; j < h; j++ {
			row[j] = grid[j][col]
		}
		res[i] = row
	}
	return res
}

// RotateClockwise returns grid rotated a quarter turn clockwise: the first
// output row is the first input column read bottom to top.
func RotateClockwise[T any](grid [][]T) [][]T {
	if len(grid) == 0 {
		return [][]T{}
	}
	h, w := len(grid), len(grid[0])
	res := make([][]T, w)
	for i := range res {
		row := make([]T, h)
		for j := 0; j < h; j++ {
			row[j] = grid[h-1-j][i]
		}
		res[i] = row
	}
	return res
}
