package core

import "gridcrawl/pkg/grid"

// Caves returns a generator for a height*width binary map: cells start as 1
// with probability fill and are then smoothed passes times, a cell becoming 1
// when at least five of its eight neighbors are 1. Cells outside the map
// count as 1.
func Caves(r *RNG, height, width int, fill float64, passes int) grid.Generator[uint8] {
	if height <= 0 || width <= 0 {
		return func(int, int) uint8 { return 0 }
	}
	cur := make([]uint8, height*width)
	nxt := make([]uint8, len(cur))
	rng := r.Source()
	for i := range cur {
		if rng.Float64() < fill {
			cur[i] = 1
		}
	}
	for p := 0; p < passes; p++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				walls := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := x+dx, y+dy
						if nx < 0 || nx >= width || ny < 0 || ny >= height {
							walls++
							continue
						}
						walls += int(cur[ny*width+nx])
					}
				}
				idx := y*width + x
				nxt[idx] = 0
				if walls >= 5 {
					nxt[idx] = 1
				}
			}
		}
		cur, nxt = nxt, cur
	}
	return func(row, column int) uint8 {
		if row < 0 || row >= height || column < 0 || column >= width {
			return 0
		}
		return cur[row*width+column]
	}
}
