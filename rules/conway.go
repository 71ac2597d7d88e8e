package rules

/*
Next applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

The table is written out per neighbour count:

	0, 1 -> dead (underpopulation)
	2    -> unchanged
	3    -> alive (survival or birth)
	4+   -> dead (overpopulation)
*/
func Next(neighbours int, alive bool) bool {
	switch {
	case neighbours <= 1:
		return false
	case neighbours == 2:
		return alive
	case neighbours == 3:
		return true
	default:
		return false
	}
}
