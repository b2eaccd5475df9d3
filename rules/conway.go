package rules

/*
ApplyConwayRules decides the next status of a cell from its count of living neighbors.

  - neighbors == 3          -> alive
  - neighbors <= 1 or >= 4  -> dead
  - neighbors == 2          -> no directive, the cell keeps its current status

ok is false only for the two-neighbor case.
*/
func ApplyConwayRules(neighbors int) (alive bool, ok bool) {
	switch {
	case neighbors == 3:
		return true, true
	case neighbors <= 1, neighbors >= 4:
		return false, true
	}
	return false, false
}

// Survives is the resolved form: (alive && neighbors == 2) || neighbors == 3
func Survives(neighbors int, alive bool) bool {
	if next, ok := ApplyConwayRules(neighbors); ok {
		return next
	}
	return alive
}
