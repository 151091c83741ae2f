package dnd35

// Capacity holds the carrying-capacity thresholds for a strength score,
// in pounds.
type Capacity struct {
	Light  int
	Medium int
	Heavy  int
	Lift   int
	Drag   int
}

// heavyLoad is the 3.5e heavy-load column, indexed by strength score 1-29.
var heavyLoad = [...]int{
	0,
	10, 20, 30, 40, 50, 60, 70, 80, 90, 100,
	115, 130, 150, 175, 200, 230, 260, 300, 350, 400,
	460, 520, 600, 700, 800, 920, 1040, 1200, 1400,
}

// HeavyLoad returns the heavy-load threshold for a strength score. Scores of
// 30 and above double every +10 strength relative to score 20's baseline,
// interpolating linearly between doubling points. The official table is not
// linear up there; this is a deliberate approximation.
func HeavyLoad(score int) int {
	switch {
	case score < 1:
		return 0
	case score < len(heavyLoad):
		return heavyLoad[score]
	}
	step := (score - 20) / 10
	rem := (score - 20) % 10
	lo := heavyLoad[20] << step
	hi := heavyLoad[20] << (step + 1)
	return lo + rem*(hi-lo)/10
}

// CapacityFor derives all five thresholds from the heavy load: medium is two
// thirds, light one third (both floored), lift double, drag five times.
func CapacityFor(score int) Capacity {
	h := HeavyLoad(score)
	return Capacity{
		Light:  h / 3,
		Medium: 2 * h / 3,
		Heavy:  h,
		Lift:   2 * h,
		Drag:   5 * h,
	}
}
