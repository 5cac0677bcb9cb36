package model

const (
	// Repetitions is the minimum number of unchanged populations before getting bored
	Repetitions = 14
	// PatternLength is the longest cycle, in generations, the detector expects to catch
	PatternLength = 4

	resetPeriod = Repetitions * PatternLength
)

// BoredomDetector guesses when the simulation is stuck in a loop by watching
// how often the population size repeats. It is a heuristic: screens full of
// gliders fool it, and it can take a while to catch on.
type BoredomDetector struct {
	rng Rand

	// iteration is signed; the jittered reset can push it below zero
	iteration      int
	lastPopulation int
	stableStreak   int
}

// NewBoredomDetector creates a detector whose first check always resets it to a real baseline
func NewBoredomDetector(rng Rand) *BoredomDetector {
	return &BoredomDetector{
		rng:       rng,
		iteration: resetPeriod + 1,
	}
}

// IsBored records one generation and reports whether the population has held
// still for more than Repetitions checks since the last reset.
func (d *BoredomDetector) IsBored(board Board) bool {
	population := board.Population()

	d.iteration++
	if population == d.lastPopulation {
		d.stableStreak++
	}

	bored := d.stableStreak > Repetitions
	if d.iteration > resetPeriod || bored {
		d.reset(population)
	}
	return bored
}

// reset starts a new observation window. The jitter in {-2, -1, 0} keeps the
// periodic reset from lining up with patterns whose period divides it.
func (d *BoredomDetector) reset(population int) {
	d.iteration = d.rng.Intn(3) - 2
	d.lastPopulation = population
	d.stableStreak = 0
}
