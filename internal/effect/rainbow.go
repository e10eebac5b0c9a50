package effect

import "math"

// Rainbow paints one full hue cycle across the whole strip and drifts
// the pattern by a complete wheel traversal per cycle. It is stateless;
// each frame is derived from the counters alone.
type Rainbow struct{}

func NewRainbow() *Rainbow {
	return &Rainbow{}
}

func (r *Rainbow) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	start := 255.0 / float64(stepsPerCycle) * float64(step)
	perLED := 255.0 / float64(numLED)
	for i := 0; i < numLED; i++ {
		idx := int(math.Round(start+float64(i)*perLED)) % 255
		s.Set(i, s.Wheel(idx))
	}
	return numLED
}

func (r *Rainbow) Validate(numLED, stepsPerCycle int) error {
	return validCycle(stepsPerCycle)
}
