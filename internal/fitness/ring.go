package fitness

import "math"

// Ring is the geometry of a circular progress indicator drawn as a stroked
// circle with a dash offset.
type Ring struct {
	Size        float64
	StrokeWidth float64
}

func (r Ring) Radius() float64 {
	return (r.Size - r.StrokeWidth) / 2
}

func (r Ring) Circumference() float64 {
	return 2 * math.Pi * r.Radius()
}

// DashOffset is the unfilled length of the stroke for a value in percent.
// Values above 100 produce a negative offset, as the SVG ring does.
func (r Ring) DashOffset(value float64) float64 {
	c := r.Circumference()
	return c - value/100*c
}

// FilledFraction is the drawn share of the ring, clamped to [0, 1].
func (r Ring) FilledFraction(value float64) float64 {
	c := r.Circumference()
	if c <= 0 {
		return 0
	}
	return math.Min(math.Max((c-r.DashOffset(value))/c, 0), 1)
}

// HeartRateValue places the current rate inside the min..max range, in percent.
func HeartRateValue(h HeartRateData) float64 {
	span := h.Max - h.Min
	if span == 0 {
		return 0
	}
	return float64(h.Current-h.Min) / float64(span) * 100
}
