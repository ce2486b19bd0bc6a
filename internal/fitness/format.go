package fitness

import (
	"strconv"
	"strings"
)

// FormatCount renders an integer with thousands separators ("8,435").
func FormatCount(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.Itoa(n)
	if len(digits) <= 3 {
		return sign + digits
	}
	var b strings.Builder
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatDecimal renders a float with the shortest exact representation
// ("6.5", "8").
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatGoal renders a goal value the way the dashboard cards show it.
func FormatGoal(m Metric, v float64) string {
	switch m {
	case MetricSteps, MetricCalories:
		return FormatCount(int(v))
	default:
		return FormatDecimal(v)
	}
}
