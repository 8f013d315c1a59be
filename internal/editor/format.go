package editor

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumList renders a vector as "[x.x, y.y, z.z]".
func FormatNumList(nums []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range nums {
		b.WriteString(formatTenths(n))
		if i != len(nums)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteByte(']')
	return b.String()
}

// formatTenths rounds half away from zero on the shortest decimal form of n,
// so 2.25 prints as 2.3 rather than the binary-exact tie-to-even 2.2.
func formatTenths(n float32) string {
	f, err := strconv.ParseFloat(strconv.FormatFloat(float64(n), 'g', -1, 32), 64)
	if err != nil {
		return strconv.FormatFloat(float64(n), 'f', 1, 32)
	}
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', 1, 64)
}
