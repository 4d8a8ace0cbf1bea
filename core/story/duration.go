package story

import "strings"

// Duration bounds for a single slide, in seconds.
const (
	minSlideDuration = 3.0
	maxSlideDuration = 8.0
)

// Duration maps text length to a reading time in seconds: a 3s floor
// plus 0.1s per word, saturating at 8s.
func Duration(text string) float64 {
	d := minSlideDuration + float64(len(strings.Fields(text)))*0.1
	if d < minSlideDuration {
		return minSlideDuration
	}
	if d > maxSlideDuration {
		return maxSlideDuration
	}
	return d
}
