// Package format holds the display formatting helpers for byte counts and
// playback timestamps.
package format

import (
	"fmt"
	"math"
	"strconv"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FileSize renders a byte count using the largest base-1024 unit not
// exceeding the value, rounded to two decimals with trailing zeros trimmed.
// Zero renders as "0 Bytes".
func FileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}

// Time renders seconds as "M:SS" with unbounded minutes and zero-padded
// seconds.
func Time(seconds float64) string {
	mins := int(seconds) / 60
	secs := int(seconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// TimeRange renders a start/end pair as "M:SS – M:SS" for suggestion rows.
func TimeRange(start, end float64) string {
	return Time(start) + " – " + Time(end)
}
