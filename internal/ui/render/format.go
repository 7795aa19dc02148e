package render

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Duration formats milliseconds as m:ss, or h:mm:ss past an hour.
func Duration(ms int) string {
	total := max(ms, 0) / 1000
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Count formats n with thousands separators followed by noun, pluralized
// with a trailing "s" when n != 1.
func Count(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return humanize.Comma(int64(n)) + " " + noun
}
