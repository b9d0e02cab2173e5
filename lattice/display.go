package lattice

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlattice/sitestate"
)

// siteRune renders one site: Char() when available, otherwise the first
// rune of its default formatting.
func siteRune[T any](site T) rune {
	if c, ok := any(site).(sitestate.CharRepr); ok {
		return c.Char()
	}
	for _, r := range fmt.Sprint(site) {
		return r
	}
	return ' '
}

// renderStrip draws ▕…▏ with the sites rotated right by len/2.
func renderStrip[T any](sites []T) string {
	n := len(sites)
	runes := make([]rune, n)
	for k, s := range sites {
		runes[(k+n/2)%n] = siteRune(s)
	}
	return "▕" + string(runes) + "▏"
}

// renderGrid draws an n×n grid with an underscore top border, | side
// borders and an overline bottom border; rows and columns are offset by n/2.
func renderGrid[T any](n int, at func(i, j int) T) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("_", n+2))
	b.WriteByte('\n')
	for i := 0; i < n; i++ {
		iOff := (i + n/2) % n
		b.WriteByte('|')
		for j := 0; j < n; j++ {
			jOff := (j + n/2) % n
			b.WriteRune(siteRune(at(iOff, jOff)))
		}
		b.WriteString("|\n")
	}
	b.WriteString(strings.Repeat("‾", n+2))
	return b.String()
}
