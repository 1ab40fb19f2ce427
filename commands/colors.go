package commands

import (
	"github.com/mgutz/ansi"

	"github.com/osec-tools/pass-meter/strength"
)

var red = ansi.ColorFunc("red+b")
var yellow = ansi.ColorFunc("yellow+b")
var green = ansi.ColorFunc("green+b")
var cyan = ansi.ColorFunc("cyan+b")

func colorForTier(tier strength.Tier) func(string) string {
	switch tier {
	case strength.Medium:
		return yellow
	case strength.Strong, strength.VeryStrong:
		return green
	case strength.Perfect:
		return cyan
	default:
		return red
	}
}
