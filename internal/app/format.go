package app

import (
	"fmt"
	"image/color"

	"searchlens/analyzer/evaldata"
)

func formatPercent0(v float64) string { return fmt.Sprintf("%.0f%%", v*100) }

func formatPercent1(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }

func formatScore(v float64) string { return fmt.Sprintf("%.3f", v) }

func formatFraction(relevant, total int) string {
	return fmt.Sprintf("%d/%d relevant", relevant, total)
}

func tierColor(t evaldata.Tier) color.Color {
	switch t {
	case evaldata.TierExcellent:
		return color.NRGBA{R: 0x2e, G: 0xa0, B: 0x43, A: 0xff}
	case evaldata.TierGood:
		return color.NRGBA{R: 0x1f, G: 0x6f, B: 0xeb, A: 0xff}
	case evaldata.TierModerate:
		return color.NRGBA{R: 0xd4, G: 0x8a, B: 0x06, A: 0xff}
	default:
		return color.NRGBA{R: 0xc9, G: 0x30, B: 0x2e, A: 0xff}
	}
}
