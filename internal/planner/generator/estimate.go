package generator

import (
	"time"
)

const (
	estimateBase    = 50 * time.Millisecond
	estimatePerItem = 2 * time.Millisecond
)

var modeTimeMultiplier = map[Mode]float64{
	ModeSpeed:    1,
	ModeBalanced: 2.5,
	ModeQuality:  5,
}

// EstimateGenerationTime predicts how long a run over catalogSize items takes. Week plans scale
// with opts.Days. Unknown modes are estimated as the default mode.
func (g *Generator) EstimateGenerationTime(opts Options, catalogSize int) time.Duration {
	multiplier, ok := modeTimeMultiplier[opts.Mode]
	if !ok {
		multiplier = modeTimeMultiplier[g.cfg.DefaultMode]
	}
	if catalogSize < 0 {
		catalogSize = 0
	}
	days := opts.Days
	if days < 1 {
		days = 1
	}

	perDay := float64(estimateBase+estimatePerItem*time.Duration(catalogSize)) * multiplier

	return time.Duration(perDay) * time.Duration(days)
}
