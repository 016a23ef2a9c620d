package metrics

import "math"

// Population reading-frequency brackets (YouGov 2023 style): finished-book
// count threshold -> percentile of adults read more than.
var percentileTable = [][2]int{
	{0, 0},
	{1, 46},
	{2, 51},
	{3, 56},
	{4, 62},
	{5, 67},
	{6, 72},
	{7, 76},
	{8, 77},
	{9, 78},
	{10, 79},
	{15, 85},
	{20, 88},
	{30, 92},
	{40, 94},
	{50, 99},
}

// Percentile estimates how a yearly finished-book count compares to the
// adult population. Counts between two brackets interpolate linearly; 50 or
// more books caps at 99.
func Percentile(totalBooks int) int {
	if totalBooks <= 0 {
		return 0
	}
	if totalBooks >= 50 {
		return 99
	}

	for i := 1; i < len(percentileTable); i++ {
		loBooks, loPct := percentileTable[i-1][0], percentileTable[i-1][1]
		hiBooks, hiPct := percentileTable[i][0], percentileTable[i][1]
		if totalBooks <= hiBooks {
			span := hiBooks - loBooks
			if span < 1 {
				span = 1
			}
			frac := float64(totalBooks-loBooks) / float64(span)
			return int(math.Round(float64(loPct) + frac*float64(hiPct-loPct)))
		}
	}
	return 99
}
