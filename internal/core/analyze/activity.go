package analyze

import (
	"strconv"

	"chatlens/internal/core/transcript"
)

// weekdayOrder is the canonical heatmap row order
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func itoa(n int) string { return strconv.Itoa(n) }

// periodOrder returns the canonical heatmap column order, 0-1 through 23-00
func periodOrder() []string {
	out := make([]string, 24)
	for h := 0; h < 24; h++ {
		out[h] = transcript.Period(h)
	}
	return out
}

// WeekActivity counts the filtered records per weekday name, descending,
// ties by first encounter
func (a *Analyzer) WeekActivity(col transcript.Collection, author string) []NameCount {
	c := newCounter()
	for _, r := range col.Filter(author).Records() {
		c.add(r.Calendar.Weekday)
	}
	return nameCounts(c)
}

// MonthActivity counts the filtered records per month name, descending,
// ties by first encounter
func (a *Analyzer) MonthActivity(col transcript.Collection, author string) []NameCount {
	c := newCounter()
	for _, r := range col.Filter(author).Records() {
		c.add(r.Calendar.Month)
	}
	return nameCounts(c)
}

func nameCounts(c *counter) []NameCount {
	out := make([]NameCount, 0, len(c.order))
	for _, p := range c.sortedDesc() {
		out = append(out, NameCount{Name: p.key, Messages: p.count})
	}
	return out
}

// ActivityHeatmap builds the weekday x period grid for the author filter.
// Cells with no records are zero-filled so the grid shape never varies
func (a *Analyzer) ActivityHeatmap(col transcript.Collection, author string) Heatmap {
	periods := periodOrder()

	periodIdx := make(map[string]int, len(periods))
	for i, p := range periods {
		periodIdx[p] = i
	}
	dayIdx := make(map[string]int, len(weekdayOrder))
	for i, d := range weekdayOrder {
		dayIdx[d] = i
	}

	counts := make([][]int, len(weekdayOrder))
	for i := range counts {
		counts[i] = make([]int, len(periods))
	}
	for _, r := range col.Filter(author).Records() {
		counts[dayIdx[r.Calendar.Weekday]][periodIdx[r.Calendar.Period]]++
	}

	return Heatmap{Days: weekdayOrder, Periods: periods, Counts: counts}
}
