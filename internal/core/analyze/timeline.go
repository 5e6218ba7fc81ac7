package analyze

import (
	"sort"

	"chatlens/internal/core/transcript"
)

// MonthlyTimeline buckets the filtered records by (year, month), sorted
// chronologically, labelled "January-2023"
func (a *Analyzer) MonthlyTimeline(col transcript.Collection, author string) []MonthBucket {
	type key struct{ year, month int }
	counts := make(map[key]int)
	names := make(map[key]string)
	for _, r := range col.Filter(author).Records() {
		k := key{year: r.Calendar.Year, month: r.Calendar.MonthNum}
		counts[k]++
		names[k] = r.Calendar.Month
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := make([]MonthBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, MonthBucket{
			Year:     k.year,
			MonthNum: k.month,
			Month:    names[k],
			Label:    names[k] + "-" + itoa(k.year),
			Messages: counts[k],
		})
	}
	return out
}

// DailyTimeline counts the filtered records per calendar date, sorted
func (a *Analyzer) DailyTimeline(col transcript.Collection, author string) []DayBucket {
	counts := make(map[string]int)
	for _, r := range col.Filter(author).Records() {
		counts[r.Calendar.Date]++
	}

	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]DayBucket, 0, len(dates))
	for _, d := range dates {
		out = append(out, DayBucket{Date: d, Messages: counts[d]})
	}
	return out
}
