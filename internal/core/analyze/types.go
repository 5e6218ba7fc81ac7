package analyze

// Summary is the headline counters for a filtered collection
type Summary struct {
	Messages int `json:"messages"`
	Words    int `json:"words"`
	Media    int `json:"media"`
	Links    int `json:"links"`
}

// UserCount is one row of the busy-users ranking
type UserCount struct {
	Author   string `json:"author"`
	Messages int    `json:"messages"`
}

// UserShare is one row of the per-author percentage table
type UserShare struct {
	Author  string  `json:"author"`
	Percent float64 `json:"percent"`
}

// BusyUsers bundles the top ranking and the full share table
type BusyUsers struct {
	Top    []UserCount `json:"top"`
	Shares []UserShare `json:"shares"`
}

// WordCount is one row of the common-words table
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// EmojiCount is one row of the emoji frequency table
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// MonthBucket is one row of the monthly timeline, labelled "January-2023"
type MonthBucket struct {
	Year     int    `json:"year"`
	MonthNum int    `json:"month_num"`
	Month    string `json:"month"`
	Label    string `json:"label"`
	Messages int    `json:"messages"`
}

// DayBucket is one row of the daily timeline
type DayBucket struct {
	Date     string `json:"date"`
	Messages int    `json:"messages"`
}

// NameCount is a (label, count) row for the week and month activity maps
type NameCount struct {
	Name     string `json:"name"`
	Messages int    `json:"messages"`
}

// Heatmap is the weekday x period activity grid. All seven days and all 24
// periods are present and zero-filled in fixed canonical order
type Heatmap struct {
	Days    []string `json:"days"`    // Monday..Sunday
	Periods []string `json:"periods"` // 0-1 .. 23-00
	Counts  [][]int  `json:"counts"`  // Counts[day][period]
}

// WordCloud is the cleaned frequency-weighted blob for an external renderer.
// Empty reports an empty-after-cleaning corpus; the caller renders nothing
type WordCloud struct {
	Text  string `json:"text"`
	Empty bool   `json:"empty"`
}
