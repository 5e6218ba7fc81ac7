// Package transcript parses exported chat transcripts into structured records.
// Pipeline order
// 1 Split the raw blob on timestamp boundaries into (token, chunk) pairs
// 2 Normalize and parse each timestamp token through the format cascade
// 3 Classify each chunk as an authored message or a group notification
// 4 Enrich each record with derived calendar fields for grouping
package transcript

import "time"

// Notification is the sentinel author assigned to system lines that carry
// no human author (joins, leaves, subject changes)
const Notification = "group_notification"

// MediaPlaceholder is the body text exports substitute for omitted media
const MediaPlaceholder = "<Media omitted>"

// Calendar holds fields derived purely from a record timestamp
type Calendar struct {
	Date     string `json:"date"` // civil date, 2006-01-02
	Year     int    `json:"year"`
	MonthNum int    `json:"month_num"` // 1..12
	Month    string `json:"month"`     // January..December
	Day      int    `json:"day"`
	Weekday  string `json:"weekday"` // Monday..Sunday
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Period   string `json:"period"` // hour bucket label, "9-10" or "23-00"
}

// Record is one parsed message or notification
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Calendar  Calendar  `json:"calendar"`
}

// IsNotification reports whether the record is a system notification
func (r Record) IsNotification() bool { return r.Author == Notification }

// IsMedia reports whether the record body is exactly the media placeholder
func (r Record) IsMedia() bool { return r.Body == MediaPlaceholder }

// Collection is an ordered, immutable set of parsed records.
// Aggregations only ever read, filter, or group it
type Collection struct {
	records []Record
}

// NewCollection wraps records in a Collection; the slice is not copied so
// callers must not mutate it afterwards
func NewCollection(records []Record) Collection { return Collection{records: records} }

// Len returns the record count
func (c Collection) Len() int { return len(c.records) }

// Records returns the underlying records in input order
func (c Collection) Records() []Record { return c.records }

// Authors returns human authors in first-encounter order, excluding the
// notification sentinel
func (c Collection) Authors() []string {
	seen := make(map[string]struct{}, 8)
	var out []string
	for _, r := range c.records {
		if r.Author == Notification {
			continue
		}
		if _, ok := seen[r.Author]; ok {
			continue
		}
		seen[r.Author] = struct{}{}
		out = append(out, r.Author)
	}
	return out
}

// Filter returns records whose author equals author, preserving order.
// An empty author or the sentinel "all" keeps everything, notifications included
func (c Collection) Filter(author string) Collection {
	if author == "" || author == "all" {
		return c
	}
	out := make([]Record, 0, len(c.records))
	for _, r := range c.records {
		if r.Author == author {
			out = append(out, r)
		}
	}
	return Collection{records: out}
}
