// Package domain holds DTOs for transcript http and service contracts
package domain

// ParseInput carries a raw exported chat and an optional preview cap
type ParseInput struct {
	Content string `json:"content" validate:"required" example:"1/2/23, 10:15 AM - Ana: hello"`
	// Preview caps the number of records echoed back; 0 returns all of them
	Preview int `json:"preview,omitempty" validate:"omitempty,min=1,max=500" example:"50"`
}

// Record is one parsed message row
type Record struct {
	Timestamp string `json:"timestamp" example:"2023-01-02T10:15:00Z"`
	Author    string `json:"author" example:"Ana"`
	Body      string `json:"body" example:"hello"`
	Date      string `json:"date" example:"2023-01-02"`
	Weekday   string `json:"weekday" example:"Monday"`
	Period    string `json:"period" example:"10-11"`
}

// ParseResult summarizes a parsed transcript
type ParseResult struct {
	Count   int      `json:"count" example:"128"`
	Authors []string `json:"authors"`
	Records []Record `json:"records"`
}
