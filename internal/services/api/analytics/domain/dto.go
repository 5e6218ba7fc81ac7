// Package domain holds DTOs for analytics http and service contracts
package domain

import "chatlens/internal/core/analyze"

// AnalyzeInput carries the raw export plus an optional author filter.
// Every request recomputes from scratch; nothing is cached between calls
type AnalyzeInput struct {
	Content string `json:"content" validate:"required" example:"1/2/23, 10:15 AM - Ana: hello"`
	// Author narrows the aggregation to one sender; empty means everyone
	Author string `json:"author,omitempty" validate:"omitempty,min=1,max=200" example:"Ana"`
}

// Result aliases keep the wire types owned by the aggregation layer

// SummaryResult is the headline counter block
type SummaryResult = analyze.Summary

// BusyUsersResult is the ranking plus percent table
type BusyUsersResult = analyze.BusyUsers

// WordCountRow is one common-words table row
type WordCountRow = analyze.WordCount

// WordCloudResult is the cleaned corpus blob
type WordCloudResult = analyze.WordCloud

// EmojiRow is one emoji frequency row
type EmojiRow = analyze.EmojiCount

// MonthBucketRow is one monthly timeline bucket
type MonthBucketRow = analyze.MonthBucket

// DayBucketRow is one daily timeline bucket
type DayBucketRow = analyze.DayBucket

// NameCountRow is one weekday or month activity row
type NameCountRow = analyze.NameCount

// HeatmapResult is the weekday by period grid
type HeatmapResult = analyze.Heatmap

// Report bundles every aggregation in one response
type Report struct {
	ID          string           `json:"id" example:"7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"`
	GeneratedAt string           `json:"generated_at" example:"2023-02-03T10:15:00Z"`
	Author      string           `json:"author,omitempty" example:"Ana"`
	Summary     SummaryResult    `json:"summary"`
	BusyUsers   BusyUsersResult  `json:"busy_users"`
	CommonWords []WordCountRow   `json:"common_words"`
	WordCloud   WordCloudResult  `json:"word_cloud"`
	Emoji       []EmojiRow       `json:"emoji"`
	Monthly     []MonthBucketRow `json:"monthly_timeline"`
	Daily       []DayBucketRow   `json:"daily_timeline"`
	WeekDays    []NameCountRow   `json:"week_activity"`
	Months      []NameCountRow   `json:"month_activity"`
	Heatmap     HeatmapResult    `json:"heatmap"`
}
