package models

import "time"

// Visit is a single page-view event.
type Visit struct {
	Page   string    `json:"page"`
	Device string    `json:"device"`
	Time   time.Time `json:"time"`
}

// AnalyticsData is the aggregated visit state persisted under the analytics
// key. Visits keeps the raw events inside the retention window; the maps hold
// all-time counters.
type AnalyticsData struct {
	Visits      []Visit        `json:"visits"`
	Pages       map[string]int `json:"pages"`
	Devices     map[string]int `json:"devices"`
	Hours       map[string]int `json:"hours"`
	TotalVisits int            `json:"total_visits"`
}

func NewAnalyticsData() *AnalyticsData {
	return &AnalyticsData{
		Visits:  []Visit{},
		Pages:   make(map[string]int),
		Devices: make(map[string]int),
		Hours:   make(map[string]int),
	}
}
