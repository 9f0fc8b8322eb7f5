package domain

import "time"

const DateLayout = "2006-01-02"

type List struct {
	ID            uint64
	OwnerID       uint64
	Date          time.Time
	ImportantFlag bool
	CreatedAt     time.Time
}

// ListSummary is computed on every read and never stored.
type ListSummary struct {
	List
	TotalTasks     int
	CompletedTasks int
}

type NewList struct {
	Date          *time.Time
	ImportantFlag bool
}

// ListPatch leaves nil fields untouched.
type ListPatch struct {
	Date          *time.Time
	ImportantFlag *bool
}

func (p ListPatch) IsEmpty() bool {
	return p.Date == nil && p.ImportantFlag == nil
}

type ListFilter struct {
	Date          *time.Time
	ImportantFlag *bool
}

// TruncateDate drops the clock part and keeps the calendar date in UTC.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
