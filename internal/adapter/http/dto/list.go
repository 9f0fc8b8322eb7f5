package dto

type ListItem struct {
	ID            uint64 `json:"id"`
	Date          string `json:"date"`
	ImportantFlag bool   `json:"important_flag"`
}

type ListSummary struct {
	ID             uint64 `json:"id"`
	Date           string `json:"date"`
	TotalTasks     int    `json:"total_tasks"`
	CompletedTasks int    `json:"completed_tasks"`
}

// ListRequest is the body of both POST and PUT; absent fields stay nil.
type ListRequest struct {
	Date          *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ImportantFlag *bool   `json:"important_flag"`
}
