package dto

type TaskItem struct {
	ID          uint64 `json:"id"`
	IsCompleted bool   `json:"is_completed"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
}

type TaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=400"`
	IsCompleted *bool   `json:"is_completed"`
	Tag         *string `json:"tag" binding:"omitempty,oneof=Home Shop Work Fitness Learning Other"`
}
