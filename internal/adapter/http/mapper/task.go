package mapper

import (
	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		IsCompleted: task.IsCompleted,
		Title:       task.Title,
		Description: task.Description,
		Tag:         string(task.Tag),
	}
}
