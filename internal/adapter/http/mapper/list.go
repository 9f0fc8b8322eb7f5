package mapper

import (
	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/core/domain"
)

func ToListItems(lists []domain.List) []dto.ListItem {
	items := make([]dto.ListItem, 0, len(lists))
	for _, list := range lists {
		items = append(items, ToListItem(list))
	}
	return items
}

func ToListItem(list domain.List) dto.ListItem {
	return dto.ListItem{
		ID:            list.ID,
		Date:          list.Date.Format(domain.DateLayout),
		ImportantFlag: list.ImportantFlag,
	}
}

func ToListSummary(summary domain.ListSummary) dto.ListSummary {
	return dto.ListSummary{
		ID:             summary.ID,
		Date:           summary.Date.Format(domain.DateLayout),
		TotalTasks:     summary.TotalTasks,
		CompletedTasks: summary.CompletedTasks,
	}
}
