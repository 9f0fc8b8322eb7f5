package validation

import (
	"strconv"

	"tasklist/internal/core/domain"
)

// Query is the subset of url.Values the filter parsers read.
type Query interface {
	Get(key string) string
}

func ParseListFilter(q Query) (domain.ListFilter, error) {
	verr := &domain.ValidationError{}
	var filter domain.ListFilter

	if raw := q.Get("date"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			verr.Add("date", domain.ReasonInvalidDate)
		} else {
			filter.Date = &date
		}
	}
	if raw := q.Get("important_flag"); raw != "" {
		value, ok := parseBool(raw)
		if !ok {
			verr.Add("important_flag", domain.ReasonInvalid)
		} else {
			filter.ImportantFlag = &value
		}
	}

	return filter, verr.OrNil()
}

func ParseTaskFilter(q Query) (domain.TaskFilter, error) {
	verr := &domain.ValidationError{}
	var filter domain.TaskFilter

	if raw := q.Get("is_completed"); raw != "" {
		value, ok := parseBool(raw)
		if !ok {
			verr.Add("is_completed", domain.ReasonInvalid)
		} else {
			filter.IsCompleted = &value
		}
	}
	if raw := q.Get("tag"); raw != "" {
		tag, ok := domain.ParseTag(raw)
		if !ok {
			verr.Add("tag", domain.ReasonInvalidChoice)
		} else {
			filter.Tag = &tag
		}
	}

	return filter, verr.OrNil()
}

// ParsePageNumber accepts an empty value as the first page.
func ParsePageNumber(raw string) (int, bool) {
	if raw == "" {
		return 1, true
	}
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		return 0, false
	}
	return number, true
}

func parseBool(raw string) (bool, bool) {
	switch raw {
	case "true", "True", "1":
		return true, true
	case "false", "False", "0":
		return false, true
	default:
		return false, false
	}
}
