package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 400
)

type Tag string

const (
	TagHome     Tag = "Home"
	TagShop     Tag = "Shop"
	TagWork     Tag = "Work"
	TagFitness  Tag = "Fitness"
	TagLearning Tag = "Learning"
	TagOther    Tag = "Other"
)

var Tags = []Tag{TagHome, TagShop, TagWork, TagFitness, TagLearning, TagOther}

func (t Tag) Valid() bool {
	for _, known := range Tags {
		if t == known {
			return true
		}
	}
	return false
}

func ParseTag(value string) (Tag, bool) {
	tag := Tag(value)
	return tag, tag.Valid()
}

type Task struct {
	ID          uint64
	ListID      uint64
	ListOwnerID uint64
	Title       string
	Description string
	IsCompleted bool
	Tag         Tag
	CreatedAt   time.Time
}

type NewTask struct {
	Title       string
	Description string
	IsCompleted bool
	Tag         Tag
}

// Normalize trims text fields and applies the default tag.
func (in NewTask) Normalize() NewTask {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Tag == "" {
		in.Tag = TagOther
	}
	return in
}

func (in NewTask) Validate() error {
	verr := &ValidationError{}
	validateText(verr, "title", in.Title, MaxTitleLength)
	validateText(verr, "description", in.Description, MaxDescriptionLength)
	if !in.Tag.Valid() {
		verr.Add("tag", ReasonInvalidChoice)
	}
	return verr.OrNil()
}

// TaskReplace is the update shape: title and description are always
// required, completion state and tag keep their stored value when nil.
type TaskReplace struct {
	Title       string
	Description string
	IsCompleted *bool
	Tag         *Tag
}

func (in TaskReplace) Normalize() TaskReplace {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

func (in TaskReplace) Validate() error {
	verr := &ValidationError{}
	validateText(verr, "title", in.Title, MaxTitleLength)
	validateText(verr, "description", in.Description, MaxDescriptionLength)
	if in.Tag != nil && !in.Tag.Valid() {
		verr.Add("tag", ReasonInvalidChoice)
	}
	return verr.OrNil()
}

// Apply returns the task with the replacement written over it.
func (in TaskReplace) Apply(task Task) Task {
	task.Title = in.Title
	task.Description = in.Description
	if in.IsCompleted != nil {
		task.IsCompleted = *in.IsCompleted
	}
	if in.Tag != nil {
		task.Tag = *in.Tag
	}
	return task
}

type TaskFilter struct {
	IsCompleted *bool
	Tag         *Tag
}

func validateText(verr *ValidationError, field, value string, max int) {
	switch {
	case value == "":
		verr.Add(field, ReasonRequired)
	case utf8.RuneCountInString(value) > max:
		verr.Add(field, ReasonTooLong)
	}
}
