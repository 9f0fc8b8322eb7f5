package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/core/domain"
)

// ErrInvalidPayload is returned when the body is not a JSON object at all.
var ErrInvalidPayload = errors.New("invalid payload")

// UseJSONFieldNames makes gin's validator report json tag names, which
// are the names clients see.
func UseJSONFieldNames() {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	engine.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FromBindError turns a gin binding failure into a field-level
// ValidationError when the failing fields are known.
func FromBindError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		verr := &domain.ValidationError{}
		for _, fe := range fieldErrors {
			verr.Add(fe.Field(), reasonForTag(fe.Tag()))
		}
		return verr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		verr := &domain.ValidationError{}
		verr.Add(typeErr.Field, domain.ReasonInvalid)
		return verr
	}

	return ErrInvalidPayload
}

func BuildNewList(req dto.ListRequest) (domain.NewList, error) {
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return domain.NewList{}, err
	}

	input := domain.NewList{Date: date}
	if req.ImportantFlag != nil {
		input.ImportantFlag = *req.ImportantFlag
	}
	return input, nil
}

func BuildListPatch(req dto.ListRequest) (domain.ListPatch, error) {
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return domain.ListPatch{}, err
	}
	return domain.ListPatch{Date: date, ImportantFlag: req.ImportantFlag}, nil
}

func BuildNewTask(req dto.TaskRequest) (domain.NewTask, error) {
	input := domain.NewTask{
		Title:       deref(req.Title),
		Description: deref(req.Description),
		Tag:         domain.Tag(deref(req.Tag)),
	}
	if req.IsCompleted != nil {
		input.IsCompleted = *req.IsCompleted
	}

	input = input.Normalize()
	return input, input.Validate()
}

func BuildTaskReplace(req dto.TaskRequest) (domain.TaskReplace, error) {
	input := domain.TaskReplace{
		Title:       deref(req.Title),
		Description: deref(req.Description),
		IsCompleted: req.IsCompleted,
	}
	if req.Tag != nil {
		tag := domain.Tag(*req.Tag)
		input.Tag = &tag
	}

	input = input.Normalize()
	return input, input.Validate()
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	date, err := domain.ParseDate(strings.TrimSpace(*value))
	if err != nil {
		verr := &domain.ValidationError{}
		verr.Add("date", domain.ReasonInvalidDate)
		return nil, verr
	}
	return &date, nil
}

func reasonForTag(tag string) string {
	switch tag {
	case "required":
		return domain.ReasonRequired
	case "max":
		return domain.ReasonTooLong
	case "oneof":
		return domain.ReasonInvalidChoice
	case "datetime":
		return domain.ReasonInvalidDate
	default:
		return domain.ReasonInvalid
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
