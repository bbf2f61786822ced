package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError points at the offending field so the UI can report validation
// problems in place, next to the input.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the draft before any network call: required titles on
// course, modules and lessons, and in create mode a positive integer course
// id. An invalid draft never reaches the API.
func (e *Editor) Validate() ValidationErrors {
	var errs ValidationErrors
	d := &e.draft

	if d.CreateMode {
		if err := validate.Var(strings.TrimSpace(d.CourseIDInput), "required,number"); err != nil {
			errs = append(errs, FieldError{Field: "course_id", Message: "must be a number"})
		} else if id, err := strconv.ParseInt(strings.TrimSpace(d.CourseIDInput), 10, 64); err != nil || id <= 0 {
			errs = append(errs, FieldError{Field: "course_id", Message: "must be a positive integer"})
		}
	}

	if err := validate.Var(strings.TrimSpace(d.Title), "required"); err != nil {
		errs = append(errs, FieldError{Field: "title", Message: "is required"})
	}

	for mi, m := range d.Modules {
		if err := validate.Var(strings.TrimSpace(m.Title), "required"); err != nil {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("modules[%d].title", mi),
				Message: "is required",
			})
		}
		for li, l := range m.Lessons {
			if err := validate.Var(strings.TrimSpace(l.Title), "required"); err != nil {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("modules[%d].lessons[%d].title", mi, li),
					Message: "is required",
				})
			}
		}
	}
	return errs
}
