package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PageQuery holds the query parameters of a product listing request
type PageQuery struct {
	Page     int    `validate:"gte=1"`
	Currency string `validate:"omitempty,len=3,uppercase,alpha"`
}

// ProductQuery holds the query parameters of a product detail request
type ProductQuery struct {
	ID       int    `validate:"gte=1"`
	Currency string `validate:"omitempty,len=3,uppercase,alpha"`
	Image    string `validate:"omitempty,url"`
}

// PageWindowQuery holds the parameters of a page-window computation
type PageWindowQuery struct {
	Current int `validate:"gte=1"`
	Total   int `validate:"gte=0"`
	Window  int `validate:"gte=1,lte=25"`
}

type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	return &Validation{validator: validator.New()}
}

// ValidationError wraps the validator's FieldError
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (v ValidationError) Error() string {
	return fmt.Sprintf("Field '%s': %s", v.Field, v.Message)
}

// ValidationErrors is a slice of ValidationError
type ValidationErrors []ValidationError

// Messages flattens the errors for API responses
func (ve ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(ve))
	for _, v := range ve {
		msgs = append(msgs, v.Error())
	}
	return msgs
}

func (v *Validation) Validate(i interface{}) ValidationErrors {
	var errs ValidationErrors

	err := v.validator.Struct(i)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return ValidationErrors{{Field: "", Message: err.Error()}}
		}
		for _, ve := range validationErrors {
			errs = append(errs, ValidationError{
				Field:   ve.Field(),
				Message: fmt.Sprintf("failed on the '%s' tag", ve.Tag()),
			})
		}
	}

	return errs
}
