package draft

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Flat record drafts share one validator. Unlike the product form, these
// screens have no list fields or file handling, just tagged structs.
var recordValidator = validator.New()

// AddressRecord is the draft for the address modal.
type AddressRecord struct {
	Title   string `json:"title" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"omitempty,min=7"`
	Email   string `json:"email" validate:"omitempty,email"`
	Status  string `json:"status" validate:"required,oneof=active inactive"`
}

// FooterRecordDraft is the draft for the footer content editor.
type FooterRecordDraft struct {
	Description string `json:"description" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,min=7"`
	Facebook    string `json:"facebook" validate:"omitempty,url"`
	Instagram   string `json:"instagram" validate:"omitempty,url"`
	Twitter     string `json:"twitter" validate:"omitempty,url"`
	LinkedIn    string `json:"linkedin" validate:"omitempty,url"`
}

// ApplicationRecord is the public distributor application form.
type ApplicationRecord struct {
	Company     string `json:"company" validate:"required"`
	ContactName string `json:"contactName" validate:"required"`
	Title       string `json:"title"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,min=7"`
	Channels    string `json:"channels"`
}

// CheckRecord validates a flat record draft and returns a field-keyed error
// map with readable messages, empty on success.
func CheckRecord(record interface{}) map[string]string {
	errs := map[string]string{}
	err := recordValidator.Struct(record)
	if err == nil {
		return errs
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_"] = err.Error()
		return errs
	}

	for _, fe := range validationErrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		var message string
		switch fe.Tag() {
		case "required":
			message = field + " is required"
		case "email":
			message = field + " must be a valid email address"
		case "url":
			message = field + " must be a valid URL"
		case "min":
			message = field + " must be at least " + fe.Param() + " characters"
		case "oneof":
			message = field + " must be one of: " + fe.Param()
		default:
			message = field + " is invalid"
		}
		if _, seen := errs[field]; !seen {
			errs[field] = message
		}
	}
	return errs
}
