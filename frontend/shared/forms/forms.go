// Package forms defines the console's form schemas and the client-side
// validation rules bound to them.
package forms

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// SignupForm backs both the signup page and the admin create-user page.
type SignupForm struct {
	FirstName       string `validate:"required,alpha"`
	LastName        string `validate:"required,alpha"`
	Username        string `validate:"required"`
	DOB             string `validate:"required,dateonly,adult"`
	Phone           string `validate:"required,usphone"`
	Password        string `validate:"required,password"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Role            string `validate:"required,oneof=Admin Viewer"`
}

// EditForm carries the only two fields the edit contract allows. Phone is
// validated after normalization to the national display form.
type EditForm struct {
	Phone string `validate:"required,phonedisplay"`
	Role  string `validate:"required,oneof=Admin Viewer"`
}

var phoneDisplayRe = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)

var fieldLabels = map[string]string{
	"FirstName":       "First Name",
	"LastName":        "Last Name",
	"Username":        "Username",
	"DOB":             "Date of Birth",
	"Phone":           "Phone Number",
	"Password":        "Password",
	"ConfirmPassword": "Confirm Password",
	"Role":            "Role",
}

// Validator validates form schemas. With disabled set, Validate always
// passes; the developer escape hatch that leaves enforcement to the server.
type Validator struct {
	v        *validator.Validate
	disabled bool
}

func NewValidator(disabled bool) *Validator {
	v := validator.New()
	_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("adult", func(fl validator.FieldLevel) bool {
		dob, err := time.Parse(DateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		return Adult(dob, time.Now())
	})
	_ = v.RegisterValidation("usphone", func(fl validator.FieldLevel) bool {
		return ValidUSPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return ValidatePassword(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("phonedisplay", func(fl validator.FieldLevel) bool {
		return phoneDisplayRe.MatchString(fl.Field().String())
	})
	return &Validator{v: v, disabled: disabled}
}

// Validate returns one message per invalid field, or nil when the form is
// valid or validation is disabled.
func (fv *Validator) Validate(form any) []string {
	if fv.disabled {
		return nil
	}
	err := fv.v.Struct(form)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabels[fe.StructField()]
	if label == "" {
		label = fe.StructField()
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "alpha":
		return label + " must contain only letters"
	case "dateonly":
		return label + " must be a valid date"
	case "adult":
		return "You must be at least 18 years old"
	case "usphone":
		return "Phone number must be valid"
	case "password":
		if err := ValidatePassword(fe.Value().(string)); err != nil {
			return err.Error()
		}
		return "Password is invalid"
	case "eqfield":
		return "Passwords must match"
	case "phonedisplay":
		return "Phone number must match the format (XXX) XXX-XXXX"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, fe.Tag())
	}
}
