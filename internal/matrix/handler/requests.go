package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	dErrors "github.com/deidexdd-hash/mysticbot/pkg/domain-errors"
)

const reenterDate = "invalid birth date, please re-enter the date as DD.MM.YYYY"

// validate checks request shapes. Field names in errors follow the json tags.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("birthdate", validateBirthDate); err != nil {
		panic(fmt.Sprintf("register birthdate validation: %v", err))
	}
}

func validateBirthDate(fl validator.FieldLevel) bool {
	_, err := numerology.ParseBirthDate(fl.Field().String())
	return err == nil
}

// translate turns the first field failure into a domain validation error.
func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request")
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return dErrors.New(dErrors.CodeValidation, fe.Field()+" is required")
	case "birthdate":
		return dErrors.New(dErrors.CodeValidation, reenterDate)
	case "oneof":
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
	case "min", "max":
		return dErrors.New(dErrors.CodeValidation, fe.Field()+" is out of range")
	default:
		return dErrors.New(dErrors.CodeValidation, fe.Field()+" is invalid")
	}
}

func checkStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return translate(err)
	}
	return nil
}

// MatrixRequest is the body of POST /matrix and PUT /profiles/{user_id}.
type MatrixRequest struct {
	BirthDate string `json:"birth_date" validate:"required,birthdate"`
	Gender    string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
}

// Validate normalizes and checks the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *MatrixRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.Gender = strings.ToLower(strings.TrimSpace(r.Gender))
	return checkStruct(r)
}

func (r *MatrixRequest) ParsedGender() numerology.Gender {
	return numerology.Gender(r.Gender)
}

// ForecastRequest is the body of POST /forecast. A zero year means the
// current year.
type ForecastRequest struct {
	BirthDate string `json:"birth_date" validate:"required,birthdate"`
	Year      int    `json:"year,omitempty" validate:"omitempty,min=1,max=9999"`
}

func (r *ForecastRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	return checkStruct(r)
}

// CompatibilityRequest is the body of POST /compatibility.
type CompatibilityRequest struct {
	First  string `json:"first" validate:"required,birthdate"`
	Second string `json:"second" validate:"required,birthdate"`
}

func (r *CompatibilityRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.First = strings.TrimSpace(r.First)
	r.Second = strings.TrimSpace(r.Second)
	return checkStruct(r)
}
