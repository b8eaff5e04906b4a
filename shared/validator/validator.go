package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"arena/shared/constant"
	"arena/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// clock accepts a 24h HH:MM wall-clock value.
func clock(field val.FieldLevel) bool {
	value := field.Field().String()
	if len(value) != len(constant.ClockFormat) {
		return false
	}

	_, err := time.Parse(constant.ClockFormat, value)

	return err == nil
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	if err := validate.RegisterValidation("clock", clock); err != nil {
		panic(err)
	}

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}
}

// Validate decodes a JSON body into data and validates it.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateID treats an ID that is not a UUID as a missing entity.
func ValidateID(id, entity string) error {
	if err := validate.Var(id, "required,uuid"); err != nil {
		return failure.NotFound(entity + " not found") //nolint:wrapcheck
	}

	return nil
}
