package core

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report column names from the source header instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		switch fld.Name {
		case "Company":
			return ColumnCompany
		case "FiscalYear":
			return ColumnFiscalYear
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validator returns the validator used for records so other layers can
// apply the same rules and field naming to their own structs.
func Validator() *validator.Validate {
	return validate
}

// ValidateRecord applies presence checks to a record.
// Only presence is checked; values are not range-validated.
func ValidateRecord(r Record) error {
	return DescribeValidation(validate.Struct(r))
}

// DescribeValidation flattens validator errors into a single error whose
// text is matched by MapError.
func DescribeValidation(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			msgs = append(msgs, fmt.Sprintf("required field %q is empty", fe.Field()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("field %q failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
