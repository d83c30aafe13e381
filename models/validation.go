package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	personNamePattern   = regexp.MustCompile(`^[A-Za-z\-' ]+$`)
	ukPhonePattern      = regexp.MustCompile(`^(07\d{9}|0\d{10})$`)
	ukPostcodePattern   = regexp.MustCompile(`^([A-Za-z][A-Ha-hJ-Yj-y]?\d[A-Za-z\d]? ?\d[A-Za-z]{2}|GIR ?0A{2})$`)
	addressLinePattern  = regexp.MustCompile(`^[A-Za-z0-9\-',\. ]+$`)
	roomTypeCodePattern = regexp.MustCompile(`^[A-Z]{1,3}$`)
	notesPattern        = regexp.MustCompile(`^[A-Za-z0-9\-',\.\!\?\s]+$`)
)

// GuestTitles lists the titles accepted on guest records.
var GuestTitles = []string{"Mr", "Miss", "Mrs", "Ms", "Dr", "Prof", "Sir", "Dame"}

// ValidPersonName reports whether s is acceptable as a name search term or
// name field value.
func ValidPersonName(s string) bool { return personNamePattern.MatchString(s) }

// ValidUKPostcode reports whether s is a full UK postcode.
func ValidUKPostcode(s string) bool { return ukPostcodePattern.MatchString(s) }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json names so messages match the API payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"personname":   regexRule(personNamePattern),
		"ukphone":      regexRule(ukPhonePattern),
		"ukpostcode":   regexRule(ukPostcodePattern),
		"addrline":     regexRule(addressLinePattern),
		"roomtypecode": regexRule(roomTypeCodePattern),
		"guestnotes":   regexRule(notesPattern),
		"persontitle":  validTitle,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %s: %v", tag, err))
		}
	}
	return v
}

func regexRule(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

func validTitle(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, t := range GuestTitles {
		if value == t {
			return true
		}
	}
	return false
}

// checkStruct runs the shared validator over a tagged struct and converts
// the first failure into a *ValidationError carrying a front-desk friendly
// message.
func checkStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) || len(ferrs) == 0 {
		return err
	}
	fe := ferrs[0]
	return &ValidationError{Field: fe.Field(), Message: messageFor(fe)}
}

func messageFor(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Please enter a valid email address"
	case "ukphone":
		return "Phone number must be a valid UK number with only digits (e.g., '07123456789' or '02012345678')"
	case "ukpostcode":
		return "Please enter a valid UK postcode (e.g., 'SW1A 1AA', 'M1 1AA' or 'B338TH')"
	case "persontitle":
		return fmt.Sprintf("%v is not a valid title. Please use one of: %s", fe.Value(), strings.Join(GuestTitles, ", "))
	case "personname":
		return label + " can only contain letters, hyphens, apostrophes and spaces"
	case "addrline":
		return label + " can only contain letters, numbers, hyphens, apostrophes, commas, periods and spaces"
	case "roomtypecode":
		return "The room type code must be between 1 and 3 uppercase letters"
	case "guestnotes":
		return "Notes can only contain letters, numbers, basic punctuation and spaces"
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s cannot exceed %s", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

func fieldLabel(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	if label == "" {
		return name
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
