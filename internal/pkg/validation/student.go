package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kerem/studentroster/internal/app/models"
	"github.com/kerem/studentroster/internal/app/models/dto"
)

// Field length and range limits for student records
const (
	NameMaxLength     = 100
	LocationMaxLength = 255
	PhoneMaxLength    = 50
	EmailMaxLength    = 255
	AgeMin            = 0
	AgeMax            = 150
)

// Validation rule patterns
var (
	// EmailPattern is a syntax check, not a deliverability check
	EmailPattern = `^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`

	// PhonePattern restricts phone numbers to digits and common phone symbols
	PhonePattern = `^[0-9+()\-.\s]*$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// DateLayout is the canonical calendar-date format for date_of_birth
const DateLayout = "2006-01-02"

// StudentValidator is the single gate every student write passes through.
// It is pure: no I/O, and the clock is injected so the future-date rule is
// deterministic under test.
type StudentValidator struct {
	now func() time.Time
}

// NewStudentValidator creates a validator. A nil clock falls back to time.Now.
func NewStudentValidator(now func() time.Time) *StudentValidator {
	if now == nil {
		now = time.Now
	}
	return &StudentValidator{now: now}
}

// Validate checks every field of the request independently and collects all
// violations. On success it returns the normalized input: text fields
// trimmed, optional empties converted to nil, age coerced to int and
// date_of_birth normalized to YYYY-MM-DD.
func (v *StudentValidator) Validate(req dto.StudentRequest) (models.StudentInput, *Errors) {
	var errs Errors
	out := models.StudentInput{}

	out.FirstName = v.requiredText(&errs, "first_name", "First name", req.FirstName, NameMaxLength)
	out.MiddleName = v.optionalText(&errs, "middle_name", "Middle name", req.MiddleName, NameMaxLength)
	out.LastName = v.requiredText(&errs, "last_name", "Last name", req.LastName, NameMaxLength)
	out.Age = v.age(&errs, req.Age)
	out.DateOfBirth = v.dateOfBirth(&errs, req.DateOfBirth)
	out.CurrentLocation = v.optionalText(&errs, "current_location", "Current location", req.CurrentLocation, LocationMaxLength)
	out.Phone = v.phone(&errs, req.Phone)
	out.Email = v.email(&errs, req.Email)

	if errs.HasErrors() {
		return models.StudentInput{}, &errs
	}
	return out, nil
}

func (v *StudentValidator) requiredText(errs *Errors, field, label, value string, max int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.add(field, CodeRequired, label+" is required")
		return ""
	}
	if utf8.RuneCountInString(value) > max {
		errs.add(field, CodeTooLong, fmt.Sprintf("%s must be at most %d characters", label, max))
		return ""
	}
	return value
}

func (v *StudentValidator) optionalText(errs *Errors, field, label, value string, max int) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if utf8.RuneCountInString(value) > max {
		errs.add(field, CodeTooLong, fmt.Sprintf("%s must be at most %d characters", label, max))
		return nil
	}
	return &value
}

// age coerces string or numeric input to an integer before the range check
func (v *StudentValidator) age(errs *Errors, raw interface{}) int {
	age, ok := coerceInt(raw)
	if !ok {
		errs.add("age", CodeInvalidType, "Age must be a number")
		return 0
	}
	if age < AgeMin || age > AgeMax {
		errs.add("age", CodeOutOfRange, fmt.Sprintf("Age must be between %d and %d", AgeMin, AgeMax))
		return 0
	}
	return age
}

func (v *StudentValidator) dateOfBirth(errs *Errors, value string) string {
	value = strings.TrimSpace(value)
	parsed, err := ParseDate(value)
	if err != nil {
		errs.add("date_of_birth", CodeInvalidDate, "Date of birth must be valid and not in the future")
		return ""
	}

	now := v.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.After(today) {
		errs.add("date_of_birth", CodeFutureDate, "Date of birth must be valid and not in the future")
		return ""
	}
	return parsed.Format(DateLayout)
}

func (v *StudentValidator) phone(errs *Errors, value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if utf8.RuneCountInString(value) > PhoneMaxLength {
		errs.add("phone", CodeTooLong, fmt.Sprintf("Phone must be at most %d characters", PhoneMaxLength))
		return nil
	}
	if !CompiledPatterns.Phone.MatchString(value) {
		errs.add("phone", CodeInvalidFormat, "Phone can only contain numbers and phone symbols")
		return nil
	}
	return &value
}

func (v *StudentValidator) email(errs *Errors, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.add("email", CodeRequired, "Email is required")
		return ""
	}
	if utf8.RuneCountInString(value) > EmailMaxLength {
		errs.add("email", CodeTooLong, fmt.Sprintf("Email must be at most %d characters", EmailMaxLength))
		return ""
	}
	if !CompiledPatterns.Email.MatchString(value) {
		errs.add("email", CodeInvalidFormat, "Invalid email address")
		return ""
	}
	return value
}

// ParseDate parses a calendar date, accepting a plain date or a full
// RFC 3339 timestamp. The time-of-day component, if any, is discarded.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// coerceInt accepts the integer shapes a JSON body can carry: a number, a
// numeric string, or a json.Number. Fractional values are rejected.
func coerceInt(raw interface{}) (int, bool) {
	switch value := raw.(type) {
	case int:
		return value, true
	case int64:
		return int(value), true
	case float64:
		if value != math.Trunc(value) {
			return 0, false
		}
		return int(value), true
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
