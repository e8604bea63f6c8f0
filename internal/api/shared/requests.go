package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	pt_translations "github.com/go-playground/validator/v10/translations/pt_BR"
	"github.com/phrazzld/catalog-api/internal/domain"
)

// MaxRequestBodyBytes bounds JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// ErrEmptyBody is returned by DecodeJSON when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON decodes the request body into v. Malformed input is reported as
// a domain validation error so it maps to 400.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return domain.NewValidationError("body", "is required", ErrEmptyBody)
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxRequestBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "is required", ErrEmptyBody)
		}
		return domain.NewValidationError("body", "is not valid JSON", err)
	}
	return nil
}

// FieldErrors holds translated request validation failures, one per field.
type FieldErrors []string

func (e FieldErrors) Error() string {
	return strings.Join(e, "; ")
}

// Is makes FieldErrors match domain.ErrValidation.
func (e FieldErrors) Is(target error) bool {
	return target == domain.ErrValidation
}

// Validator checks request structs and reports failures in the configured locale.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator creates a Validator whose messages use locale (en or pt-BR).
// Field names in messages are taken from json tags.
func NewValidator(locale string) (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, pt_BR.New())

	var err error
	var trans ut.Translator
	switch MessagesFor(locale).Locale {
	case LocalePortuguese:
		trans, _ = uni.GetTranslator("pt_BR")
		err = pt_translations.RegisterDefaultTranslations(v, trans)
	default:
		trans, _ = uni.GetTranslator("en")
		err = en_translations.RegisterDefaultTranslations(v, trans)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to register validation translations: %w", err)
	}

	return &Validator{validate: v, trans: trans}, nil
}

// Struct validates s. Failures come back as FieldErrors; anything else the
// validator returns (such as a non-struct argument) is returned unchanged.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Translate(v.trans))
	}
	return out
}
