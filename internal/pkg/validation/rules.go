package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Field length limits of the data model.
const (
	CourseNameMaxLength        = 50
	CourseDescriptionMaxLength = 1024
	StudentNameMaxLength       = 25
	StudentEmailMaxLength      = 254
)

// StudentEmailRules matches the binding tag on student payloads.
const StudentEmailRules = "required,email,max=254"

var (
	registerOnce sync.Once

	sharedOnce sync.Once
	shared     *validator.Validate
)

// Register installs the custom rules and json field naming on gin's validator.
// It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		configure(v)
	})
}

// New returns a standalone validator configured like gin's.
func New() *validator.Validate {
	v := validator.New()
	configure(v)
	return v
}

// Shared returns the process-wide standalone validator.
func Shared() *validator.Validate {
	sharedOnce.Do(func() {
		shared = New()
	})
	return shared
}

// Var checks a single value against rules using the shared validator.
func Var(value interface{}, rules string) error {
	return Shared().Var(value, rules)
}

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonTagName)
	// Only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}

// jsonTagName reports fields by their json name so error details match the payload.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
