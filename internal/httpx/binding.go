package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/festy23/octofit_tracker/internal/apperror"
)

// ErrMalformedBody is returned by BindJSON when the body is not a JSON object.
var ErrMalformedBody = errors.New("invalid request body")

var setupOnce sync.Once

// SetupValidator makes validator report JSON field names instead of Go struct field names.
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// BindJSON decodes and validates the request body into obj.
// Field-level failures come back as *apperror.ValidationError naming the JSON field.
func BindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperror.Validation(fe.Field(), validationMessage(fe))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperror.Validation(typeErr.Field, "expected "+typeErr.Type.String())
	}

	return ErrMalformedBody
}

// RespondBindError writes the response for an error returned by BindJSON.
func RespondBindError(c *gin.Context, err error) {
	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		ErrorJSON(c, CodeValidation, validationErr.Error(), validationErr.Field, http.StatusBadRequest)
		return
	}
	ErrorJSON(c, CodeInvalidRequest, err.Error(), "", http.StatusBadRequest)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must be an RFC 3339 timestamp"
	default:
		return "invalid value"
	}
}
