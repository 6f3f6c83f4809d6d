package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"aiservice/internal/model"
)

// bindJSON decodes the request body into obj. On failure it writes a 422
// response describing each offending field and returns false.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.JSON(http.StatusUnprocessableEntity, model.ValidationErrorResponse{
		Detail: describeBindError(err, obj),
	})
	return false
}

// describeBindError converts decoder and validator errors into response items
func describeBindError(err error, obj any) []model.ValidationErrorItem {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
	)

	switch {
	case errors.As(err, &validationErrs):
		items := make([]model.ValidationErrorItem, 0, len(validationErrs))
		for _, fe := range validationErrs {
			items = append(items, model.ValidationErrorItem{
				Loc:  []string{"body", jsonFieldName(obj, fe.StructField())},
				Msg:  validationMessage(fe),
				Type: "missing",
			})
		}
		return items
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []model.ValidationErrorItem{{
			Loc:  bodyLoc(field),
			Msg:  "Input should be a valid " + describeKind(typeErr.Type),
			Type: describeKind(typeErr.Type) + "_type",
		}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return []model.ValidationErrorItem{{
			Loc:  []string{"body"},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		}}
	case errors.Is(err, io.EOF):
		return []model.ValidationErrorItem{{
			Loc:  []string{"body"},
			Msg:  "Field required",
			Type: "missing",
		}}
	default:
		return []model.ValidationErrorItem{{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		}}
	}
}

func validationMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "Field required"
	}
	return "Failed on the '" + fe.Tag() + "' check"
}

// bodyLoc splits a dotted decoder path such as "filters.bedrooms"
func bodyLoc(field string) []string {
	if field == "body" {
		return []string{"body"}
	}
	return append([]string{"body"}, strings.Split(field, ".")...)
}

// jsonFieldName maps a Go struct field name to its json tag name
func jsonFieldName(obj any, structField string) string {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return structField
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return structField
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return structField
	}
	return name
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	default:
		return "value"
	}
}
