package middleware

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joshu-sajeev/signupmail/common"
	"github.com/joshu-sajeev/signupmail/internal/config"
)

var validate = validator.New()

// Bind decodes the JSON body into dest and runs struct validation. Both
// malformed bodies and failed rules are reported as missing fields.
//
// Keys must match the json tags exactly; {"SUBJECT": "x"} does not fill
// Subject.
func Bind[T any](c *gin.Context, dest *T) bool {
	raw, err := c.GetRawData()
	if err != nil {
		c.Error(common.NewAPIError(http.StatusBadRequest, config.MsgMissingFields))
		return false
	}

	body, err := exactKeys[T](raw)
	if err != nil {
		c.Error(common.NewAPIError(http.StatusBadRequest, config.MsgMissingFields))
		return false
	}

	if err := binding.JSON.BindBody(body, dest); err != nil {
		c.Error(common.NewAPIError(http.StatusBadRequest, config.MsgMissingFields))
		return false
	}

	if err := Validate(dest); err != nil {
		c.Error(common.NewAPIError(http.StatusBadRequest, config.MsgMissingFields))
		return false
	}

	return true
}

// Validate runs the struct's validate tags.
func Validate(v any) error {
	return validate.Struct(v)
}

// exactKeys drops every top-level key of a JSON object that is not spelled
// exactly like one of T's json tags. Non-struct targets pass through.
func exactKeys[T any](raw []byte) ([]byte, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return raw, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	kept := make(map[string]json.RawMessage, len(fields))
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		if v, ok := fields[name]; ok {
			kept[name] = v
		}
	}

	return json.Marshal(kept)
}
