package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"youtube-clone/domain/apperror"
)

const ErrorUnmarshal = "Error while unmarshal"

// writeError maps a usecase error onto its HTTP status and JSON body.
func writeError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, appErr.Payload())
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

type fieldCheck int

const (
	fieldsOK fieldCheck = iota
	fieldsMissing
	fieldsNotString
	fieldsBlank
)

// checkRequired classifies a group of required JSON values so the handlers
// can keep the distinct missing / wrong-type / whitespace messages. On
// fieldsOK the values are returned as strings in input order.
func checkRequired(values ...interface{}) (fieldCheck, []string) {
	strs := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			return fieldsMissing, nil
		}
		s, ok := v.(string)
		if !ok {
			return fieldsNotString, nil
		}
		strs = append(strs, s)
	}
	for _, s := range strs {
		if strings.TrimSpace(s) == "" {
			return fieldsBlank, nil
		}
	}
	return fieldsOK, strs
}

// isBlankValue reports whether a JSON value is absent or a zero value (empty
// string, 0, false), the states the required-field checks treat as not
// provided.
func isBlankValue(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case bool:
		return !value
	case float64:
		return value == 0
	}
	return false
}

// optionalString unwraps an optional JSON value. ok is false when the value
// is present but not a string.
func optionalString(v interface{}) (s string, ok bool) {
	if v == nil {
		return "", true
	}
	s, ok = v.(string)
	return s, ok
}
