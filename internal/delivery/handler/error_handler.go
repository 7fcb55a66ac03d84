package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"exercise-tracker/internal/domain"
)

// ErrorHandler is the HTTP boundary for everything the handlers do not map
// themselves: validation failures become 400, unmatched routes 404, anything
// else 500. Responses are plain text; domain errors never reach this point.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal Server Error"

	var ve *domain.ValidationError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ve):
		code = http.StatusBadRequest
		message = ve.Error()
	case errors.As(err, &he):
		code = he.Code
		message = fmt.Sprintf("%v", he.Message)
		if code == http.StatusNotFound {
			message = "not found"
		}
	default:
		log.Println("request failed:", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.String(code, message)
	}
	if err != nil {
		log.Println("error response:", err)
	}
}
