package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/usecase"
)

type Handler struct {
	svc *usecase.ExerciseLogService
}

func NewHandler(svc *usecase.ExerciseLogService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/exercise")
	api.POST("/new-user", h.CreateUser)
	api.GET("/users", h.ListUsers)
	api.POST("/add", h.AddExercise)
	api.GET("/log", h.QueryLog)
}

type createUserRequest struct {
	Username string `form:"username" json:"username"`
}

type addExerciseRequest struct {
	UserID      string        `form:"userId" json:"userId"`
	Description string        `form:"description" json:"description"`
	Duration    durationField `form:"duration" json:"duration"`
	Date        string        `form:"date" json:"date"`
}

// durationField carries the raw duration input. Duration is coerced, never
// rejected, so binding must accept any JSON value: numbers and strings both
// land here as text for domain.CoerceDuration to interpret.
type durationField string

func (d *durationField) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		s = string(b)
	}
	*d = durationField(s)
	return nil
}

// errorBody is the 200-response JSON shape for domain errors. Callers detect
// these by inspecting the body, not the status code.
type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("malformed request body")
	}

	user, err := h.svc.CreateUser(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return c.JSON(http.StatusOK, errorBody{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, usecase.UserInfo{Username: user.Username, ID: user.ID})
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) AddExercise(c echo.Context) error {
	var req addExerciseRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("malformed request body")
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			return domain.NewValidationError("invalid date: " + req.Date)
		}
		date = &parsed
	}

	duration := domain.CoerceDuration(string(req.Duration))

	user, err := h.svc.AddExercise(c.Request().Context(), req.UserID, req.Description, duration, date)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusOK, errorBody{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *Handler) QueryLog(c echo.Context) error {
	var filter usecase.LogFilter

	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return domain.NewValidationError("invalid from date: " + raw)
		}
		filter.From = &parsed
	}
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return domain.NewValidationError("invalid to date: " + raw)
		}
		filter.To = &parsed
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return domain.NewValidationError("invalid limit: " + raw)
		}
		filter.Limit = &n
	}

	result, err := h.svc.QueryLog(c.Request().Context(), c.QueryParam("userID"), filter)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusOK, errorBody{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// parseDate accepts the calendar-date form used by the API as well as full
// RFC 3339 timestamps.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
