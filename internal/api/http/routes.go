package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"forecast-board/internal/board"
	"forecast-board/internal/chart"
	"forecast-board/internal/forecast"
	"forecast-board/internal/state"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *board.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/state", func(c *fiber.Ctx) error {
		return c.JSON(service.Store().Current())
	})

	v1.Put("/location", func(c *fiber.Ctx) error {
		var req locationRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		next, err := service.Refresh(c.Context(), req.Location)
		if err != nil {
			if errors.Is(err, forecast.ErrEmptyLocation) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			if errors.Is(err, board.ErrNoProviders) {
				return fiber.NewError(fiber.StatusServiceUnavailable, "no forecast providers configured")
			}
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch forecast: "+err.Error())
		}

		return c.JSON(next)
	})

	v1.Post("/refresh", func(c *fiber.Ctx) error {
		next, err := service.RefreshCurrent(c.Context())
		if err != nil {
			if errors.Is(err, board.ErrNoLocation) {
				return fiber.NewError(fiber.StatusConflict, "no location has been set")
			}
			if errors.Is(err, board.ErrNoProviders) {
				return fiber.NewError(fiber.StatusServiceUnavailable, "no forecast providers configured")
			}
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch forecast: "+err.Error())
		}

		return c.JSON(next)
	})

	v1.Post("/selection", func(c *fiber.Ctx) error {
		var req selectionRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		next := service.Store().Dispatch(state.SetSelected(&state.Selection{
			Date: req.Date,
			Temp: req.Temp,
		}))

		return c.JSON(next)
	})

	v1.Delete("/selection", func(c *fiber.Ctx) error {
		return c.JSON(service.Store().Dispatch(state.SetSelected(nil)))
	})

	v1.Get("/chart", func(c *fiber.Ctx) error {
		return c.JSON(chart.Build(service.Store().Current()))
	})

	v1.Get("/history", func(c *fiber.Ctx) error {
		limit, err := parseHistoryLimit(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"entries": service.Store().History(limit),
		})
	})
}

// locationRequest is the body of PUT /location.
type locationRequest struct {
	Location string `json:"location" validate:"required"`
}

// selectionRequest is the body of POST /selection. Temp is optional: a click
// on the x-axis carries a date but no value.
type selectionRequest struct {
	Date string   `json:"date" validate:"required"`
	Temp *float64 `json:"temp"`
}

// historyQuery bounds the history page size.
type historyQuery struct {
	Limit int `validate:"gte=1,lte=100"`
}

func parseHistoryLimit(c *fiber.Ctx) (int, error) {
	q := historyQuery{Limit: 20}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, errors.New("limit must be an integer")
		}
		q.Limit = n
	}

	if err := validate.Struct(q); err != nil {
		return 0, err
	}
	return q.Limit, nil
}
