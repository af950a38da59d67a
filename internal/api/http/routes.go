package httpapi

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/smart-weather/internal/weather"
)

var validate = validator.New()

const defaultForecastDays = 7

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/city/resolve", func(c *fiber.Ctx) error {
		var req resolveQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(service.SearchCityID(c.Context(), req.Name))
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		resolution, bundle := service.ForecastByName(c.Context(), req.Name, req.Days)

		return c.JSON(fiber.Map{
			"resolution": resolution,
			"weather":    bundle,
		})
	})

	v1.Get("/weather/trip", func(c *fiber.Ctx) error {
		var req tripQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		display, err := service.TripForecast(c.Context(), req.Name, req.Start, req.End)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(display)
	})
}

// resolveQuery holds query parameters for the resolve endpoint.
type resolveQuery struct {
	Name string `validate:"required"`
}

func (r *resolveQuery) bind(c *fiber.Ctx) error {
	r.Name = c.Query("name")
	return validate.Struct(r)
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	Name string `validate:"required"`
	Days int    `validate:"min=1,max=30"`
}

func (f *forecastQuery) bind(c *fiber.Ctx) error {
	f.Name = c.Query("name")
	f.Days = defaultForecastDays
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "days must be an integer")
		}
		f.Days = days
	}
	return validate.Struct(f)
}

// tripQuery holds query parameters for the trip endpoint.
type tripQuery struct {
	Name  string `validate:"required"`
	Start string `validate:"required,datetime=2006-01-02"`
	End   string `validate:"required,datetime=2006-01-02"`
}

func (t *tripQuery) bind(c *fiber.Ctx) error {
	t.Name = c.Query("name")
	t.Start = c.Query("start")
	t.End = c.Query("end")
	return validate.Struct(t)
}
