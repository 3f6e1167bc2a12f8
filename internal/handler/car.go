package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/current-cruiser/internal/apperr"
	mw "github.com/iliyamo/current-cruiser/internal/middleware"
	"github.com/iliyamo/current-cruiser/internal/model"
	"github.com/iliyamo/current-cruiser/internal/repository"
	"github.com/iliyamo/current-cruiser/internal/validator"
)

// CarHandler serves the /api/cars CRUD endpoints.
type CarHandler struct{ Cars CarStore }

func NewCarHandler(cars CarStore) *CarHandler {
	return &CarHandler{Cars: cars}
}

// Create persists a new car from a validated payload.
func (h *CarHandler) Create(c echo.Context) error {
	in := mw.Body[validator.CreateCarInput](c)

	car := &model.Car{
		Name:        in.Name,
		History:     in.History,
		Description: in.Description,
		Specifications: model.CarSpecifications{
			Motor:      in.Specifications.Motor,
			Horsepower: in.Specifications.Horsepower,
			Mph0to60:   in.Specifications.Mph0to60,
			TopSpeed:   in.Specifications.TopSpeed,
		},
		CategoryID:        in.CategoryID,
		AvailableInMarket: *in.AvailableInMarket,
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	if err := h.Cars.Create(ctx, car); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "message": "Car created successfully", "car": car})
}

// GetAll returns every active car. An empty catalog is reported as 404.
func (h *CarHandler) GetAll(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	cars, err := h.Cars.FindActive(ctx)
	if err != nil {
		return err
	}
	if len(cars) == 0 {
		return apperr.New("No cars found", http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "All cars list", "cars": cars})
}

// GetByID returns a single active car.
func (h *CarHandler) GetByID(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	car, err := h.Cars.FindByID(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("Car not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "Found car", "car": car})
}

// Update applies a partial update to a car.
func (h *CarHandler) Update(c echo.Context) error {
	in := mw.Body[validator.UpdateCarInput](c)

	ctx, cancel := opCtx(c)
	defer cancel()

	car, err := h.Cars.Update(ctx, c.Param("id"), in)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("Car not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "Car updated successfully", "car": car})
}

// Delete soft-deletes a car and returns the updated record.
func (h *CarHandler) Delete(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	car, err := h.Cars.SoftDelete(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("Car not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "Car deleted successfully", "car": car})
}
