package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

// SuccessResponse は { message: string } の形。
type SuccessResponse struct {
	Message string `json:"message"`
}

// TourFormRequest は管理画面のツアーフォーム。
type TourFormRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Location    string   `json:"location"`
	Itinerary   []string `json:"itinerary"`
	Images      []string `json:"images"`
	SDGGoals    []int    `json:"sdgGoals"`
	MaxCapacity int      `json:"maxCapacity"`
}

// /admin/tours のHTTP
type AdminTourHandler struct {
	uc *usecase.TourUsecase
}

// DI
func NewAdminTourHandler(uc *usecase.TourUsecase) *AdminTourHandler {
	return &AdminTourHandler{uc: uc}
}

func (h *AdminTourHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin")
	admin.Use(middleware.AdminSessionGuard(cfg))

	admin.GET("/tours", h.list)
	admin.POST("/tours", h.create)
	admin.PUT("/tours/:id", h.update)
	admin.DELETE("/tours/:id", h.delete)
}

func (h *AdminTourHandler) list(c echo.Context) error {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.AdminListTours(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminTourHandler) create(c echo.Context) error {
	var req TourFormRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	created, err := h.uc.AdminCreateTour(c.Request().Context(), tourInput(req))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *AdminTourHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req TourFormRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.AdminUpdateTour(c.Request().Context(), id, tourInput(req)); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminTourHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AdminDeleteTour(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func tourInput(req TourFormRequest) validator.TourInput {
	return validator.TourInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Location:    req.Location,
		Itinerary:   req.Itinerary,
		Images:      req.Images,
		SDGGoals:    req.SDGGoals,
		MaxCapacity: req.MaxCapacity,
	}
}
