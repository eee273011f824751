package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers はルート登録に必要なhandler一式。
type Handlers struct {
	Tour       *handler.TourHandler
	Cart       *handler.CartHandler
	Checkout   *handler.CheckoutHandler
	Auth       *handler.AuthHandler
	AdminTour  *handler.AdminTourHandler
	AdminOrder *handler.AdminOrderHandler
}

// New はechoを組み立てて返す（起動はしない。テストでも使う）。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowCredentials: true,
	}))

	RegisterRoutes(e, cfg, h)
	return e
}

// Start はサーバーを起動する。
func Start(addr string, cfg config.Config, h Handlers) error {
	e := New(cfg, h)
	return e.Start(addr)
}
