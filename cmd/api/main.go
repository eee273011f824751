package main

import (
	"strconv"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

type jwtSessionIssuer struct {
	secret     []byte
	sessionTTL time.Duration
}

func (i *jwtSessionIssuer) Issue(adminID int64, username string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.sessionTTL)

	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(adminID, 10),
		"username": username,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くても起動できる（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Tour{},
		&model.Order{},
		&model.AdminUser{},
		&model.CartSnapshot{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	tourRepo := infraRepo.NewTourGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	adminRepo := infraRepo.NewAdminUserGormRepository(gormDB)
	cartStorage := infraRepo.NewCartSnapshotGormStorage(gormDB)

	//管理セッションは30日
	issuer := &jwtSessionIssuer{
		secret:     []byte(cfg.SessionSecret),
		sessionTTL: 30 * 24 * time.Hour,
	}
	verifier := usecase.NewBcryptPasswordVerifier()

	//Usecase生成
	tourUC := usecase.NewTourUsecase(tourRepo)
	cartUC := usecase.NewCartUsecase(cartStorage, tourRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartStorage, orderRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, tourRepo)
	authUC := usecase.NewAuthUsecase(adminRepo, verifier, issuer)

	//Handler生成
	cookieSecure := cfg.GoEnv != "dev"
	h := server.Handlers{
		Tour:       handler.NewTourHandler(tourUC),
		Cart:       handler.NewCartHandler(cartUC),
		Checkout:   handler.NewCheckoutHandler(checkoutUC),
		Auth:       handler.NewAuthHandler(authUC, cookieSecure),
		AdminTour:  handler.NewAdminTourHandler(tourUC),
		AdminOrder: handler.NewAdminOrderHandler(adminOrderUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cfg, h); err != nil {
		panic(err)
	}
}
