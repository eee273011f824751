package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newProfileEcho() *echo.Echo {
	e := echo.New()
	e.GET("/cart", func(c echo.Context) error {
		id, ok := middleware.ProfileIDFromContext(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, id)
	}, middleware.CartProfile())
	return e
}

// 初回アクセスでUUID cookieが発行される
func TestMiddleware_CartProfile_MintsCookie(t *testing.T) {
	e := newProfileEcho()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var minted *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.ProfileCookieName {
			minted = ck
		}
	}
	if assert.NotNil(t, minted) {
		_, err := uuid.Parse(minted.Value)
		assert.NoError(t, err)
		assert.True(t, minted.HttpOnly)
		//ハンドラにも同じIDが渡る
		assert.Equal(t, minted.Value, rec.Body.String())
	}
}

// 既存cookieはそのまま使う（発行し直さない）
func TestMiddleware_CartProfile_ReusesCookie(t *testing.T) {
	e := newProfileEcho()

	existing := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: middleware.ProfileCookieName, Value: existing})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, existing, rec.Body.String())

	for _, ck := range rec.Result().Cookies() {
		assert.NotEqual(t, middleware.ProfileCookieName, ck.Name)
	}
}

// UUIDとして壊れたcookieは捨てて発行し直す
func TestMiddleware_CartProfile_ReplacesInvalidCookie(t *testing.T) {
	e := newProfileEcho()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: middleware.ProfileCookieName, Value: "../../etc/passwd"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, "../../etc/passwd", rec.Body.String())

	_, err := uuid.Parse(rec.Body.String())
	assert.NoError(t, err)
}
