package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// カートスロットを識別するcookie名
	ProfileCookieName = "cart_profile"

	CtxProfileIDKey = "cart_profile_id" // string
)

// CartProfile はブラウジングコンテキストごとのプロファイルIDを用意する。
// 初回アクセスでUUIDを発行してcookieに入れる。以降はそれがカートの鍵になる。
func CartProfile() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profileID := ""

			if cookie, err := c.Cookie(ProfileCookieName); err == nil {
				if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					profileID = cookie.Value
				}
			}

			if profileID == "" {
				profileID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     ProfileCookieName,
					Value:    profileID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(365 * 24 * time.Hour),
				})
			}

			c.Set(CtxProfileIDKey, profileID)
			return next(c)
		}
	}
}

// ProfileIDFromContext はミドルウェアが入れたプロファイルIDを取り出す。
func ProfileIDFromContext(c echo.Context) (string, bool) {
	v := c.Get(CtxProfileIDKey)
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
