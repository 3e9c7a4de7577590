package lib

import (
	"net/http"
	"storefront_server/config"
	"time"
)

// SetCookie sets an HttpOnly cookie. In production the cookie must travel
// cross-subdomain (shop frontend <-> api), which requires SameSite=None.
func SetCookie(key, val string, expiry time.Time, w http.ResponseWriter) {
	isProduction := config.IsProduction()

	sameSite := http.SameSiteLaxMode
	secure := false

	if isProduction {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	cookie := &http.Cookie{
		Name:     key,
		Value:    val,
		Expires:  expiry,
		Path:     "/",
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}

func GetCookieValue(key string, r *http.Request) (string, error) {
	cookie, err := r.Cookie(key)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClearCookie removes the cookie from the browser
func ClearCookie(key string, w http.ResponseWriter) {
	isProduction := config.IsProduction()

	sameSite := http.SameSiteLaxMode
	secure := false

	if isProduction {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	cookie := &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}
