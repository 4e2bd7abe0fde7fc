package middleware

import (
	"net/http"
	"net/url"

	"github.com/freshnest/bookingadmin/internal/service"
	"github.com/gin-gonic/gin"
)

const loginPath = "/admin/login"

// AdminGuard gates the admin subtree. Unauthenticated requests are
// redirected to the login view with the requested destination preserved
// in the "from" query parameter, so the login flow can return there.
func AdminGuard(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := auth.Session(c.Request.Context(), SessionID(c))
		if !sess.IsAdmin {
			target := loginPath + "?from=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}

		c.Next()
	}
}
