package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/transport/httpdto"
)

// CronHeader is the trusted-invocation signal set by the hosting platform's
// scheduler. Either this header or a bearer credential equal to the shared
// secret authenticates a watchdog invocation; end-user tokens never do.
const CronHeader = "X-Cron-Signature"

func CronAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			// No secret configured means the trigger surface is disabled.
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		presented := c.GetHeader(CronHeader)
		if presented == "" {
			presented = extractBearer(c)
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		c.Next()
	}
}
