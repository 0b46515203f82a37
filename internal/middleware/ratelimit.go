package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/tiozaobarbearia/agenda-api/internal/httperr"
)

const (
	loginAttemptLimit  = 10
	loginAttemptWindow = time.Minute
)

// LoginRateLimit throttles auth endpoints per client IP using a redis
// counter. A nil client disables throttling; a redis fault fails open so
// the login path never depends on redis being up.
func LoginRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "login_attempts:" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Println("rate limit: redis unavailable, failing open:", err)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, loginAttemptWindow)
		}

		if count > loginAttemptLimit {
			httperr.TooManyRequests(c, "too_many_attempts", "Muitas tentativas. Aguarde um minuto.")
			c.Abort()
			return
		}

		c.Next()
	}
}
