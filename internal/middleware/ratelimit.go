package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"taskboard-api/internal/apierrors"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit applies a per-client-IP token bucket. Entries idle for longer
// than an hour are pruned on the next request that observes them.
func RateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	clients := make(map[string]*clientLimiter)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		entry, ok := clients[ip]
		if !ok {
			entry = &clientLimiter{limiter: rate.NewLimiter(limit, burst)}
			clients[ip] = entry
		}
		entry.lastSeen = time.Now()
		if len(clients) > 1000 {
			for key, cl := range clients {
				if time.Since(cl.lastSeen) > time.Hour {
					delete(clients, key)
				}
			}
		}
		allowed := entry.limiter.Allow()
		mu.Unlock()

		if !allowed {
			abort(c, apierrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
