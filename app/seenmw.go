// app/seenmw.go
package app

import (
	"fmt"
	"time"

	"txlog/db"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// TouchLastSeen keeps admins.last_seen_at roughly current without a DB write
// per request; the redis SetNX key throttles to one write per window.
func TouchLastSeen(repo *db.Repo, rdb *redis.Client, throttle time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("adminID")
		if !ok {
			c.Next()
			return
		}
		adminID, _ := v.(uint)
		if adminID == 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("admin:lastseen:%d", adminID)
		if ok, _ := rdb.SetNX(c, key, "1", throttle).Result(); ok {
			_ = repo.TouchAdminSeen(c, adminID) // 忽略错误，不阻塞请求
		}
		c.Next()
	}
}
