package app

import (
	"net/http"

	"txlog/db"
	"txlog/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const AppSessionCookie = "app_session"

// AuthRequired resolves the session cookie against Redis, confirms the admin
// row still exists, and stashes the identity in the request context.
func AuthRequired(appSess *session.AppSessionStore, repo *db.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck, err := c.Request.Cookie(AppSessionCookie)
		if err != nil || ck.Value == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"success": false, "message": "Unauthorized. Please login."})
			return
		}
		as, err := appSess.Get(c.Request.Context(), ck.Value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"success": false, "message": "Unauthorized. Please login."})
			return
		}

		// 会话还在但管理员行没了 → 会话一并清掉
		a, err := repo.FindAdminByID(c.Request.Context(), as.AdminID)
		if err != nil {
			_ = appSess.Delete(c.Request.Context(), ck.Value)
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"success": false, "message": "Unauthorized. Please login."})
			return
		}
		c.Set("adminID", a.ID)
		c.Set("adminUsername", a.Username)

		c.Next()
	}
}

// StepUpRequired is the second gate before destructive operations: the body
// must carry the admin password again, checked against the session admin's
// hash. Runs after AuthRequired.
func StepUpRequired(repo *db.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			AdminPassword string `json:"adminPassword"`
		}
		_ = c.ShouldBindJSON(&in)
		if in.AdminPassword == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, H{"success": false, "message": "Admin password required."})
			return
		}

		v, _ := c.Get("adminID")
		adminID, _ := v.(uint)
		a, err := repo.FindAdminByID(c.Request.Context(), adminID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"success": false, "message": "Admin not found."})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.AdminPassword)) != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"success": false, "message": "Incorrect admin password."})
			return
		}
		c.Next()
	}
}
