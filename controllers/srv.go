// controllers/srv.go
package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"txlog/app"
	"txlog/db"
	"txlog/models"
	"txlog/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Srv struct {
	Repo      *db.Repo
	AppSess   *session.AppSessionStore
	WebOrigin string
	Cfg       app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:      db.NewRepo(a.DB),
		AppSess:   a.AppSessions(),
		WebOrigin: a.Config.WebOrigin,
		Cfg:       a.Config,
	}
}

// --- helpers ---

// 统一设置业务会话 Cookie
func (s *Srv) setAppCookie(w http.ResponseWriter, sessionID string, maxAge time.Duration) {
	secure := strings.HasPrefix(s.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
		MaxAge:   int(maxAge / time.Second),
	})
}

// 登录成功：创建会话 + 触发登录快照
func (s *Srv) issueSession(ctx context.Context, w http.ResponseWriter, a *models.Admin) error {
	_ = s.Repo.TouchAdminLogin(ctx, a.ID) // 不阻塞
	id := uuid.NewString()
	if err := s.AppSess.Create(ctx, id, a.ID, a.Username); err != nil {
		return err
	}
	s.setAppCookie(w, id, s.Cfg.SessionTTL)
	return nil
}

// adminRef pulls the authenticated identity AuthRequired stashed.
func adminRef(c *gin.Context) models.AdminRef {
	var ref models.AdminRef
	if v, ok := c.Get("adminID"); ok {
		ref.ID, _ = v.(uint)
	}
	if v, ok := c.Get("adminUsername"); ok {
		ref.Username, _ = v.(string)
	}
	return ref
}

func pathID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || n == 0 {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Invalid id."})
		return 0, false
	}
	return uint(n), true
}

// serverError hides storage detail from the caller; the log keeps it.
func serverError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, app.H{"success": false, "message": "Server error."})
}

// failFor maps the repo's sentinel errors onto the envelope.
func failFor(c *gin.Context, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, app.H{"success": false, "message": "Record not found."})
	case errors.Is(err, db.ErrSessionEnded):
		c.JSON(http.StatusConflict, app.H{"success": false, "message": "Session already ended."})
	case errors.Is(err, db.ErrAdminExists):
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Admin already exists."})
	default:
		serverError(c, err)
	}
}
