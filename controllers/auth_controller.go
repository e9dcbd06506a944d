package controllers

import (
	"net/http"
	"strings"

	"txlog/app"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// POST /login
// Unknown username and wrong password answer identically.
func (s *Srv) Login(c *gin.Context) {
	var in struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Username and password required."})
		return
	}
	a, err := s.Repo.FindAdminByUsername(c.Request.Context(), in.Username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, app.H{"success": false, "message": "Invalid credentials."})
		return
	}
	if err := s.issueSession(c.Request.Context(), c.Writer, a); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Login successful."})
}

// POST /logout — 删 Redis，会话 Cookie 置空
func (s *Srv) Logout(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.AppSessionCookie); err == nil && ck.Value != "" {
		_ = s.AppSess.Delete(c.Request.Context(), ck.Value)
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // 删除
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   strings.HasPrefix(s.WebOrigin, "https://"),
	})
	c.JSON(http.StatusOK, app.H{"success": true})
}

// GET /api/me — session probe, no auth middleware in front.
func (s *Srv) Me(c *gin.Context) {
	ck, err := c.Request.Cookie(app.AppSessionCookie)
	if err != nil || ck.Value == "" {
		c.JSON(http.StatusOK, app.H{"loggedIn": false})
		return
	}
	as, err := s.AppSess.Get(c.Request.Context(), ck.Value)
	if err != nil {
		c.JSON(http.StatusOK, app.H{"loggedIn": false})
		return
	}
	c.JSON(http.StatusOK, app.H{"loggedIn": true, "username": as.Username})
}

// POST /api/setup — one-time bootstrap, rejected once any admin exists.
func (s *Srv) Setup(c *gin.Context) {
	var in struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Username and password required."})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(c, err)
		return
	}
	if _, err := s.Repo.CreateFirstAdmin(c.Request.Context(), in.Username, string(hash)); err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Admin created."})
}
