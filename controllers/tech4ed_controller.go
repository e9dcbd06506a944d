package controllers

import (
	"net/http"
	"time"

	"txlog/app"
	"txlog/db"

	"github.com/gin-gonic/gin"
)

type Tech4edController struct{ *Srv }

func NewTech4edController(s *Srv) *Tech4edController { return &Tech4edController{Srv: s} }

// GET /api/tech4ed
func (tc *Tech4edController) List(c *gin.Context) {
	rows, err := tc.Repo.ListTech4edSessions(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "data": rows})
}

// POST /api/tech4ed — start a walk-in session
func (tc *Tech4edController) Create(c *gin.Context) {
	var in struct {
		UserName string `json:"user_name" binding:"required"`
		Gender   string `json:"gender" binding:"required"`
		Purpose  string `json:"purpose" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Required fields missing."})
		return
	}
	s, err := tc.Repo.CreateTech4edSession(c.Request.Context(), db.Tech4edIntakeInput{
		UserName: in.UserName,
		Gender:   in.Gender,
		Purpose:  in.Purpose,
	})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Session started.", "id": s.ID})
}

// PUT /api/tech4ed/:id/end
func (tc *Tech4edController) End(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s, err := tc.Repo.EndTech4edSession(c.Request.Context(), id)
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{
		"success": true,
		"message": "Session ended.",
		"data":    app.H{"id": s.ID, "durationSeconds": s.DurationSeconds(time.Now().UTC())},
	})
}

// DELETE /api/tech4ed/:id — behind StepUpRequired
func (tc *Tech4edController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := tc.Repo.DeleteTech4edSession(c.Request.Context(), id, adminRef(c)); err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Record deleted."})
}
