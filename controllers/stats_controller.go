package controllers

import (
	"net/http"
	"strconv"
	"time"

	"txlog/app"

	"github.com/gin-gonic/gin"
)

type StatsController struct{ *Srv }

func NewStatsController(s *Srv) *StatsController { return &StatsController{Srv: s} }

// GET /api/stats/summary
func (sc *StatsController) Summary(c *gin.Context) {
	sum, err := sc.Repo.StatsSummary(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "data": sum})
}

// GET /api/stats/monthly — trailing 6 months of repair outcomes
func (sc *StatsController) Monthly(c *gin.Context) {
	rows, err := sc.Repo.MonthlyRepairBreakdown(c.Request.Context(), time.Now().UTC())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "data": rows})
}

// GET /api/stats/offices — top 10 by repair intakes
func (sc *StatsController) Offices(c *gin.Context) {
	rows, err := sc.Repo.TopOfficesByRepairs(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "data": rows})
}

// GET /api/stats/deletions?limit=50 — audit trail of hard deletes
func (sc *StatsController) Deletions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	rows, err := sc.Repo.ListDeletions(c.Request.Context(), limit)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "data": rows})
}
