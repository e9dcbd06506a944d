package routes

import (
	"time"

	"txlog/app"
	"txlog/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// 控制器与依赖
	s := controllers.GetSrv(a)
	repairCtl := controllers.NewRepairController(s)
	borrowCtl := controllers.NewBorrowController(s)
	reservCtl := controllers.NewReservationController(s)
	tech4edCtl := controllers.NewTech4edController(s)
	statsCtl := controllers.NewStatsController(s)

	// 复用的中间件
	authMW := app.AuthRequired(a.AppSessions(), s.Repo)
	stepUpMW := app.StepUpRequired(s.Repo)
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// ------------------------------
	// 认证（公开）
	// ------------------------------
	r.POST("/login", s.Login)
	r.POST("/logout", s.Logout)
	r.GET("/api/me", s.Me)
	r.POST("/api/setup", s.Setup)

	// ------------------------------
	// 维修
	// ------------------------------
	repairs := r.Group("/api/repairs", authMW, seenMW)
	{
		repairs.GET("", repairCtl.List)
		repairs.POST("", repairCtl.Create)
		repairs.PUT("/:id/repair", repairCtl.Repair)
		repairs.PUT("/:id/release", repairCtl.Release)
		repairs.DELETE("/:id", stepUpMW, repairCtl.Delete)
	}

	// ------------------------------
	// 借还
	// ------------------------------
	borrows := r.Group("/api/borrows", authMW, seenMW)
	{
		borrows.GET("", borrowCtl.List)
		borrows.POST("", borrowCtl.Create)
		borrows.PUT("/:id/return", borrowCtl.Return)
		borrows.DELETE("/:id", stepUpMW, borrowCtl.Delete)
	}

	// ------------------------------
	// 预约
	// ------------------------------
	reservations := r.Group("/api/reservations", authMW, seenMW)
	{
		reservations.GET("", reservCtl.List)
		reservations.POST("", reservCtl.Create)
		reservations.PUT("/:id/pick", reservCtl.Pick)
		reservations.PUT("/:id/return", reservCtl.Return)
		reservations.DELETE("/:id", stepUpMW, reservCtl.Delete)
	}

	// ------------------------------
	// Tech4Ed 上机
	// ------------------------------
	tech4ed := r.Group("/api/tech4ed", authMW, seenMW)
	{
		tech4ed.GET("", tech4edCtl.List)
		tech4ed.POST("", tech4edCtl.Create)
		tech4ed.PUT("/:id/end", tech4edCtl.End)
		tech4ed.DELETE("/:id", stepUpMW, tech4edCtl.Delete)
	}

	// ------------------------------
	// 报表（只读）
	// ------------------------------
	stats := r.Group("/api/stats", authMW, seenMW)
	{
		stats.GET("/summary", statsCtl.Summary)
		stats.GET("/monthly", statsCtl.Monthly)
		stats.GET("/offices", statsCtl.Offices)
		stats.GET("/deletions", statsCtl.Deletions)
	}
}
