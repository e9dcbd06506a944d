package main

import (
	"context"
	"log"
	"os"

	"txlog/app"
	"txlog/config"
	"txlog/db"
	"txlog/routes"
)

func main() {
	config.LoadEnv()
	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	app.NoticeSetupNeeded(context.Background(), db.NewRepo(application.DB))
	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
