// app/bootstrap.go
package app

import (
	"context"
	"log"

	"txlog/db"
)

// NoticeSetupNeeded logs a pointer to the one-time setup endpoint when the
// admin table is still empty. The endpoint itself refuses to run twice.
func NoticeSetupNeeded(ctx context.Context, repo *db.Repo) {
	n, err := repo.CountAdmins(ctx)
	if err != nil {
		log.Printf("bootstrap check failed: %v", err)
		return
	}
	if n > 0 {
		return
	}
	log.Printf("[BOOTSTRAP] No admin account found. POST /api/setup {username,password} to create the first admin.")
}
