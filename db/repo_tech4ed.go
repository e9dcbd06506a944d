package db

import (
	"context"
	"errors"
	"time"

	"txlog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Tech4edIntakeInput struct {
	UserName string
	Gender   string
	Purpose  string
}

func (r *Repo) CreateTech4edSession(ctx context.Context, in Tech4edIntakeInput) (*models.Tech4edSession, error) {
	s := models.Tech4edSession{
		UserName: in.UserName,
		Gender:   in.Gender,
		Purpose:  in.Purpose,
		TimeIn:   time.Now().UTC(),
		Status:   models.Tech4edStatusActive,
	}
	if err := r.DB.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// EndTech4edSession closes an active session. Ending twice is an error, not a
// silent success, and time_out stays as first written.
func (r *Repo) EndTech4edSession(ctx context.Context, id uint) (*models.Tech4edSession, error) {
	var s models.Tech4edSession
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&s, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if s.Status == models.Tech4edStatusEnded {
			return ErrSessionEnded
		}
		now := time.Now().UTC()
		s.TimeOut = &now
		s.Status = models.Tech4edStatusEnded
		return tx.Save(&s).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repo) DeleteTech4edSession(ctx context.Context, id uint, by models.AdminRef) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s models.Tech4edSession
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&s, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Tech4edSession{}, id).Error; err != nil {
			return err
		}
		return logDeletion(tx, "tech4ed", id, by)
	})
}

// Tech4edRow is the listing projection with the derived duration.
type Tech4edRow struct {
	models.Tech4edSession
	DurationSeconds int64 `json:"durationSeconds"`
}

func (r *Repo) ListTech4edSessions(ctx context.Context) ([]Tech4edRow, error) {
	var sessions []models.Tech4edSession
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	rows := make([]Tech4edRow, 0, len(sessions))
	for i := range sessions {
		rows = append(rows, Tech4edRow{
			Tech4edSession:  sessions[i],
			DurationSeconds: sessions[i].DurationSeconds(now),
		})
	}
	return rows, nil
}

func (r *Repo) FindTech4edSessionByID(ctx context.Context, id uint) (*models.Tech4edSession, error) {
	var s models.Tech4edSession
	err := r.DB.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
