package models

import "time"

const Tech4edTable = "tech4ed_sessions"

const (
	Tech4edStatusActive = "Active"
	Tech4edStatusEnded  = "Ended"
)

// Tech4edSession is a walk-in usage session. TimeIn/TimeOut are real
// timestamps; duration is derived, never stored.
type Tech4edSession struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserName  string     `gorm:"size:200;not null" json:"userName"`
	Gender    string     `gorm:"size:20;not null" json:"gender"`
	Purpose   string     `gorm:"size:200;not null" json:"purpose"`
	TimeIn    time.Time  `gorm:"not null" json:"timeIn"`
	TimeOut   *time.Time `json:"timeOut,omitempty"`
	Status    string     `gorm:"size:20;not null;default:'Active'" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (Tech4edSession) TableName() string { return Tech4edTable }

// DurationSeconds reports elapsed time against now while the session is
// still open.
func (s *Tech4edSession) DurationSeconds(now time.Time) int64 {
	end := now
	if s.TimeOut != nil {
		end = *s.TimeOut
	}
	return int64(end.Sub(s.TimeIn).Seconds())
}
