package db

import (
	"context"
	"time"

	"txlog/models"
)

// KindCounts is one summary line: totals are recomputed on every call, and
// empty buckets report zero rather than null.
type KindCounts struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
}

type Summary struct {
	Repairs      KindCounts `json:"repairs"`
	Borrows      KindCounts `json:"borrows"`
	Reservations KindCounts `json:"reservations"`
	Tech4ed      KindCounts `json:"tech4ed"`
}

func (r *Repo) statusCounts(ctx context.Context, table string, completed []string) (KindCounts, error) {
	var c KindCounts
	tx := r.DB.WithContext(ctx).Table(table)
	if err := tx.Count(&c.Total).Error; err != nil {
		return c, err
	}
	if err := r.DB.WithContext(ctx).Table(table).
		Where("status IN ?", completed).
		Count(&c.Completed).Error; err != nil {
		return c, err
	}
	c.Pending = c.Total - c.Completed
	return c, nil
}

func (r *Repo) StatsSummary(ctx context.Context) (*Summary, error) {
	var s Summary
	var err error
	if s.Repairs, err = r.statusCounts(ctx, models.RepairTable, []string{models.RepairStatusReleased}); err != nil {
		return nil, err
	}
	if s.Borrows, err = r.statusCounts(ctx, models.BorrowTable, []string{models.BorrowStatusReturned}); err != nil {
		return nil, err
	}
	if s.Reservations, err = r.statusCounts(ctx, models.ReservationTable, []string{models.ReservationStatusReturned}); err != nil {
		return nil, err
	}
	if s.Tech4ed, err = r.statusCounts(ctx, models.Tech4edTable, []string{models.Tech4edStatusEnded}); err != nil {
		return nil, err
	}
	return &s, nil
}

// MonthlyRepairStats is one month's repair outcomes, keyed by receive-month.
type MonthlyRepairStats struct {
	Month         string `json:"month"` // YYYY-MM
	Fixed         int64  `json:"fixed"`
	Unserviceable int64  `json:"unserviceable"`
}

// MonthlyRepairBreakdown covers the trailing six calendar months, current
// month included. Months with no intakes still appear, zero-filled.
// receive_date holds YYYY-MM-DD strings, so substr(receive_date, 1, 7) keys
// the month on both postgres and sqlite.
func (r *Repo) MonthlyRepairBreakdown(ctx context.Context, now time.Time) ([]MonthlyRepairStats, error) {
	// anchor on the 1st so stepping back months never normalizes past one
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := base.AddDate(0, -5, 0).Format("2006-01")

	var rows []MonthlyRepairStats
	err := r.DB.WithContext(ctx).
		Table(models.RepairTable+" AS rt").
		Select(`substr(rt.receive_date, 1, 7) AS month,
			COALESCE(SUM(CASE WHEN rd.repair_status = 'Fixed' THEN 1 ELSE 0 END), 0) AS fixed,
			COALESCE(SUM(CASE WHEN rd.repair_status = 'Unserviceable' THEN 1 ELSE 0 END), 0) AS unserviceable`).
		Joins("LEFT JOIN "+models.RepairDetailTable+" rd ON rt.id = rd.repair_transaction_id").
		Where("substr(rt.receive_date, 1, 7) >= ?", start).
		Group("substr(rt.receive_date, 1, 7)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]MonthlyRepairStats, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row
	}
	out := make([]MonthlyRepairStats, 0, 6)
	for i := 5; i >= 0; i-- {
		m := base.AddDate(0, -i, 0).Format("2006-01")
		row, ok := byMonth[m]
		if !ok {
			row = MonthlyRepairStats{Month: m}
		}
		out = append(out, row)
	}
	return out, nil
}

type OfficeFrequency struct {
	OfficeName string `json:"office_name"`
	Repairs    int64  `json:"repairs"`
}

// TopOfficesByRepairs ranks offices by repair-intake count, capped at ten.
func (r *Repo) TopOfficesByRepairs(ctx context.Context) ([]OfficeFrequency, error) {
	rows := []OfficeFrequency{}
	err := r.DB.WithContext(ctx).
		Table(models.RepairTable+" AS rt").
		Select("o.office_name, COUNT(rt.id) AS repairs").
		Joins("JOIN "+models.OfficeTable+" o ON rt.office_id = o.id").
		Group("o.office_name").
		Order("repairs DESC").
		Limit(10).
		Scan(&rows).Error
	return rows, err
}
