package db_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"txlog/db"

	"github.com/stretchr/testify/require"
)

func TestStatsSummaryEmpty(t *testing.T) {
	r := newTestRepo(t)
	sum, err := r.StatsSummary(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 0, sum.Repairs.Total)
	require.EqualValues(t, 0, sum.Borrows.Total)
	require.EqualValues(t, 0, sum.Reservations.Total)
	require.EqualValues(t, 0, sum.Tech4ed.Total)
}

func TestStatsSummaryCounts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	a := intakePrinterRepair(t, r)
	intakePrinterRepair(t, r)
	require.NoError(t, r.MarkRepaired(ctx, a.ID, db.RepairDetailInput{
		RepairPersonName: "M. Santos", RepairDate: "2024-01-12", RepairStatus: "Fixed",
	}))
	require.NoError(t, r.ReleaseRepair(ctx, a.ID, db.ReleaseInput{
		ReleasedToName: "J. Cruz", ReleasedByName: "A. Reyes", ReleaseDate: "2024-01-15",
	}))

	bt := intakeLaptopBorrow(t, r)
	intakeLaptopBorrow(t, r)
	require.NoError(t, r.ReturnBorrow(ctx, bt.ID, db.ReturnInput{ReceivedByName: "A. Reyes", ReturnDate: "2024-02-05"}))

	intakeProjectorReservation(t, r)

	s, err := r.CreateTech4edSession(ctx, db.Tech4edIntakeInput{UserName: "Maria", Gender: "Female", Purpose: "Internet Access"})
	require.NoError(t, err)
	_, err = r.EndTech4edSession(ctx, s.ID)
	require.NoError(t, err)

	sum, err := r.StatsSummary(ctx)
	require.NoError(t, err)

	require.EqualValues(t, 2, sum.Repairs.Total)
	require.EqualValues(t, 1, sum.Repairs.Completed) // only Released counts
	require.EqualValues(t, 1, sum.Repairs.Pending)   // Received or Repaired

	require.EqualValues(t, 2, sum.Borrows.Total)
	require.EqualValues(t, 1, sum.Borrows.Completed)
	require.EqualValues(t, 1, sum.Borrows.Pending)

	require.EqualValues(t, 1, sum.Reservations.Total)
	require.EqualValues(t, 0, sum.Reservations.Completed)
	require.EqualValues(t, 1, sum.Reservations.Pending)

	require.EqualValues(t, 1, sum.Tech4ed.Total)
	require.EqualValues(t, 1, sum.Tech4ed.Completed)
	require.EqualValues(t, 0, sum.Tech4ed.Pending)
}

func intakeRepairOn(t *testing.T, r *db.Repo, office, date string) uint {
	t.Helper()
	rt, err := r.CreateRepair(context.Background(), db.RepairIntakeInput{
		OfficeName:     office,
		BroughtByName:  "J. Cruz",
		ProductName:    "Printer",
		ReceivedByName: "A. Reyes",
		ReceiveDate:    date,
	})
	require.NoError(t, err)
	return rt.ID
}

func TestMonthlyRepairBreakdown(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// two intakes in June: one fixed, one unserviceable
	a := intakeRepairOn(t, r, "IT Office", "2024-06-03")
	b := intakeRepairOn(t, r, "IT Office", "2024-06-10")
	require.NoError(t, r.MarkRepaired(ctx, a, db.RepairDetailInput{RepairPersonName: "M. Santos", RepairDate: "2024-06-04", RepairStatus: "Fixed"}))
	require.NoError(t, r.MarkRepaired(ctx, b, db.RepairDetailInput{RepairPersonName: "M. Santos", RepairDate: "2024-06-11", RepairStatus: "Unserviceable"}))
	// one in April, fixed
	c := intakeRepairOn(t, r, "Finance", "2024-04-20")
	require.NoError(t, r.MarkRepaired(ctx, c, db.RepairDetailInput{RepairPersonName: "M. Santos", RepairDate: "2024-04-21", RepairStatus: "Fixed"}))
	// one outside the window, ignored
	intakeRepairOn(t, r, "Finance", "2023-11-01")

	rows, err := r.MonthlyRepairBreakdown(ctx, now)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	require.Equal(t, "2024-01", rows[0].Month)
	require.Equal(t, "2024-06", rows[5].Month)

	byMonth := map[string]db.MonthlyRepairStats{}
	for _, row := range rows {
		byMonth[row.Month] = row
	}
	require.EqualValues(t, 1, byMonth["2024-06"].Fixed)
	require.EqualValues(t, 1, byMonth["2024-06"].Unserviceable)
	require.EqualValues(t, 1, byMonth["2024-04"].Fixed)
	require.EqualValues(t, 0, byMonth["2024-04"].Unserviceable)
	// empty month reports zeros, not nulls
	require.EqualValues(t, 0, byMonth["2024-02"].Fixed)
	require.EqualValues(t, 0, byMonth["2024-02"].Unserviceable)
}

func TestTopOfficesByRepairs(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		intakeRepairOn(t, r, "IT Office", "2024-05-01")
	}
	intakeRepairOn(t, r, "Finance", "2024-05-01")
	intakeRepairOn(t, r, "Finance", "2024-05-02")
	intakeRepairOn(t, r, "HR", "2024-05-03")

	rows, err := r.TopOfficesByRepairs(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "IT Office", rows[0].OfficeName)
	require.EqualValues(t, 3, rows[0].Repairs)
	require.Equal(t, "Finance", rows[1].OfficeName)
	require.EqualValues(t, 2, rows[1].Repairs)

	// cap at ten distinct offices
	for i := 0; i < 12; i++ {
		intakeRepairOn(t, r, fmt.Sprintf("Office-%02d", i), "2024-05-04")
	}
	rows, err = r.TopOfficesByRepairs(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 10)
}
