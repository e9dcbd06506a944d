package db_test

import (
	"context"
	"testing"

	"txlog/db"
	"txlog/models"

	"github.com/stretchr/testify/require"
)

func intakePrinterRepair(t *testing.T, r *db.Repo) *models.RepairTransaction {
	t.Helper()
	rt, err := r.CreateRepair(context.Background(), db.RepairIntakeInput{
		OfficeName:     "IT Office",
		BroughtByName:  "J. Cruz",
		ProductName:    "Printer",
		ReceivedByName: "A. Reyes",
		ReceiveDate:    "2024-01-10",
	})
	require.NoError(t, err)
	return rt
}

func TestRepairIntake(t *testing.T) {
	r := newTestRepo(t)

	rt := intakePrinterRepair(t, r)
	require.NotZero(t, rt.ID)
	require.Equal(t, models.RepairStatusReceived, rt.Status)
	require.Equal(t, 1, rt.Quantity, "quantity defaults to 1")

	// no detail row yet
	_, err := r.FindRepairDetail(context.Background(), rt.ID)
	require.ErrorIs(t, err, db.ErrNotFound)

	// registry writes landed in the same unit
	require.EqualValues(t, 1, count(t, r, &models.Office{}, "office_name = ?", "IT Office"))
	require.EqualValues(t, 2, count(t, r, &models.Person{}, ""))
	require.EqualValues(t, 1, count(t, r, &models.Product{}, "product_name = ?", "Printer"))
}

func TestRepairIntakeReusesOffice(t *testing.T) {
	r := newTestRepo(t)

	a := intakePrinterRepair(t, r)
	b := intakePrinterRepair(t, r)

	require.Equal(t, a.OfficeID, b.OfficeID)
	require.EqualValues(t, 1, count(t, r, &models.Office{}, ""))
	// persons are never reused
	require.EqualValues(t, 4, count(t, r, &models.Person{}, ""))
}

func TestRepairTransitionFull(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	rt := intakePrinterRepair(t, r)

	err := r.MarkRepaired(ctx, rt.ID, db.RepairDetailInput{
		RepairPersonName: "M. Santos",
		RepairDate:       "2024-01-12",
		RepairStatus:     "Fixed",
	})
	require.NoError(t, err)

	got, err := r.FindRepairByID(ctx, rt.ID)
	require.NoError(t, err)
	require.Equal(t, models.RepairStatusRepaired, got.Status)

	d, err := r.FindRepairDetail(ctx, rt.ID)
	require.NoError(t, err)
	require.Equal(t, "Fixed", d.RepairStatus)
	require.Equal(t, "2024-01-12", d.RepairDate)

	err = r.ReleaseRepair(ctx, rt.ID, db.ReleaseInput{
		ReleasedToName: "J. Cruz",
		ReleasedByName: "A. Reyes",
		ReleaseDate:    "2024-01-15",
	})
	require.NoError(t, err)

	got, err = r.FindRepairByID(ctx, rt.ID)
	require.NoError(t, err)
	require.Equal(t, models.RepairStatusReleased, got.Status)
	require.EqualValues(t, 1, count(t, r, &models.ReleaseDetail{}, "repair_transaction_id = ?", rt.ID))
}

func TestRepairDetailUpsertIsIdempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	rt := intakePrinterRepair(t, r)

	first := db.RepairDetailInput{RepairPersonName: "M. Santos", RepairDate: "2024-01-12", RepairStatus: "Fixed"}
	require.NoError(t, r.MarkRepaired(ctx, rt.ID, first))

	second := db.RepairDetailInput{RepairPersonName: "M. Santos", RepairDate: "2024-01-13", RepairStatus: "Unserviceable", Comment: "board fried"}
	require.NoError(t, r.MarkRepaired(ctx, rt.ID, second))

	// still exactly one detail row, carrying the later values
	require.EqualValues(t, 1, count(t, r, &models.RepairDetail{}, "repair_transaction_id = ?", rt.ID))
	d, err := r.FindRepairDetail(ctx, rt.ID)
	require.NoError(t, err)
	require.Equal(t, "Unserviceable", d.RepairStatus)
	require.Equal(t, "2024-01-13", d.RepairDate)
	require.Equal(t, "board fried", d.Comment)
}

func TestRepairTransitionMissingParent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	err := r.MarkRepaired(ctx, 999, db.RepairDetailInput{
		RepairPersonName: "M. Santos", RepairDate: "2024-01-12", RepairStatus: "Fixed",
	})
	require.ErrorIs(t, err, db.ErrNotFound)
	// the person insert rolled back with the rest of the unit
	require.EqualValues(t, 0, count(t, r, &models.Person{}, ""))

	err = r.ReleaseRepair(ctx, 999, db.ReleaseInput{
		ReleasedToName: "x", ReleasedByName: "y", ReleaseDate: "2024-01-15",
	})
	require.ErrorIs(t, err, db.ErrNotFound)
}

func TestDeleteRepairCascades(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	rt := intakePrinterRepair(t, r)
	require.NoError(t, r.MarkRepaired(ctx, rt.ID, db.RepairDetailInput{
		RepairPersonName: "M. Santos", RepairDate: "2024-01-12", RepairStatus: "Fixed",
	}))

	by := models.AdminRef{ID: 1, Username: "admin"}
	require.NoError(t, r.DeleteRepair(ctx, rt.ID, by))

	_, err := r.FindRepairByID(ctx, rt.ID)
	require.ErrorIs(t, err, db.ErrNotFound)
	require.EqualValues(t, 0, count(t, r, &models.RepairDetail{}, "repair_transaction_id = ?", rt.ID))

	logs, err := r.ListDeletions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "repair", logs[0].RecordKind)
	require.Equal(t, rt.ID, logs[0].RecordID)
	require.Equal(t, "admin", logs[0].AdminUsername)

	require.ErrorIs(t, r.DeleteRepair(ctx, rt.ID, by), db.ErrNotFound)
}

func TestListRepairsJoins(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	rt := intakePrinterRepair(t, r)

	rows, err := r.ListRepairs(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, rt.ID, rows[0].ID)
	require.Equal(t, "IT Office", rows[0].OfficeName)
	require.Equal(t, "J. Cruz", rows[0].BroughtByName)
	require.Equal(t, "Printer", rows[0].ProductName)
	require.Nil(t, rows[0].RepairStatus, "no detail before the repair transition")

	require.NoError(t, r.MarkRepaired(ctx, rt.ID, db.RepairDetailInput{
		RepairPersonName: "M. Santos", RepairDate: "2024-01-12", RepairStatus: "Fixed",
	}))
	rows, err = r.ListRepairs(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].RepairStatus)
	require.Equal(t, "Fixed", *rows[0].RepairStatus)
	require.Equal(t, "M. Santos", *rows[0].RepairPersonName)
}
