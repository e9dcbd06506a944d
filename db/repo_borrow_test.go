package db_test

import (
	"context"
	"testing"

	"txlog/db"
	"txlog/models"

	"github.com/stretchr/testify/require"
)

func intakeLaptopBorrow(t *testing.T, r *db.Repo) *models.BorrowTransaction {
	t.Helper()
	bt, err := r.CreateBorrow(context.Background(), db.BorrowIntakeInput{
		BorrowerName:   "P. Dizon",
		ReleasedByName: "A. Reyes",
		ItemName:       "Laptop",
		BorrowDate:     "2024-02-01",
	})
	require.NoError(t, err)
	return bt
}

func TestBorrowIntake(t *testing.T) {
	r := newTestRepo(t)

	bt := intakeLaptopBorrow(t, r)
	require.NotZero(t, bt.ID)
	require.Equal(t, models.BorrowStatusBorrowed, bt.Status)
	require.Equal(t, 1, bt.Quantity)

	var p models.Person
	require.NoError(t, r.DB.First(&p, "id = ?", bt.BorrowerID).Error)
	require.Equal(t, "Borrower", p.Role)

	require.EqualValues(t, 0, count(t, r, &models.ReturnDetail{}, "borrow_transaction_id = ?", bt.ID))
}

func TestBorrowReturn(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	bt := intakeLaptopBorrow(t, r)

	err := r.ReturnBorrow(ctx, bt.ID, db.ReturnInput{
		ReceivedByName: "A. Reyes",
		ReturnDate:     "2024-02-05",
	})
	require.NoError(t, err)

	got, err := r.FindBorrowByID(ctx, bt.ID)
	require.NoError(t, err)
	require.Equal(t, models.BorrowStatusReturned, got.Status)
	require.EqualValues(t, 1, count(t, r, &models.ReturnDetail{}, "borrow_transaction_id = ?", bt.ID))

	// second return updates the same detail row
	err = r.ReturnBorrow(ctx, bt.ID, db.ReturnInput{
		ReceivedByName: "B. Lim",
		ReturnDate:     "2024-02-06",
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, count(t, r, &models.ReturnDetail{}, "borrow_transaction_id = ?", bt.ID))

	var d models.ReturnDetail
	require.NoError(t, r.DB.First(&d, "borrow_transaction_id = ?", bt.ID).Error)
	require.Equal(t, "2024-02-06", d.ReturnDate)
}

func TestBorrowReturnMissingParent(t *testing.T) {
	r := newTestRepo(t)
	err := r.ReturnBorrow(context.Background(), 42, db.ReturnInput{
		ReceivedByName: "A. Reyes", ReturnDate: "2024-02-05",
	})
	require.ErrorIs(t, err, db.ErrNotFound)
	require.EqualValues(t, 0, count(t, r, &models.Person{}, ""))
}

func TestDeleteBorrowCascades(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	bt := intakeLaptopBorrow(t, r)
	require.NoError(t, r.ReturnBorrow(ctx, bt.ID, db.ReturnInput{ReceivedByName: "A. Reyes", ReturnDate: "2024-02-05"}))

	require.NoError(t, r.DeleteBorrow(ctx, bt.ID, models.AdminRef{ID: 1, Username: "admin"}))

	_, err := r.FindBorrowByID(ctx, bt.ID)
	require.ErrorIs(t, err, db.ErrNotFound)
	require.EqualValues(t, 0, count(t, r, &models.ReturnDetail{}, "borrow_transaction_id = ?", bt.ID))
}

func TestListBorrows(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	bt := intakeLaptopBorrow(t, r)

	rows, err := r.ListBorrows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, bt.ID, rows[0].ID)
	require.Equal(t, "P. Dizon", rows[0].BorrowerName)
	require.Nil(t, rows[0].ReturnDate)

	require.NoError(t, r.ReturnBorrow(ctx, bt.ID, db.ReturnInput{ReceivedByName: "A. Reyes", ReturnDate: "2024-02-05"}))
	rows, err = r.ListBorrows(ctx)
	require.NoError(t, err)
	require.NotNil(t, rows[0].ReturnDate)
	require.Equal(t, "2024-02-05", *rows[0].ReturnDate)
	require.Equal(t, "A. Reyes", *rows[0].ReceivedByName)
}
