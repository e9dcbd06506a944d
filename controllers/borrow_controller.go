package controllers

import (
	"net/http"

	"txlog/app"
	"txlog/db"

	"github.com/gin-gonic/gin"
)

type BorrowController struct{ *Srv }

func NewBorrowController(s *Srv) *BorrowController { return &BorrowController{Srv: s} }

// GET /api/borrows
func (bc *BorrowController) List(c *gin.Context) {
	rows, err := bc.Repo.ListBorrows(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "data": rows})
}

// POST /api/borrows
func (bc *BorrowController) Create(c *gin.Context) {
	var in struct {
		BorrowerName   string  `json:"borrower_name" binding:"required"`
		ReleasedByName string  `json:"released_by_name" binding:"required"`
		ItemName       string  `json:"item_name" binding:"required"`
		Quantity       int     `json:"quantity"`
		BorrowDate     string  `json:"borrow_date" binding:"required"`
		BorrowOffice   *string `json:"borrow_office"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Required fields missing."})
		return
	}
	bt, err := bc.Repo.CreateBorrow(c.Request.Context(), db.BorrowIntakeInput{
		BorrowerName:   in.BorrowerName,
		ReleasedByName: in.ReleasedByName,
		ItemName:       in.ItemName,
		Quantity:       in.Quantity,
		BorrowDate:     in.BorrowDate,
		BorrowOffice:   in.BorrowOffice,
	})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Borrow transaction created.", "id": bt.ID})
}

// PUT /api/borrows/:id/return
func (bc *BorrowController) Return(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in struct {
		ReceivedByName string `json:"received_by_name" binding:"required"`
		ReturnDate     string `json:"return_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Required fields missing."})
		return
	}
	err := bc.Repo.ReturnBorrow(c.Request.Context(), id, db.ReturnInput{
		ReceivedByName: in.ReceivedByName,
		ReturnDate:     in.ReturnDate,
	})
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Item returned."})
}

// DELETE /api/borrows/:id — behind StepUpRequired
func (bc *BorrowController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := bc.Repo.DeleteBorrow(c.Request.Context(), id, adminRef(c)); err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Record deleted."})
}
