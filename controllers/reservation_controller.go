package controllers

import (
	"net/http"

	"txlog/app"
	"txlog/db"

	"github.com/gin-gonic/gin"
)

type ReservationController struct{ *Srv }

func NewReservationController(s *Srv) *ReservationController {
	return &ReservationController{Srv: s}
}

// GET /api/reservations
func (rc *ReservationController) List(c *gin.Context) {
	rows, err := rc.Repo.ListReservations(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "data": rows})
}

// POST /api/reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var in struct {
		ReserverName        string `json:"reserver_name" binding:"required"`
		ReserverRole        string `json:"reserver_role"`
		OfficeName          string `json:"office_name" binding:"required"`
		ItemName            string `json:"item_name" binding:"required"`
		Quantity            int    `json:"quantity"`
		Purpose             string `json:"purpose"`
		Notes               string `json:"notes"`
		ReservationDate     string `json:"reservation_date" binding:"required"`
		EstimatedPickupDate string `json:"estimated_pickup_date" binding:"required"`
		EstimatedReturnDate string `json:"estimated_return_date" binding:"required"`
		ApprovedByName      string `json:"approved_by_name"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Required fields missing."})
		return
	}
	rv, err := rc.Repo.CreateReservation(c.Request.Context(), db.ReservationIntakeInput{
		ReserverName:        in.ReserverName,
		ReserverRole:        in.ReserverRole,
		OfficeName:          in.OfficeName,
		ItemName:            in.ItemName,
		Quantity:            in.Quantity,
		Purpose:             in.Purpose,
		Notes:               in.Notes,
		ReservationDate:     in.ReservationDate,
		EstimatedPickupDate: in.EstimatedPickupDate,
		EstimatedReturnDate: in.EstimatedReturnDate,
		ApprovedByName:      in.ApprovedByName,
	})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Reservation created.", "id": rv.ID})
}

// PUT /api/reservations/:id/pick
func (rc *ReservationController) Pick(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in struct {
		ReleasedByName   string `json:"released_by_name" binding:"required"`
		ActualPickupDate string `json:"actual_pickup_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Required fields missing."})
		return
	}
	err := rc.Repo.PickReservation(c.Request.Context(), id, db.PickupInput{
		ReleasedByName:   in.ReleasedByName,
		ActualPickupDate: in.ActualPickupDate,
	})
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Item picked up."})
}

// PUT /api/reservations/:id/return
func (rc *ReservationController) Return(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in struct {
		ReceivedByName   string `json:"received_by_name" binding:"required"`
		ActualReturnDate string `json:"actual_return_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Required fields missing."})
		return
	}
	err := rc.Repo.ReturnReservation(c.Request.Context(), id, db.ReservationReturnInput{
		ReceivedByName:   in.ReceivedByName,
		ActualReturnDate: in.ActualReturnDate,
	})
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Item returned."})
}

// DELETE /api/reservations/:id — behind StepUpRequired
func (rc *ReservationController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.Repo.DeleteReservation(c.Request.Context(), id, adminRef(c)); err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Record deleted."})
}
