package controllers

import (
	"net/http"

	"txlog/app"
	"txlog/db"

	"github.com/gin-gonic/gin"
)

type RepairController struct{ *Srv }

func NewRepairController(s *Srv) *RepairController { return &RepairController{Srv: s} }

// GET /api/repairs
func (rc *RepairController) List(c *gin.Context) {
	rows, err := rc.Repo.ListRepairs(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "data": rows})
}

// POST /api/repairs — intake (Receive flow)
func (rc *RepairController) Create(c *gin.Context) {
	var in struct {
		OfficeName         string  `json:"office_name" binding:"required"`
		BroughtByName      string  `json:"brought_by_name" binding:"required"`
		BroughtByRole      string  `json:"brought_by_role"`
		ProductName        string  `json:"product_name" binding:"required"`
		SerialNumber       *string `json:"serial_number"`
		ModelNumber        *string `json:"model_number"`
		Quantity           int     `json:"quantity"`
		ProblemDescription string  `json:"problem_description"`
		ReceivedByName     string  `json:"received_by_name" binding:"required"`
		ReceivedByRole     string  `json:"received_by_role"`
		ContactNumber      string  `json:"contact_number"`
		ReceiveDate        string  `json:"receive_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Required fields missing."})
		return
	}
	rt, err := rc.Repo.CreateRepair(c.Request.Context(), db.RepairIntakeInput{
		OfficeName:         in.OfficeName,
		BroughtByName:      in.BroughtByName,
		BroughtByRole:      in.BroughtByRole,
		ProductName:        in.ProductName,
		SerialNumber:       in.SerialNumber,
		ModelNumber:        in.ModelNumber,
		Quantity:           in.Quantity,
		ProblemDescription: in.ProblemDescription,
		ReceivedByName:     in.ReceivedByName,
		ReceivedByRole:     in.ReceivedByRole,
		ContactNumber:      in.ContactNumber,
		ReceiveDate:        in.ReceiveDate,
	})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Repair transaction created.", "id": rt.ID})
}

// PUT /api/repairs/:id/repair — Repair flow
func (rc *RepairController) Repair(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in struct {
		RepairPersonName string `json:"repair_person_name" binding:"required"`
		RepairPersonRole string `json:"repair_person_role"`
		RepairDate       string `json:"repair_date" binding:"required"`
		RepairStatus     string `json:"repair_status" binding:"required"`
		Comment          string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Required fields missing."})
		return
	}
	err := rc.Repo.MarkRepaired(c.Request.Context(), id, db.RepairDetailInput{
		RepairPersonName: in.RepairPersonName,
		RepairPersonRole: in.RepairPersonRole,
		RepairDate:       in.RepairDate,
		RepairStatus:     in.RepairStatus,
		Comment:          in.Comment,
	})
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Repair details saved."})
}

// PUT /api/repairs/:id/release — Release flow
func (rc *RepairController) Release(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in struct {
		ReleasedToName string `json:"released_to_name" binding:"required"`
		ReleasedByName string `json:"released_by_name" binding:"required"`
		ReleaseDate    string `json:"release_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "message": "Required fields missing."})
		return
	}
	err := rc.Repo.ReleaseRepair(c.Request.Context(), id, db.ReleaseInput{
		ReleasedToName: in.ReleasedToName,
		ReleasedByName: in.ReleasedByName,
		ReleaseDate:    in.ReleaseDate,
	})
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Item released."})
}

// DELETE /api/repairs/:id — behind StepUpRequired
func (rc *RepairController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.Repo.DeleteRepair(c.Request.Context(), id, adminRef(c)); err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "message": "Record deleted."})
}
