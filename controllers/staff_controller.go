package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"alexweb-api/models"
	"alexweb-api/repositories"
	"alexweb-api/utils"
)

type StaffController struct {
	repo *repositories.StaffRepository
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{repo: repositories.NewStaffRepository(db)}
}

func (sc *StaffController) GetAll(c *gin.Context) {
	staff, err := sc.repo.GetAll()
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendData(c, staff)
}

func (sc *StaffController) GetByID(c *gin.Context) {
	member, err := sc.repo.GetByID(parseID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if member == nil {
		utils.SendNotFound(c, "Staff member not found")
		return
	}
	utils.SendData(c, member)
}

func (sc *StaffController) Create(c *gin.Context) {
	var input models.StaffMemberCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	member, err := sc.repo.Create(&input)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendCreated(c, "", member)
}

func (sc *StaffController) Update(c *gin.Context) {
	var input models.StaffMemberUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	member, err := sc.repo.Update(parseID(c), &input)
	if err != nil {
		c.Error(err)
		return
	}
	if member == nil {
		utils.SendNotFound(c, "Staff member not found")
		return
	}
	utils.SendData(c, member)
}

func (sc *StaffController) Delete(c *gin.Context) {
	deleted, err := sc.repo.Delete(parseID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if !deleted {
		utils.SendNotFound(c, "Staff member not found")
		return
	}
	utils.SendMessage(c, "Staff member deleted successfully")
}
