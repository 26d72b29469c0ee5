package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"

	"alexweb-api/models"
	"alexweb-api/repositories"
	"alexweb-api/utils"
)

type FinanceController struct {
	repo *repositories.FinanceRepository
}

func NewFinanceController(db *gorm.DB) *FinanceController {
	return &FinanceController{repo: repositories.NewFinanceRepository(db)}
}

// Create validates the known borrower fields, then stores the raw
// payload as an opaque document so optional fields the form grows
// later survive without schema changes. Both binds read the same
// cached body.
func (fc *FinanceController) Create(c *gin.Context) {
	var input models.FinanceApplicationInput
	if err := c.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	var document models.JSONMap
	if err := c.ShouldBindBodyWith(&document, binding.JSON); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	application, err := fc.repo.Create(document)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendCreated(c, "Finance application submitted successfully", application)
}

func (fc *FinanceController) GetAll(c *gin.Context) {
	applications, err := fc.repo.GetAll()
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendData(c, applications)
}

func (fc *FinanceController) GetByID(c *gin.Context) {
	application, err := fc.repo.GetByID(parseID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if application == nil {
		utils.SendNotFound(c, "Finance application not found")
		return
	}
	utils.SendData(c, application)
}
