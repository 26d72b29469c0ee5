package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"alexweb-api/models"
	"alexweb-api/repositories"
	"alexweb-api/utils"
)

type VehicleController struct {
	repo *repositories.VehicleRepository
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{repo: repositories.NewVehicleRepository(db)}
}

func (vc *VehicleController) GetAll(c *gin.Context) {
	vehicles, err := vc.repo.GetAll()
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendData(c, vehicles)
}

func (vc *VehicleController) GetByID(c *gin.Context) {
	vehicle, err := vc.repo.GetByID(parseID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if vehicle == nil {
		utils.SendNotFound(c, "Vehicle not found")
		return
	}
	utils.SendData(c, vehicle)
}

func (vc *VehicleController) Create(c *gin.Context) {
	var input models.VehicleCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	vehicle, err := vc.repo.Create(&input)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendCreated(c, "", vehicle)
}

func (vc *VehicleController) Update(c *gin.Context) {
	var input models.VehicleUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	vehicle, err := vc.repo.Update(parseID(c), &input)
	if err != nil {
		c.Error(err)
		return
	}
	if vehicle == nil {
		utils.SendNotFound(c, "Vehicle not found")
		return
	}
	utils.SendData(c, vehicle)
}

func (vc *VehicleController) Delete(c *gin.Context) {
	deleted, err := vc.repo.Delete(parseID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if !deleted {
		utils.SendNotFound(c, "Vehicle not found")
		return
	}
	utils.SendMessage(c, "Vehicle deleted successfully")
}
