package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"alexweb-api/models"
	"alexweb-api/repositories"
	"alexweb-api/utils"
)

type BackgroundImageController struct {
	repo *repositories.BackgroundImageRepository
}

func NewBackgroundImageController(db *gorm.DB) *BackgroundImageController {
	return &BackgroundImageController{repo: repositories.NewBackgroundImageRepository(db)}
}

// GetAll serves the public rotation: a plain array of image URLs in
// display order.
func (bc *BackgroundImageController) GetAll(c *gin.Context) {
	urls, err := bc.repo.GetAllURLs()
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendData(c, urls)
}

func (bc *BackgroundImageController) GetByID(c *gin.Context) {
	image, err := bc.repo.GetByID(parseID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if image == nil {
		utils.SendNotFound(c, "Background image not found")
		return
	}
	utils.SendData(c, image)
}

func (bc *BackgroundImageController) Create(c *gin.Context) {
	var input models.BackgroundImageCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	image, err := bc.repo.Create(&input)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendCreated(c, "", image)
}

func (bc *BackgroundImageController) Update(c *gin.Context) {
	var input models.BackgroundImageUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	image, err := bc.repo.Update(parseID(c), &input)
	if err != nil {
		c.Error(err)
		return
	}
	if image == nil {
		utils.SendNotFound(c, "Background image not found")
		return
	}
	utils.SendData(c, image)
}

func (bc *BackgroundImageController) Delete(c *gin.Context) {
	deleted, err := bc.repo.Delete(parseID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if !deleted {
		utils.SendNotFound(c, "Background image not found")
		return
	}
	utils.SendMessage(c, "Background image deleted successfully")
}
