package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"alexweb-api/models"
	"alexweb-api/repositories"
	"alexweb-api/utils"
)

const invalidCategoryMessage = "Invalid category. Must be 'body_style', 'make', or 'model'"

type PopularItemController struct {
	repo *repositories.PopularItemRepository
}

func NewPopularItemController(db *gorm.DB) *PopularItemController {
	return &PopularItemController{repo: repositories.NewPopularItemRepository(db)}
}

// category validates the :category path parameter against the closed
// set before anything reaches the repository.
func category(c *gin.Context) (string, bool) {
	cat := c.Param("category")
	if !models.IsValidPopularItemCategory(cat) {
		utils.SendBadRequest(c, invalidCategoryMessage)
		return "", false
	}
	return cat, true
}

func (pc *PopularItemController) GetAll(c *gin.Context) {
	items, err := pc.repo.GetAll()
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendData(c, items)
}

func (pc *PopularItemController) GetByCategory(c *gin.Context) {
	cat, ok := category(c)
	if !ok {
		return
	}

	items, err := pc.repo.GetByCategory(cat)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendData(c, items)
}

func (pc *PopularItemController) Create(c *gin.Context) {
	cat, ok := category(c)
	if !ok {
		return
	}

	var input models.PopularItemCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	item, err := pc.repo.Upsert(cat, input.Name, input.Count)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendCreated(c, "", item)
}

func (pc *PopularItemController) Update(c *gin.Context) {
	cat, ok := category(c)
	if !ok {
		return
	}

	var input models.PopularItemUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	item, err := pc.repo.UpdateCount(cat, c.Param("name"), *input.Count)
	if err != nil {
		c.Error(err)
		return
	}
	if item == nil {
		utils.SendNotFound(c, "Popular item not found")
		return
	}
	utils.SendData(c, item)
}

func (pc *PopularItemController) Delete(c *gin.Context) {
	cat, ok := category(c)
	if !ok {
		return
	}

	deleted, err := pc.repo.Delete(cat, c.Param("name"))
	if err != nil {
		c.Error(err)
		return
	}
	if !deleted {
		utils.SendNotFound(c, "Popular item not found")
		return
	}
	utils.SendMessage(c, "Popular item deleted successfully")
}
