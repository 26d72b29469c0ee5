package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"alexweb-api/models"
	"alexweb-api/repositories"
	"alexweb-api/utils"
)

type TestimonialController struct {
	repo *repositories.TestimonialRepository
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{repo: repositories.NewTestimonialRepository(db)}
}

func (tc *TestimonialController) GetAll(c *gin.Context) {
	testimonials, err := tc.repo.GetAll()
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendData(c, testimonials)
}

func (tc *TestimonialController) GetByID(c *gin.Context) {
	testimonial, err := tc.repo.GetByID(parseID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if testimonial == nil {
		utils.SendNotFound(c, "Testimonial not found")
		return
	}
	utils.SendData(c, testimonial)
}

func (tc *TestimonialController) Create(c *gin.Context) {
	var input models.TestimonialCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	testimonial, err := tc.repo.Create(&input)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendCreated(c, "", testimonial)
}

func (tc *TestimonialController) Update(c *gin.Context) {
	var input models.TestimonialUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	testimonial, err := tc.repo.Update(parseID(c), &input)
	if err != nil {
		c.Error(err)
		return
	}
	if testimonial == nil {
		utils.SendNotFound(c, "Testimonial not found")
		return
	}
	utils.SendData(c, testimonial)
}

func (tc *TestimonialController) Delete(c *gin.Context) {
	deleted, err := tc.repo.Delete(parseID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if !deleted {
		utils.SendNotFound(c, "Testimonial not found")
		return
	}
	utils.SendMessage(c, "Testimonial deleted successfully")
}
