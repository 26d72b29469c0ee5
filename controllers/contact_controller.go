package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"alexweb-api/models"
	"alexweb-api/repositories"
	"alexweb-api/services"
	"alexweb-api/utils"
)

type ContactController struct {
	repo         *repositories.ContactRepository
	emailService *services.EmailService
	log          *logrus.Logger
}

func NewContactController(db *gorm.DB, emailService *services.EmailService, log *logrus.Logger) *ContactController {
	return &ContactController{
		repo:         repositories.NewContactRepository(db),
		emailService: emailService,
		log:          log,
	}
}

func (cc *ContactController) Create(c *gin.Context) {
	var input models.ContactMessageCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendValidationErrors(c, utils.FormatValidationErrors(err))
		return
	}

	message, err := cc.repo.Create(&input)
	if err != nil {
		c.Error(err)
		return
	}

	// Notification is best-effort; a dead SMTP server must not lose
	// the stored message or fail the request.
	if cc.emailService != nil && cc.emailService.Enabled() {
		if err := cc.emailService.SendContactNotification(message); err != nil {
			cc.log.Warnf("contact notification not sent: %v", err)
		}
	}

	utils.SendCreated(c, "Contact message sent successfully", message)
}

func (cc *ContactController) GetAll(c *gin.Context) {
	messages, err := cc.repo.GetAll()
	if err != nil {
		c.Error(err)
		return
	}
	utils.SendData(c, messages)
}

func (cc *ContactController) GetByID(c *gin.Context) {
	message, err := cc.repo.GetByID(parseID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if message == nil {
		utils.SendNotFound(c, "Contact message not found")
		return
	}
	utils.SendData(c, message)
}
