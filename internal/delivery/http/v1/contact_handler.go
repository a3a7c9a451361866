package v1

import (
	"errors"

	"contact-relay-backend/internal/delivery/http/response"
	"contact-relay-backend/internal/domain"
	"contact-relay-backend/pkg/apperror"
	"contact-relay-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact relay route (public, no auth)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/send-email", handler.SendEmail)
}

// SendEmail godoc
// @Summary      Relay a contact form submission
// @Description  Validates the submission and forwards it to the configured email provider. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.ContactRequest  true  "Contact Form Submission"
// @Success      200         {object}  response.Body
// @Failure      400         {object}  response.Body
// @Failure      500         {object}  response.Body
// @Router       /send-email [post]
func (h *ContactHandler) SendEmail(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			c.Error(apperror.MissingFields())
			return
		}
		// Malformed JSON has always been reported as a send failure;
		// kept that way for wire compatibility with the deployed form
		c.Error(apperror.SendFailure(err))
		return
	}

	logger.Log.Debug("contact submission received", "email", req.Email, "to", req.To)

	id, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.Error(apperror.MissingFields())
			return
		}
		c.Error(apperror.SendFailure(err))
		return
	}

	response.Sent(c, id)
}
