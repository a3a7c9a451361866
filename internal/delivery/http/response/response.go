package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the JSON response shape the deployed contact form consumes.
// The live frontend matches on these exact messages, so the shape is part
// of the wire contract.
type Body struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// Sent reports a successful relay, echoing the provider message id when
// the adapter surfaced one.
func Sent(c *gin.Context, id string) {
	c.JSON(http.StatusOK, Body{
		Message: "Email sent successfully",
		ID:      id,
	})
}

// Error sends a failure response with the given fixed message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Body{Message: message})
}
