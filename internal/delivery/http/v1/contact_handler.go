package v1

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"go-contact-relay/internal/delivery/http/response"
	"go-contact-relay/internal/domain"
	"go-contact-relay/pkg/apperror"
	"go-contact-relay/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	// redirectURL switches the handler to browser-redirect responses.
	// Nil means JSON responses.
	redirectURL *url.URL
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, redirectURL *url.URL) {
	handler := &ContactHandler{
		contactUC:   contactUC,
		redirectURL: redirectURL,
	}

	public.POST("/", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relay a contact form message to the configured recipient. This is a public endpoint. When a redirect URL is configured the relay answers with a 303 redirect carrying the outcome in the query string instead of a JSON body.
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        from_name   formData  string  true  "Sender display name"
// @Param        from_email  formData  string  true  "Sender email address"
// @Param        title       formData  string  true  "Mail subject"
// @Param        body        formData  string  true  "Mail body text"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       / [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		msg := strings.Join(validation.FormatValidationErrors(err), ", ")
		c.Error(apperror.BadRequest(msg))
		return
	}

	err := h.contactUC.SendContactMessage(c.Request.Context(), &req)

	if h.redirectURL != nil {
		h.redirectWithOutcome(c, err)
		return
	}

	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK)
}

// redirectWithOutcome sends the browser back to the configured URL with
// the outcome in the query string, the classic HTML form-post flow.
func (h *ContactHandler) redirectWithOutcome(c *gin.Context, err error) {
	query := url.Values{}

	if err != nil {
		query.Set("status", response.StatusError)
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			query.Set("message", appErr.Message)
		} else {
			query.Set("message", "An unexpected error occurred. Please try again later.")
		}
	} else {
		query.Set("status", response.StatusSuccess)
	}

	target := *h.redirectURL
	target.RawQuery = query.Encode()
	c.Redirect(http.StatusSeeOther, target.String())
}
