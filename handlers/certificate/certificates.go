package certificate

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/services"
	"github.com/shawaizdev/portfolio-api/utils/response"
	"github.com/shawaizdev/portfolio-api/utils/validation"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// CertificateHandler handles certification requests
type CertificateHandler struct {
	db        *gorm.DB
	uploads   *services.UploadService
	validator *validation.Validator
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(db *gorm.DB, uploads *services.UploadService) *CertificateHandler {
	return &CertificateHandler{
		db:        db,
		uploads:   uploads,
		validator: validation.NewValidator(),
	}
}

// CertificateRequest represents the create/update payload for a certificate
type CertificateRequest struct {
	Title         string `json:"title" form:"title" validate:"required,max=255"`
	Issuer        string `json:"issuer" form:"issuer" validate:"required,max=255"`
	IssueDate     string `json:"issue_date" form:"issue_date"`
	CredentialURL string `json:"credential_url" form:"credential_url" validate:"omitempty,url"`
	OrderIndex    int    `json:"order_index" form:"order_index"`
}

// List handles GET /api/v1/admin/certificates and feeds the public about page
func (h *CertificateHandler) List(c *fiber.Ctx) error {
	var certificates []model.Certificate
	if err := h.db.Order("order_index DESC, issue_date DESC").Find(&certificates).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch certificates")
	}

	return response.Success(c, certificates)
}

// Create handles POST /api/v1/admin/certificates
func (h *CertificateHandler) Create(c *fiber.Ctx) error {
	var req CertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	certificate := model.Certificate{
		Title:         validation.SanitizeString(req.Title),
		Issuer:        validation.SanitizeString(req.Issuer),
		CredentialURL: req.CredentialURL,
		OrderIndex:    req.OrderIndex,
	}

	if req.IssueDate != "" {
		issueDate, err := time.Parse(dateLayout, req.IssueDate)
		if err != nil {
			return response.BadRequest(c, "Invalid issue date")
		}
		certificate.IssueDate = issueDate
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := h.uploads.SaveImage(file, "certificates",
			services.CertificateImageMaxWidth, services.CertificateImageMaxHeight)
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		certificate.ImagePath = path
	}

	if err := h.db.Create(&certificate).Error; err != nil {
		return response.InternalServerError(c, "Failed to create certificate")
	}

	return response.Created(c, certificate)
}

// Update handles PUT /api/v1/admin/certificates/:id
func (h *CertificateHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var certificate model.Certificate
	if err := h.db.First(&certificate, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Certificate not found")
		}
		return response.InternalServerError(c, "Failed to fetch certificate")
	}

	var req CertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	certificate.Title = validation.SanitizeString(req.Title)
	certificate.Issuer = validation.SanitizeString(req.Issuer)
	certificate.CredentialURL = req.CredentialURL
	certificate.OrderIndex = req.OrderIndex

	if req.IssueDate != "" {
		issueDate, err := time.Parse(dateLayout, req.IssueDate)
		if err != nil {
			return response.BadRequest(c, "Invalid issue date")
		}
		certificate.IssueDate = issueDate
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := h.uploads.SaveImage(file, "certificates",
			services.CertificateImageMaxWidth, services.CertificateImageMaxHeight)
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		certificate.ImagePath = path
	}

	if err := h.db.Save(&certificate).Error; err != nil {
		return response.InternalServerError(c, "Failed to update certificate")
	}

	return response.SuccessWithMessage(c, "Certificate updated successfully", certificate)
}

// Delete handles DELETE /api/v1/admin/certificates/:id
func (h *CertificateHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var certificate model.Certificate
	if err := h.db.First(&certificate, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Certificate not found")
		}
		return response.InternalServerError(c, "Failed to fetch certificate")
	}

	if err := h.db.Delete(&certificate).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete certificate")
	}

	return response.SuccessWithMessage(c, "Certificate deleted successfully", fiber.Map{"id": certificate.ID})
}
