package blog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/services"
	"github.com/shawaizdev/portfolio-api/utils/response"
	"github.com/shawaizdev/portfolio-api/utils/slug"
	"github.com/shawaizdev/portfolio-api/utils/validation"
	"gorm.io/gorm"
)

// Page sizes for blog listings
const (
	PublicPageSize = 6
	AdminPageSize  = 10
)

// BlogHandler handles blog post requests
type BlogHandler struct {
	db        *gorm.DB
	uploads   *services.UploadService
	validator *validation.Validator
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(db *gorm.DB, uploads *services.UploadService) *BlogHandler {
	return &BlogHandler{
		db:        db,
		uploads:   uploads,
		validator: validation.NewValidator(),
	}
}

// BlogPostRequest represents the create/update payload for a blog post
type BlogPostRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=255"`
	Slug        string `json:"slug" form:"slug" validate:"omitempty,max=255"`
	Excerpt     string `json:"excerpt" form:"excerpt"`
	Content     string `json:"content" form:"content" validate:"required"`
	Tags        string `json:"tags" form:"tags"`
	IsPublished bool   `json:"is_published" form:"is_published"`
}

// List handles GET /api/v1/blog, returning published posts only
func (h *BlogHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	tag := c.Query("tag")

	query := h.db.Model(&model.BlogPost{}).Where("is_published = ?", true)
	if tag != "" {
		query = query.Where("tags LIKE ?", "%"+tag+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count posts")
	}

	pagination := response.CalculatePagination(page, PublicPageSize, total)
	offset := (pagination.CurrentPage - 1) * PublicPageSize

	var posts []model.BlogPost
	if err := query.Order("created_at DESC").
		Limit(PublicPageSize).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch posts")
	}

	tags, err := h.allTags()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch tags")
	}

	return response.Paginated(c, fiber.Map{
		"posts":       posts,
		"all_tags":    tags,
		"current_tag": tag,
	}, pagination)
}

// GetBySlug handles GET /api/v1/blog/:slug, published posts only
func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	var post model.BlogPost
	err := h.db.Where("slug = ? AND is_published = ?", c.Params("slug"), true).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Blog post not found")
		}
		return response.InternalServerError(c, "Failed to fetch post")
	}

	return response.Success(c, post)
}

// AdminList handles GET /api/v1/admin/blog, including unpublished posts
func (h *BlogHandler) AdminList(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	var total int64
	if err := h.db.Model(&model.BlogPost{}).Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count posts")
	}

	pagination := response.CalculatePagination(page, AdminPageSize, total)
	offset := (pagination.CurrentPage - 1) * AdminPageSize

	var posts []model.BlogPost
	if err := h.db.Order("created_at DESC").
		Limit(AdminPageSize).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch posts")
	}

	return response.Paginated(c, posts, pagination)
}

// Create handles POST /api/v1/admin/blog. The slug is caller-supplied or
// derived from the title; a colliding slug fails with 409.
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	postSlug := req.Slug
	if postSlug == "" {
		postSlug = slug.Make(req.Title)
	}
	if postSlug == "" {
		return response.BadRequest(c, "Title does not produce a usable slug")
	}

	var existing model.BlogPost
	if err := h.db.Where("slug = ?", postSlug).First(&existing).Error; err == nil {
		return response.Conflict(c, "A post with this slug already exists")
	}

	post := model.BlogPost{
		Title:       validation.SanitizeString(req.Title),
		Slug:        postSlug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
	}

	if path, err := h.saveImage(c); err != nil {
		return response.BadRequest(c, err.Error())
	} else if path != "" {
		post.ImagePath = path
	}

	if err := h.db.Create(&post).Error; err != nil {
		return response.InternalServerError(c, "Failed to create post")
	}

	return response.Created(c, post)
}

// Update handles PUT /api/v1/admin/blog/:id
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.BlogPost
	if err := h.db.First(&post, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Blog post not found")
		}
		return response.InternalServerError(c, "Failed to fetch post")
	}

	var req BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	// Slug stays unless the caller supplies a new one
	if req.Slug != "" && req.Slug != post.Slug {
		var existing model.BlogPost
		if err := h.db.Where("slug = ? AND id != ?", req.Slug, post.ID).First(&existing).Error; err == nil {
			return response.Conflict(c, "A post with this slug already exists")
		}
		post.Slug = req.Slug
	}

	post.Title = validation.SanitizeString(req.Title)
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.Tags = req.Tags
	post.IsPublished = req.IsPublished

	if path, err := h.saveImage(c); err != nil {
		return response.BadRequest(c, err.Error())
	} else if path != "" {
		post.ImagePath = path
	}

	if err := h.db.Save(&post).Error; err != nil {
		return response.InternalServerError(c, "Failed to update post")
	}

	return response.SuccessWithMessage(c, "Blog post updated successfully", post)
}

// Delete handles DELETE /api/v1/admin/blog/:id
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.BlogPost
	if err := h.db.First(&post, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Blog post not found")
		}
		return response.InternalServerError(c, "Failed to fetch post")
	}

	if err := h.db.Delete(&post).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete post")
	}

	return response.SuccessWithMessage(c, "Blog post deleted successfully", fiber.Map{"id": post.ID})
}

// allTags collects the distinct tag set across published posts
func (h *BlogHandler) allTags() ([]string, error) {
	var tagFields []string
	err := h.db.Model(&model.BlogPost{}).
		Where("is_published = ? AND tags != ''", true).
		Pluck("tags", &tagFields).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, field := range tagFields {
		for _, tag := range strings.Split(field, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				seen[tag] = true
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

func (h *BlogHandler) saveImage(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	return h.uploads.SaveImage(file, "blog",
		services.BlogImageMaxWidth, services.BlogImageMaxHeight)
}
