package testimonial

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Testimonial{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	handler := NewTestimonialHandler(db)

	app := fiber.New()
	app.Get("/admin/testimonials", handler.List)
	app.Post("/admin/testimonials", handler.Create)
	app.Put("/admin/testimonials/:id", handler.Update)
	app.Delete("/admin/testimonials/:id", handler.Delete)

	return app, db
}

func TestCreateTestimonial(t *testing.T) {
	app, db := newTestApp(t)

	payload, _ := json.Marshal(TestimonialRequest{
		Name:  "Jordan Lee",
		Role:  "Engineering Manager",
		Quote: "A pleasure to work with.",
	})
	req := httptest.NewRequest("POST", "/admin/testimonials", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Status = %d, want 201", resp.StatusCode)
	}

	var stored model.Testimonial
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("Failed to load testimonial: %v", err)
	}
	if stored.Name != "Jordan Lee" || stored.Quote != "A pleasure to work with." {
		t.Errorf("Stored testimonial = %+v, want submitted values", stored)
	}
}

func TestCreateRequiresNameAndQuote(t *testing.T) {
	app, _ := newTestApp(t)

	for _, req := range []TestimonialRequest{
		{Quote: "No name attached."},
		{Name: "Jordan Lee"},
	} {
		payload, _ := json.Marshal(req)
		r := httptest.NewRequest("POST", "/admin/testimonials", bytes.NewReader(payload))
		r.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(r)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnprocessableEntity {
			t.Errorf("Payload %+v: status = %d, want 422", req, resp.StatusCode)
		}
	}
}

func TestCreateRejectsOverlongName(t *testing.T) {
	app, _ := newTestApp(t)

	payload, _ := json.Marshal(TestimonialRequest{
		Name:  strings.Repeat("x", 101),
		Quote: "Name exceeds the limit.",
	})
	req := httptest.NewRequest("POST", "/admin/testimonials", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want 422", resp.StatusCode)
	}
}

func TestListOrdersByOrderIndex(t *testing.T) {
	app, db := newTestApp(t)
	db.Create(&model.Testimonial{Name: "First Added", Quote: "q"})
	db.Create(&model.Testimonial{Name: "Pinned", Quote: "q", OrderIndex: 10})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/testimonials", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if len(body.Data) != 2 {
		t.Fatalf("List has %d entries, want 2", len(body.Data))
	}
	if body.Data[0].Name != "Pinned" {
		t.Errorf("First entry = %q, want Pinned (highest order_index)", body.Data[0].Name)
	}
}

func TestUpdateTestimonial(t *testing.T) {
	app, db := newTestApp(t)
	testimonial := model.Testimonial{Name: "Jordan Lee", Quote: "Original quote."}
	db.Create(&testimonial)

	payload, _ := json.Marshal(TestimonialRequest{
		Name:  "Jordan Lee",
		Role:  "Director of Engineering",
		Quote: "Revised quote.",
	})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/admin/testimonials/%d", testimonial.ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}

	var stored model.Testimonial
	if err := db.First(&stored, testimonial.ID).Error; err != nil {
		t.Fatalf("Failed to reload testimonial: %v", err)
	}
	if stored.Quote != "Revised quote." || stored.Role != "Director of Engineering" {
		t.Errorf("Stored testimonial = %+v, want updated values", stored)
	}
}

func TestUpdateUnknownTestimonialReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	payload, _ := json.Marshal(TestimonialRequest{Name: "Ghost", Quote: "Not here."})
	req := httptest.NewRequest("PUT", "/admin/testimonials/999", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Status = %d, want 404", resp.StatusCode)
	}
}

func TestDeleteTestimonial(t *testing.T) {
	app, db := newTestApp(t)
	testimonial := model.Testimonial{Name: "Jordan Lee", Quote: "q"}
	db.Create(&testimonial)

	resp, err := app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/admin/testimonials/%d", testimonial.ID), nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}

	var count int64
	db.Model(&model.Testimonial{}).Count(&count)
	if count != 0 {
		t.Errorf("Testimonial count = %d, want 0", count)
	}
}

func TestDeleteUnknownTestimonialReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/admin/testimonials/999", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Status = %d, want 404", resp.StatusCode)
	}
}
