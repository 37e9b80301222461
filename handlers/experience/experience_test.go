package experience

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
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
	if err := db.AutoMigrate(&model.Experience{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	handler := NewExperienceHandler(db)

	app := fiber.New()
	app.Get("/admin/experience", handler.List)
	app.Post("/admin/experience", handler.Create)
	app.Put("/admin/experience/:id", handler.Update)
	app.Delete("/admin/experience/:id", handler.Delete)

	return app, db
}

func postExperience(t *testing.T, app *fiber.App, req ExperienceRequest) (*model.Experience, int) {
	t.Helper()
	payload, _ := json.Marshal(req)
	r := httptest.NewRequest("POST", "/admin/experience", bytes.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(r)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		return nil, resp.StatusCode
	}

	var body struct {
		Data model.Experience `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	return &body.Data, resp.StatusCode
}

func TestCreateCurrentRoleHasNoEndDate(t *testing.T) {
	app, _ := newTestApp(t)

	created, status := postExperience(t, app, ExperienceRequest{
		JobTitle:  "Backend Engineer",
		Company:   "Acme",
		StartDate: "2023-06-01",
		EndDate:   "2024-01-01", // ignored while current
		IsCurrent: true,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("Status = %d, want 201", status)
	}

	if !created.IsCurrent {
		t.Error("IsCurrent should be true")
	}
	if created.EndDate != nil {
		t.Errorf("EndDate = %v, want nil for a current role", created.EndDate)
	}
}

func TestCreatePastRoleKeepsEndDate(t *testing.T) {
	app, _ := newTestApp(t)

	created, status := postExperience(t, app, ExperienceRequest{
		JobTitle:  "Intern",
		Company:   "Acme",
		StartDate: "2021-01-01",
		EndDate:   "2021-06-30",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("Status = %d, want 201", status)
	}

	if created.EndDate == nil {
		t.Fatal("EndDate should be set for a past role")
	}
	if got := created.EndDate.Format("2006-01-02"); got != "2021-06-30" {
		t.Errorf("EndDate = %s, want 2021-06-30", got)
	}
}

func TestCreateRejectsMalformedDate(t *testing.T) {
	app, _ := newTestApp(t)

	_, status := postExperience(t, app, ExperienceRequest{
		JobTitle:  "Engineer",
		Company:   "Acme",
		StartDate: "June 2023",
	})
	if status != fiber.StatusBadRequest {
		t.Errorf("Status = %d, want 400", status)
	}
}

func TestUpdateMarksRoleCurrentAndClearsEndDate(t *testing.T) {
	app, db := newTestApp(t)

	created, status := postExperience(t, app, ExperienceRequest{
		JobTitle:  "Engineer",
		Company:   "Acme",
		StartDate: "2022-01-01",
		EndDate:   "2023-01-01",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("Status = %d, want 201", status)
	}

	payload, _ := json.Marshal(ExperienceRequest{
		JobTitle:  "Engineer",
		Company:   "Acme",
		StartDate: "2022-01-01",
		IsCurrent: true,
	})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/admin/experience/%d", created.ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}

	var stored model.Experience
	if err := db.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("Failed to reload entry: %v", err)
	}
	if !stored.IsCurrent {
		t.Error("IsCurrent should be true after update")
	}
	if stored.EndDate != nil {
		t.Errorf("EndDate = %v, want nil after marking current", stored.EndDate)
	}
}

func TestListOrdersByOrderIndexDescending(t *testing.T) {
	app, db := newTestApp(t)
	for i, title := range []string{"Oldest", "Middle", "Latest"} {
		db.Create(&model.Experience{
			JobTitle:   title,
			Company:    "Acme",
			OrderIndex: i,
		})
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/experience", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	var body struct {
		Data []model.Experience `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}

	want := []string{"Latest", "Middle", "Oldest"}
	for i, title := range want {
		if body.Data[i].JobTitle != title {
			t.Errorf("Position %d = %q, want %q", i, body.Data[i].JobTitle, title)
		}
	}
}
