package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/utils/validation"
)

func TestValidationErrorCarriesFieldMessages(t *testing.T) {
	type form struct {
		Title string `validate:"required"`
	}
	v := validation.NewValidator()
	verr := v.ValidateStruct(form{})
	if verr == nil {
		t.Fatal("ValidateStruct accepted an invalid struct")
	}

	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		return ValidationError(c, verr)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("Status = %d, want 422", resp.StatusCode)
	}

	var body struct {
		Error struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", body.Error.Code)
	}
	if body.Error.Fields["title"] != "Title is required" {
		t.Errorf("title message = %q, want the required message", body.Error.Fields["title"])
	}
}

func TestCalculatePagination(t *testing.T) {
	cases := []struct {
		name           string
		page, limit    int
		total          int64
		wantPage       int
		wantTotalPages int
	}{
		{"first page", 1, 9, 20, 1, 3},
		{"exact fit", 1, 10, 30, 1, 3},
		{"single partial page", 1, 10, 3, 1, 1},
		{"empty result", 1, 10, 0, 1, 0},
		{"page below one clamps", 0, 10, 50, 1, 5},
		{"negative page clamps", -3, 10, 50, 1, 5},
		{"zero limit falls back", 1, 0, 25, 1, 3},
		{"oversized limit clamps to 100", 1, 500, 250, 1, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := CalculatePagination(tc.page, tc.limit, tc.total)
			if meta.CurrentPage != tc.wantPage {
				t.Errorf("CurrentPage = %d, want %d", meta.CurrentPage, tc.wantPage)
			}
			if meta.TotalPages != tc.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tc.wantTotalPages)
			}
			if meta.Total != tc.total {
				t.Errorf("Total = %d, want %d", meta.Total, tc.total)
			}
		})
	}
}
