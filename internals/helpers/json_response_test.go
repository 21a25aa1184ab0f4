package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func doRequest(t *testing.T, handler fiber.Handler, target string) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", handler)
	app.Post("/t", handler)

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("body not JSON: %v (%s)", err, raw)
	}
	return resp.StatusCode, body
}

func TestJsonOKEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "ok", fiber.Map{"x": 1})
	}, "/t")

	if status != 200 {
		t.Errorf("status = %d", status)
	}
	if body["success"] != true {
		t.Error("success != true")
	}
	if body["message"] != "ok" {
		t.Errorf("message = %v", body["message"])
	}
	if _, ok := body["data"]; !ok {
		t.Error("data missing")
	}
}

func TestJsonErrorEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusConflict, "bentrok")
	}, "/t")

	if status != 409 {
		t.Errorf("status = %d, want 409", status)
	}
	if body["success"] != false {
		t.Error("success != false")
	}
	if body["error_code"] != "CONFLICT" {
		t.Errorf("error_code = %v", body["error_code"])
	}
}

func TestJsonValidationError(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonValidationError(c, map[string][]string{
			"Phone": {"must be exactly 10 characters"},
		})
	}, "/t")

	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if body["error_code"] != "VALIDATION_ERROR" {
		t.Errorf("error_code = %v", body["error_code"])
	}
	errs, ok := body["errors"].(map[string]any)
	if !ok {
		t.Fatalf("errors = %T", body["errors"])
	}
	if _, ok := errs["Phone"]; !ok {
		t.Error("Phone errors missing")
	}
}

func TestJsonPartialStatus(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonPartial(c, "sebagian", fiber.Map{"warning": "qr gagal"})
	}, "/t")

	if status != fiber.StatusMultiStatus {
		t.Errorf("status = %d, want 207", status)
	}
	if body["success"] != true {
		t.Error("partial success should still report success=true")
	}
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/p", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})

	cases := []struct {
		name   string
		query  string
		page   int
		limit  int
		offset int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit", "?page=3&per_page=10", 3, 10, 20},
		{"limit alias", "?limit=5", 1, 5, 0},
		{"capped", "?per_page=9999", 1, 100, 0},
		{"bad values", "?page=-2&per_page=abc", 1, 20, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := app.Test(httptest.NewRequest("GET", "/p"+tc.query, nil)); err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if got.Page != tc.page || got.Limit != tc.limit || got.Offset != tc.offset {
				t.Errorf("paging = %+v, want page=%d limit=%d offset=%d", got, tc.page, tc.limit, tc.offset)
			}
		})
	}
}

func TestBuildPaginationFromOffset(t *testing.T) {
	p := BuildPaginationFromOffset(45, 20, 10)
	if p.Page != 3 || p.TotalPages != 5 {
		t.Errorf("pagination = %+v", p)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("has_next=%v has_prev=%v", p.HasNext, p.HasPrev)
	}

	last := BuildPaginationFromOffset(45, 40, 10)
	if last.HasNext || !last.HasPrev {
		t.Errorf("last page flags = %+v", last)
	}

	empty := BuildPaginationFromOffset(0, 0, 10)
	if empty.TotalPages != 0 || empty.HasNext {
		t.Errorf("empty pagination = %+v", empty)
	}
}
