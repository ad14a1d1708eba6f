package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/boxjoy/pkg/validator"
)

type seriesReq struct {
	Name         string `json:"name"         validate:"required,notblank,max=255"`
	TotalRegular *int   `json:"totalRegular" validate:"omitempty,gte=0"`
}

type itemReq struct {
	Name   string  `json:"name"   validate:"required,notblank,max=255"`
	Price  float64 `json:"price"  validate:"gte=0"`
	Status string  `json:"status" validate:"omitempty,oneof=displayed stored not_owned"`
	Image  string  `json:"image"  validate:"omitempty,base64"`
}

func TestValidate_valid(t *testing.T) {
	if err := pkgvalidator.Validate(&itemReq{Name: "章魚", Price: 300, Status: "stored"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestFormatValidationErrors_messages(t *testing.T) {
	neg := -1
	tests := []struct {
		name  string
		input any
		field string
		want  string
	}{
		{"required", &itemReq{}, "name", "This field is required"},
		{"notblank", &itemReq{Name: "   "}, "name", "Must not be blank"},
		{"max", &seriesReq{Name: strings.Repeat("a", 256)}, "name", "Maximum length is 255"},
		{"gte", &itemReq{Name: "x", Price: -1}, "price", "Must be greater than or equal to 0"},
		{"gte on pointer", &seriesReq{Name: "x", TotalRegular: &neg}, "totalRegular", "Must be greater than or equal to 0"},
		{"oneof", &itemReq{Name: "x", Status: "sold"}, "status", "Must be one of: displayed, stored, not_owned"},
		{"base64", &itemReq{Name: "x", Image: "not base64!"}, "image", "Must be base64 encoded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(tt.input))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q (all: %v)", tt.field, m[tt.field], tt.want, m)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"章魚","price":300,"status":"stored"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "章魚" || req.Status != "stored" {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_validationFailed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","price":-5}`))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for negative price")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"price"`) {
		t.Errorf("expected price field error in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("x", 200) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.Body = http.MaxBytesReader(w, r.Body, 32)

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for oversized body")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}
