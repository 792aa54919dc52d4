package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"RENTWHEELS_BACK-END/internal/dto"
)

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorResponse(rec, http.StatusNotFound, "Car not found")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "Car not found" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
}

func TestDecodeJSONRequestInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	var dst dto.RegisterRequest
	if err := DecodeJSONRequest(rec, req, &dst); err == nil {
		t.Fatalf("expected decode error")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 written, got %d", rec.Code)
	}
}

func TestDecodeJSONRequestValidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"a@b.c","password":"secret"}`))
	rec := httptest.NewRecorder()

	var dst dto.LoginRequest
	if err := DecodeJSONRequest(rec, req, &dst); err != nil {
		t.Fatalf("DecodeJSONRequest: %v", err)
	}
	if dst.Email != "a@b.c" || dst.Password != "secret" {
		t.Fatalf("unexpected payload: %+v", dst)
	}
}
