package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pipesmith/pipesmith/pkg/errors"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidInput, http.StatusBadRequest},
		{errors.ErrCodeInvalidLanguage, http.StatusBadRequest},
		{errors.ErrCodeInvalidPlatform, http.StatusBadRequest},
		{errors.ErrCodeResultNotFound, http.StatusNotFound},
		{errors.ErrCodeUnsupported, http.StatusUnprocessableEntity},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{errors.Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.code); got != tt.want {
			t.Errorf("StatusFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := errors.New(errors.ErrCodeInvalidLanguage, "invalid language: %q", "cobol")
	WriteError(rec, err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Error.Code != "INVALID_LANGUAGE" {
		t.Errorf("code = %q, want INVALID_LANGUAGE", envelope.Error.Code)
	}
	if !strings.Contains(envelope.Error.Message, "cobol") {
		t.Errorf("message = %q, want it to mention cobol", envelope.Error.Message)
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Description string `json:"description"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"description":"an api"}`))
		var p payload
		if err := DecodeJSON(req, &p); err != nil {
			t.Fatalf("DecodeJSON: %v", err)
		}
		if p.Description != "an api" {
			t.Errorf("description = %q", p.Description)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"descriptionz":"typo"}`))
		var p payload
		err := DecodeJSON(req, &p)
		if err == nil {
			t.Fatal("expected error for unknown field")
		}
		if errors.GetCode(err) != errors.ErrCodeInvalidInput {
			t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		var p payload
		if err := DecodeJSON(req, &p); err == nil {
			t.Fatal("expected error for malformed body")
		}
	})
}
