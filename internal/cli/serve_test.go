package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pipesmith/pipesmith/pkg/pipeline"
	"github.com/pipesmith/pipesmith/pkg/session"
)

func testServer() *apiServer {
	logger := log.New(io.Discard)
	return &apiServer{
		runner: pipeline.NewRunner(logger),
		store:  session.NewMemoryStore(),
		ttl:    time.Hour,
		logger: logger,
	}
}

func TestServeGenerate(t *testing.T) {
	srv := httptest.NewServer(testServer().routes())
	defer srv.Close()

	body := `{"description": "A Node.js Express API called shop-api with postgres, deploy to Heroku"}`
	resp, err := http.Post(srv.URL+"/v1/generate", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID == "" {
		t.Error("response id is empty")
	}
	if got.Model.Name != "shop-api" {
		t.Errorf("model name = %q, want shop-api", got.Model.Name)
	}
	if got.Model.Language != "nodejs" {
		t.Errorf("model language = %q, want nodejs", got.Model.Language)
	}
	if _, ok := got.Files[".github/workflows/ci-cd.yml"]; !ok {
		t.Error("workflow file missing from response")
	}
}

func TestServeGenerateValidation(t *testing.T) {
	srv := httptest.NewServer(testServer().routes())
	defer srv.Close()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"empty description", `{"description": ""}`, http.StatusBadRequest},
		{"bad language", `{"description": "an api", "language": "cobol"}`, http.StatusBadRequest},
		{"unknown field", `{"descriptionz": "typo"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/v1/generate", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestServeResultRoundtrip(t *testing.T) {
	srv := httptest.NewServer(testServer().routes())
	defer srv.Close()

	body := `{"description": "Python Flask app on AWS"}`
	resp, err := http.Post(srv.URL+"/v1/generate", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	var created generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/v1/results/" + created.ID)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var fetched generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatal(err)
	}
	if fetched.ID != created.ID {
		t.Errorf("id = %q, want %q", fetched.ID, created.ID)
	}
	if fetched.Model.Language != "python" {
		t.Errorf("language = %q, want python", fetched.Model.Language)
	}
}

func TestServeResultNotFound(t *testing.T) {
	srv := httptest.NewServer(testServer().routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/results/does-not-exist")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatal(err)
	}
	if envelope.Error.Code != "RESULT_NOT_FOUND" {
		t.Errorf("code = %q, want RESULT_NOT_FOUND", envelope.Error.Code)
	}
}

func TestServeHealth(t *testing.T) {
	srv := httptest.NewServer(testServer().routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
