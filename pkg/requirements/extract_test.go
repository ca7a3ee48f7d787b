package requirements

import (
	"reflect"
	"testing"
)

func TestExtractNodeExpressHeroku(t *testing.T) {
	req := Extract("Node.js Express app deploying to Heroku with PostgreSQL")

	if req.Language != LangNodeJS {
		t.Errorf("Language = %q, want %q", req.Language, LangNodeJS)
	}
	if req.Framework != "express" {
		t.Errorf("Framework = %q, want express", req.Framework)
	}
	if req.Platform != PlatformHeroku {
		t.Errorf("Platform = %q, want heroku", req.Platform)
	}
	if !reflect.DeepEqual(req.Databases, []string{"postgresql"}) {
		t.Errorf("Databases = %v, want [postgresql]", req.Databases)
	}
	if !reflect.DeepEqual(req.Environments, []string{"production"}) {
		t.Errorf("Environments = %v, want [production]", req.Environments)
	}
	if req.Docker {
		t.Error("Docker = true, want false")
	}
}

func TestExtractPythonFastAPIAWS(t *testing.T) {
	req := Extract("Python FastAPI with staging and production on AWS")

	if req.Language != LangPython {
		t.Errorf("Language = %q, want %q", req.Language, LangPython)
	}
	if req.Framework != "fastapi" {
		t.Errorf("Framework = %q, want fastapi", req.Framework)
	}
	if req.Platform != PlatformAWS {
		t.Errorf("Platform = %q, want aws", req.Platform)
	}
	if !reflect.DeepEqual(req.Environments, []string{"staging", "production"}) {
		t.Errorf("Environments = %v, want [staging production]", req.Environments)
	}
	// AWS deployments are container-based even without an explicit mention.
	if !req.Docker {
		t.Error("Docker = false, want true")
	}
}

func TestExtractNoPlatformKeepsBaseline(t *testing.T) {
	req := Extract("a plain web application with some tests")
	if req.Platform != PlatformHeroku {
		t.Errorf("Platform = %q, want baseline heroku", req.Platform)
	}
}

func TestExtractProductionAlwaysPresent(t *testing.T) {
	inputs := []string{
		"deploy to staging",
		"staging and dev environments",
		"production only",
		"nothing about environments at all",
	}
	for _, in := range inputs {
		req := Extract(in)
		found := false
		for _, e := range req.Environments {
			if e == "production" {
				found = true
			}
		}
		if !found {
			t.Errorf("Extract(%q).Environments = %v, missing production", in, req.Environments)
		}
	}
}

func TestExtractEnvironmentTableOrder(t *testing.T) {
	// Input order is reversed relative to the table; output must follow
	// table order with production appended.
	req := Extract("we need dev and staging")
	want := []string{"staging", "development", "production"}
	if !reflect.DeepEqual(req.Environments, want) {
		t.Errorf("Environments = %v, want %v", req.Environments, want)
	}
}

func TestExtractDatabasesTableOrder(t *testing.T) {
	// mysql appears before postgres in the input; the model must keep
	// pattern-table declaration order.
	req := Extract("uses mysql and postgres plus elasticsearch and redis")

	if want := []string{"postgresql", "mysql"}; !reflect.DeepEqual(req.Databases, want) {
		t.Errorf("Databases = %v, want %v", req.Databases, want)
	}
	if want := []string{"redis", "elasticsearch"}; !reflect.DeepEqual(req.Services, want) {
		t.Errorf("Services = %v, want %v", req.Services, want)
	}
}

func TestExtractServicesNeverOverlapDatabases(t *testing.T) {
	req := Extract("postgres with redis caching and redis sessions")
	for _, db := range req.Databases {
		if req.HasService(db) {
			t.Errorf("%q present in both databases and services", db)
		}
	}
	if want := []string{"redis"}; !reflect.DeepEqual(req.Services, want) {
		t.Errorf("Services = %v, want %v (no duplicates)", req.Services, want)
	}
}

func TestExtractTestFlags(t *testing.T) {
	tests := []struct {
		text                  string
		unit, integration, e2e bool
	}{
		{"unit tests only", true, false, false},
		{"integration tests", true, true, false}, // generic "test" also sets unit
		{"e2e with playwright", true, false, true},
		{"integration and end to end testing", true, true, true},
		{"no mention of anything", true, false, false}, // baseline unit default
	}
	for _, tt := range tests {
		req := Extract(tt.text)
		if req.UnitTests != tt.unit || req.IntegrationTests != tt.integration || req.E2ETests != tt.e2e {
			t.Errorf("Extract(%q) tests = %v/%v/%v, want %v/%v/%v",
				tt.text, req.UnitTests, req.IntegrationTests, req.E2ETests,
				tt.unit, tt.integration, tt.e2e)
		}
	}
}

func TestExtractDockerKeywords(t *testing.T) {
	if !Extract("ship it in a docker image to heroku").Docker {
		t.Error("explicit docker mention should set the flag")
	}
	if !Extract("run it in a container on heroku").Docker {
		t.Error("container mention should set the flag")
	}
	if Extract("containerized service on heroku").Docker {
		t.Error("bounded match must not fire inside larger words")
	}
	if Extract("plain heroku app").Docker {
		t.Error("heroku without mention should not set the flag")
	}
	if !Extract("deploy on google cloud").Docker {
		t.Error("gcp should force the flag")
	}
}

func TestExtractPreview(t *testing.T) {
	if !Extract("we want preview environments for each PR").PreviewDeploys {
		t.Error("preview mention should set the flag")
	}
	if !Extract("pr deploys please").PreviewDeploys {
		t.Error("pr deploy mention should set the flag")
	}
	if Extract("just production").PreviewDeploys {
		t.Error("no mention should leave the flag unset")
	}
}

func TestExtractProjectName(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"a service called orders-api on heroku", "orders-api"},
		{"the app named Checkout deploying to AWS", "checkout"},
		{"project billing with postgres", "billing"},
		{"an app called the best thing", "my-app"}, // stop word rejected
		{"nothing helpful here", "my-app"},         // baseline kept
		{"it is named x for now", "my-app"},        // single char rejected
	}
	for _, tt := range tests {
		req := Extract(tt.text)
		if req.Name != tt.want {
			t.Errorf("Extract(%q).Name = %q, want %q", tt.text, req.Name, tt.want)
		}
	}
}

func TestExtractGoNotConfusedByGoTo(t *testing.T) {
	req := Extract("I want to go to production with my app")
	if req.Language != LangNodeJS {
		t.Errorf("Language = %q, want baseline nodejs", req.Language)
	}

	req = Extract("a golang service on gcp")
	if req.Language != LangGo {
		t.Errorf("Language = %q, want go", req.Language)
	}
}

func TestExtractLanguageTableOrderWins(t *testing.T) {
	// "express" appears in both the nodejs language patterns and the
	// framework table; the first language label in table order wins.
	req := Extract("express service with pytest somewhere")
	if req.Language != LangNodeJS {
		t.Errorf("Language = %q, want nodejs (table order)", req.Language)
	}
}
