// Package requirements turns free-form project descriptions into a
// structured requirements model.
//
// Extraction runs a fixed sequence of detection passes over the input
// text. Each pass is a pure reducer: it receives the model by value,
// inspects the text against its own pattern table, and returns an updated
// copy. Absence of a match is never an error; the model starts from
// sensible baseline defaults and keeps them when a category yields no
// signal.
//
// # Usage
//
//	req := requirements.Extract("Node.js Express app deploying to Heroku with PostgreSQL")
//	req = requirements.ApplyDefaults(req)
//	fmt.Println(req.Language, req.Platform) // nodejs heroku
package requirements

import "slices"

// Supported languages.
const (
	LangNodeJS = "nodejs"
	LangPython = "python"
	LangGo     = "go"
	LangJava   = "java"
)

// Supported deployment platforms.
const (
	PlatformHeroku = "heroku"
	PlatformAWS    = "aws"
	PlatformGCP    = "gcp"
	PlatformAzure  = "azure"
)

// Languages lists the supported language identifiers in canonical order.
var Languages = []string{LangNodeJS, LangPython, LangGo, LangJava}

// Platforms lists the supported platform identifiers in canonical order.
var Platforms = []string{PlatformHeroku, PlatformAWS, PlatformGCP, PlatformAzure}

// ValidLanguage reports whether lang is a supported language identifier.
func ValidLanguage(lang string) bool {
	return slices.Contains(Languages, lang)
}

// ValidPlatform reports whether platform is a supported platform identifier.
func ValidPlatform(platform string) bool {
	return slices.Contains(Platforms, platform)
}

// Requirements is the structured model of a project description. One
// instance exists per run. It is built by Extract, optionally adjusted by
// callers (flag overrides, interactive refinement), finalized by
// ApplyDefaults, and then treated as read-only by the generators.
type Requirements struct {
	// Identity
	Name          string `json:"name"`
	Description   string `json:"description"`
	RepositoryURL string `json:"repository_url,omitempty"`

	// Runtime
	Language       string `json:"language"`
	Framework      string `json:"framework,omitempty"`
	Version        string `json:"version"`
	PackageManager string `json:"package_manager"`

	// Deployment
	Platform     string   `json:"platform"`
	Environments []string `json:"environments"`

	// Testing
	UnitTests        bool `json:"unit_tests"`
	IntegrationTests bool `json:"integration_tests"`
	E2ETests         bool `json:"e2e_tests"`

	// Infrastructure. Databases and Services never overlap: redis and
	// elasticsearch always route to Services.
	Databases []string `json:"databases,omitempty"`
	Services  []string `json:"services,omitempty"`

	// Commands, blank until ApplyDefaults runs.
	BuildCommand string `json:"build_command"`
	StartCommand string `json:"start_command"`
	TestCommand  string `json:"test_command"`
	LintCommand  string `json:"lint_command"`

	Port           int    `json:"port"`
	Docker         bool   `json:"docker"`
	MainBranch     string `json:"main_branch"`
	PreviewDeploys bool   `json:"preview_deploys"`
	Notifications  bool   `json:"notifications"`
}

// New returns a model populated with baseline defaults: a Node.js app
// named "my-app" deploying to Heroku with a single production environment.
func New() Requirements {
	return Requirements{
		Name:         "my-app",
		Description:  "Application deployed via CI/CD pipeline",
		Language:     LangNodeJS,
		Version:      "20",
		Platform:     PlatformHeroku,
		Environments: []string{"production"},
		UnitTests:    true,
		Port:         3000,
		MainBranch:   "main",

		PackageManager: "npm",
	}
}

// HasService reports whether name is among the detected services.
func (r Requirements) HasService(name string) bool {
	return slices.Contains(r.Services, name)
}

// HasDatabase reports whether name is among the detected databases.
func (r Requirements) HasDatabase(name string) bool {
	return slices.Contains(r.Databases, name)
}
