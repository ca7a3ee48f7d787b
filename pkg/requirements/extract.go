package requirements

import (
	"slices"
	"strings"
)

// input carries the description in both the case-folded form used by the
// category tables and the original form used by project-name capture.
type input struct {
	text string // lower-cased
	raw  string // original case
}

// Pass is one detection step. Passes are pure: they read the input,
// update their own fields on a copy of the model, and return it.
type Pass func(req Requirements, in input) Requirements

// passes is the fixed extraction order. detectDocker reads the platform
// resolved by detectPlatform, so order is load-bearing.
var passes = []Pass{
	detectLanguage,
	detectFramework,
	detectPlatform,
	detectDatabases,
	detectEnvironments,
	detectTests,
	detectDocker,
	detectPreview,
	extractProjectName,
}

// Extract folds the detection passes over a baseline model and returns
// the result. The returned model is not yet finalized; run ApplyDefaults
// after any further adjustments to derive version, port, package manager,
// and commands.
func Extract(description string) Requirements {
	in := input{text: strings.ToLower(description), raw: description}
	req := New()
	for _, pass := range passes {
		req = pass(req, in)
	}
	return req
}

func detectLanguage(req Requirements, in input) Requirements {
	if lang, ok := matchFirst(languageTable, in.text); ok {
		req.Language = lang
	}
	return req
}

func detectFramework(req Requirements, in input) Requirements {
	if fw, ok := matchFirst(frameworkTable, in.text); ok {
		req.Framework = fw
	}
	return req
}

func detectPlatform(req Requirements, in input) Requirements {
	if platform, ok := matchFirst(platformTable, in.text); ok {
		req.Platform = platform
	}
	return req
}

// detectDatabases records every matching label. Redis and elasticsearch
// route to Services; everything else goes to Databases. Duplicates are
// suppressed, keeping table order.
func detectDatabases(req Requirements, in input) Requirements {
	var databases []string
	for _, label := range matchAll(databaseTable, in.text) {
		if serviceRouted[label] {
			if !slices.Contains(req.Services, label) {
				req.Services = append(req.Services, label)
			}
			continue
		}
		if !slices.Contains(databases, label) {
			databases = append(databases, label)
		}
	}
	req.Databases = databases
	return req
}

// detectEnvironments collects matches in table order. Any non-empty match
// set forces production to be present; no matches yields exactly
// ["production"].
func detectEnvironments(req Requirements, in input) Requirements {
	envs := matchAll(environmentTable, in.text)
	if len(envs) == 0 {
		req.Environments = []string{"production"}
		return req
	}
	if !slices.Contains(envs, "production") {
		envs = append(envs, "production")
	}
	req.Environments = envs
	return req
}

func detectTests(req Requirements, in input) Requirements {
	for _, label := range matchAll(testTable, in.text) {
		switch label {
		case "unit":
			req.UnitTests = true
		case "integration":
			req.IntegrationTests = true
		case "e2e":
			req.E2ETests = true
		}
	}
	// A bare "test" mention implies unit tests regardless of the table.
	if genericTestRe.MatchString(in.text) {
		req.UnitTests = true
	}
	return req
}

// detectDocker sets the docker flag on an explicit mention, or for
// platforms that deploy containers regardless of mention.
func detectDocker(req Requirements, in input) Requirements {
	if dockerRe.MatchString(in.text) {
		req.Docker = true
	}
	if req.Platform == PlatformAWS || req.Platform == PlatformGCP {
		req.Docker = true
	}
	return req
}

func detectPreview(req Requirements, in input) Requirements {
	if previewRe.MatchString(in.text) {
		req.PreviewDeploys = true
	}
	return req
}

// extractProjectName tries the capture patterns against the original-case
// text and accepts the first token that is not a stop word and is longer
// than one character. Otherwise the baseline name stands.
func extractProjectName(req Requirements, in input) Requirements {
	for _, re := range nameCaptures {
		m := re.FindStringSubmatch(in.raw)
		if m == nil {
			continue
		}
		name := strings.ToLower(m[1])
		if !nameStopWords[name] && len(name) > 1 {
			req.Name = name
			return req
		}
	}
	return req
}
