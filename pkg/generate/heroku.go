package generate

import (
	"encoding/json"

	"github.com/pipesmith/pipesmith/pkg/requirements"
	"github.com/pipesmith/pipesmith/pkg/template"
)

// Heroku output paths.
const (
	ProcfilePath = "Procfile"
	AppJSONPath  = "app.json"
)

// herokuAddons maps database labels to their Heroku addon plans. Labels
// without a hosted addon (mongodb, sqlite) are omitted from app.json.
var herokuAddons = map[string]string{
	"postgresql": "heroku-postgresql:mini",
	"mysql":      "jawsdb:kitefin",
}

// Heroku generates the Procfile and app.json manifest. Models targeting
// any other platform produce no files.
func Heroku(req requirements.Requirements) (Files, error) {
	if req.Platform != requirements.PlatformHeroku {
		return Files{}, nil
	}

	procfile, err := template.Render(procfileTemplate, map[string]string{
		"start_command": req.StartCommand,
	})
	if err != nil {
		return nil, err
	}

	appJSON, err := herokuAppJSON(req)
	if err != nil {
		return nil, err
	}

	return Files{
		ProcfilePath: procfile,
		AppJSONPath:  appJSON,
	}, nil
}

func herokuAppJSON(req requirements.Requirements) (string, error) {
	var addons []string
	for _, db := range req.Databases {
		if plan, ok := herokuAddons[db]; ok {
			addons = append(addons, plan)
		}
	}
	if req.HasService("redis") {
		addons = append(addons, "heroku-redis:mini")
	}
	if addons == nil {
		addons = []string{}
	}

	buildpacks := []map[string]string{}
	switch req.Language {
	case requirements.LangNodeJS:
		buildpacks = append(buildpacks, map[string]string{"url": "heroku/nodejs"})
	case requirements.LangPython:
		buildpacks = append(buildpacks, map[string]string{"url": "heroku/python"})
	}

	envVars := map[string]map[string]string{}
	if req.Language == requirements.LangNodeJS {
		envVars["NODE_ENV"] = map[string]string{"value": "production"}
	}

	repoURL := req.RepositoryURL
	if repoURL == "" {
		repoURL = "https://github.com/username/repo"
	}

	keywordsJSON, err := json.Marshal([]string{"ci-cd", req.Language})
	if err != nil {
		return "", err
	}
	envJSON, err := json.MarshalIndent(envVars, "", "    ")
	if err != nil {
		return "", err
	}
	addonsJSON, err := json.Marshal(addons)
	if err != nil {
		return "", err
	}
	buildpacksJSON, err := json.Marshal(buildpacks)
	if err != nil {
		return "", err
	}

	return template.Render(herokuAppJSONTemplate, map[string]string{
		"app_name":       req.Name,
		"description":    req.Description,
		"repository_url": repoURL,
		"keywords":       string(keywordsJSON),
		"env_vars":       string(envJSON),
		"addons":         string(addonsJSON),
		"buildpacks":     string(buildpacksJSON),
		"test_command":   req.TestCommand,
	})
}
