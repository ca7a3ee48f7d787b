package generate

import (
	"strconv"
	"strings"

	"github.com/pipesmith/pipesmith/pkg/requirements"
	"github.com/pipesmith/pipesmith/pkg/template"
)

// Docker output paths.
const (
	DockerfilePath   = "Dockerfile"
	DockerignorePath = ".dockerignore"
)

// Docker generates the Dockerfile and .dockerignore for models that opt
// into containerization. Languages without a multi-stage skeleton get an
// empty Dockerfile body so the output set stays predictable.
func Docker(req requirements.Requirements) (Files, error) {
	if !req.Docker {
		return Files{}, nil
	}

	dockerfile, err := dockerfileFor(req)
	if err != nil {
		return nil, err
	}

	return Files{
		DockerfilePath:   dockerfile,
		DockerignorePath: dockerignoreContent,
	}, nil
}

func dockerfileFor(req requirements.Requirements) (string, error) {
	switch req.Language {
	case requirements.LangNodeJS:
		installCmd := "npm ci"
		prodInstall := "npm ci --only=production"
		switch req.PackageManager {
		case "yarn":
			installCmd = "yarn install --frozen-lockfile"
			prodInstall = "yarn install --production --frozen-lockfile"
		case "pnpm":
			installCmd = "pnpm install --frozen-lockfile"
			prodInstall = "pnpm install --prod --frozen-lockfile"
		}

		build := req.BuildCommand
		if build == "" {
			build = "npm run build"
		}

		return template.Render(dockerfileNodeTemplate, map[string]string{
			"install_command":      installCmd,
			"build_command":        build,
			"prod_install_command": prodInstall,
			"build_output":         "dist",
			"port":                 strconv.Itoa(req.Port),
			"start_cmd":            execForm(req.StartCommand),
		})

	case requirements.LangPython:
		return template.Render(dockerfilePythonTemplate, map[string]string{
			"port":      strconv.Itoa(req.Port),
			"start_cmd": execForm(req.StartCommand),
		})
	}

	return "", nil
}

// execForm renders a shell command as a Dockerfile exec-form CMD array.
func execForm(command string) string {
	fields := strings.Fields(command)
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = strconv.Quote(f)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
