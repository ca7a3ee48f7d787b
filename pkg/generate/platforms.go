package generate

import (
	"fmt"

	"github.com/pipesmith/pipesmith/pkg/requirements"
)

// platformSpec describes how one deployment platform's deploy job is
// rendered. The four platforms differ only in their job skeleton and the
// extra values that skeleton needs, so variation lives in data rather
// than in four separate builders.
type platformSpec struct {
	name        string
	jobTemplate string

	// extraVars supplies the platform-specific placeholder values beyond
	// the shared environment/needs set.
	extraVars func(req requirements.Requirements) map[string]string
}

var platformSpecs = []platformSpec{
	{
		name:        requirements.PlatformHeroku,
		jobTemplate: herokuDeployJobTemplate,
		extraVars: func(req requirements.Requirements) map[string]string {
			return map[string]string{"heroku_extra_options": ""}
		},
	},
	{
		name:        requirements.PlatformAWS,
		jobTemplate: awsDeployJobTemplate,
		extraVars: func(req requirements.Requirements) map[string]string {
			return map[string]string{
				"ecr_repository": req.Name,
				"cluster_name":   fmt.Sprintf("%s-cluster", req.Name),
				"service_name":   req.Name,
			}
		},
	},
	{
		name:        requirements.PlatformGCP,
		jobTemplate: gcpDeployJobTemplate,
		extraVars: func(req requirements.Requirements) map[string]string {
			return map[string]string{"service_name": req.Name}
		},
	},
	{
		name:        requirements.PlatformAzure,
		jobTemplate: azureDeployJobTemplate,
		extraVars: func(req requirements.Requirements) map[string]string {
			return map[string]string{"app_name": req.Name}
		},
	},
}

// platformFor returns the descriptor for name. The boolean is false for
// platforms without a deploy job skeleton; callers skip those silently.
func platformFor(name string) (platformSpec, bool) {
	for _, spec := range platformSpecs {
		if spec.name == name {
			return spec, true
		}
	}
	return platformSpec{}, false
}
