package requirements

// Question is a clarification prompt for information the description did
// not pin down. Options are display labels; Current holds the value the
// model carries today, if any.
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Current  string   `json:"current,omitempty"`
}

// MissingInfo returns clarification questions for gaps in the model: a
// framework question when a nodejs or python project names none, and a
// platform question when no platform is set.
func MissingInfo(req Requirements) []Question {
	var questions []Question

	if req.Language == LangNodeJS && req.Framework == "" {
		questions = append(questions, Question{
			ID:       "framework",
			Question: "What Node.js framework are you using?",
			Options:  []string{"Express", "Next.js", "NestJS", "Other/None"},
		})
	}
	if req.Language == LangPython && req.Framework == "" {
		questions = append(questions, Question{
			ID:       "framework",
			Question: "What Python framework are you using?",
			Options:  []string{"Django", "Flask", "FastAPI", "Other/None"},
		})
	}
	if req.Platform == "" {
		questions = append(questions, Question{
			ID:       "platform",
			Question: "Where would you like to deploy your application?",
			Options:  []string{"Heroku", "AWS", "Google Cloud (GCP)", "Azure"},
		})
	}

	return questions
}
