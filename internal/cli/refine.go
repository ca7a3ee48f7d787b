package cli

import (
	"errors"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pipesmith/pipesmith/pkg/requirements"
)

// errRefineAborted is returned when the user quits a prompt.
var errRefineAborted = errors.New("refinement aborted")

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// selectModel - single choice prompt
// =============================================================================

// selectModel is the bubbletea model for a single-choice question.
type selectModel struct {
	Question string
	Options  []string
	Cursor   int
	Choice   string
	Aborted  bool
}

func newSelectModel(question string, options []string, defaultIdx int) selectModel {
	if defaultIdx < 0 || defaultIdx >= len(options) {
		defaultIdx = 0
	}
	return selectModel{Question: question, Options: options, Cursor: defaultIdx}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Aborted = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Options)-1 {
				m.Cursor++
			}
		case "enter":
			m.Choice = m.Options[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Question))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + opt
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// confirmModel - yes/no prompt
// =============================================================================

// confirmModel is the bubbletea model for a yes/no question.
type confirmModel struct {
	Question string
	Value    bool
	Decided  bool
	Aborted  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Aborted = true
			return m, tea.Quit
		case "y", "Y":
			m.Value = true
			m.Decided = true
			return m, tea.Quit
		case "n", "N":
			m.Value = false
			m.Decided = true
			return m, tea.Quit
		case "left", "right", "h", "l", "tab":
			m.Value = !m.Value
		case "enter":
			m.Decided = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	var yes, no string
	if m.Value {
		yes = listSelectedStyle.Render("▸ yes")
		no = listDimStyle.Render("  no")
	} else {
		yes = listDimStyle.Render("  yes")
		no = listSelectedStyle.Render("▸ no")
	}
	return StyleTitle.Render(m.Question) + "\n" +
		listDimStyle.Render("y/n or ←/→ then ⏎") + "\n\n" +
		yes + "\n" + no + "\n"
}

// =============================================================================
// Prompt runners
// =============================================================================

func runSelect(question string, options []string, defaultIdx int) (string, error) {
	final, err := tea.NewProgram(newSelectModel(question, options, defaultIdx)).Run()
	if err != nil {
		return "", err
	}
	m := final.(selectModel)
	if m.Aborted || m.Choice == "" {
		return "", errRefineAborted
	}
	return m.Choice, nil
}

func runConfirm(question string, def bool) (bool, error) {
	final, err := tea.NewProgram(confirmModel{Question: question, Value: def}).Run()
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.Aborted {
		return false, errRefineAborted
	}
	return m.Value, nil
}

// =============================================================================
// Refinement flow
// =============================================================================

// choice label -> model value tables.
var (
	languageChoices = map[string]string{
		"Node.js": requirements.LangNodeJS,
		"Python":  requirements.LangPython,
		"Go":      requirements.LangGo,
		"Java":    requirements.LangJava,
	}
	platformChoices = map[string]string{
		"Heroku":             requirements.PlatformHeroku,
		"AWS":                requirements.PlatformAWS,
		"Google Cloud (GCP)": requirements.PlatformGCP,
		"Azure":              requirements.PlatformAzure,
	}
	nodeFrameworkChoices = map[string]string{
		"Express": "express",
		"Next.js": "nextjs",
		"NestJS":  "nestjs",
	}
	pythonFrameworkChoices = map[string]string{
		"Django":  "django",
		"Flask":   "flask",
		"FastAPI": "fastapi",
	}
)

// refine walks the user through correcting the detected model. The flow
// mirrors the detection summary: confirm first, then re-ask the detected
// fields only when the user rejects them, then fill remaining gaps
// (docker, databases, redis).
func refine(model requirements.Requirements) (requirements.Requirements, error) {
	printNewline()
	printInfo("Based on your description, I detected:")
	printDetail("Language: %s", titleWord(model.Language))
	printDetail("Framework: %s", orNone(model.Framework))
	printDetail("Platform: %s", titleWord(model.Platform))
	printDetail("Environments: %s", strings.Join(model.Environments, ", "))
	printNewline()

	correct, err := runConfirm("Does this look correct?", true)
	if err != nil {
		return model, err
	}

	if !correct {
		if model, err = refineDetected(model); err != nil {
			return model, err
		}
	}

	docker, err := runConfirm("Do you need Docker configuration?", model.Docker)
	if err != nil {
		return model, err
	}
	model.Docker = docker

	if len(model.Databases) == 0 {
		needDB, err := runConfirm("Do you need a database?", false)
		if err != nil {
			return model, err
		}
		if needDB {
			choice, err := runSelect("What database are you using?",
				[]string{"PostgreSQL", "MySQL", "MongoDB", "None"}, 0)
			if err != nil {
				return model, err
			}
			if choice != "None" {
				model.Databases = []string{strings.ToLower(choice)}
			}
		}
	}

	if !model.HasService("redis") {
		needRedis, err := runConfirm("Do you need Redis (caching/sessions)?", false)
		if err != nil {
			return model, err
		}
		if needRedis {
			model.Services = append(model.Services, "redis")
		}
	}

	return model, nil
}

// refineDetected re-asks language, framework, platform, and staging.
func refineDetected(model requirements.Requirements) (requirements.Requirements, error) {
	langDefault := 0
	if model.Language != requirements.LangNodeJS {
		langDefault = 1
	}
	lang, err := runSelect("What programming language is your project?",
		[]string{"Node.js", "Python", "Go", "Java"}, langDefault)
	if err != nil {
		return model, err
	}
	model.Language = languageChoices[lang]

	switch model.Language {
	case requirements.LangNodeJS:
		fw, err := runSelect("What Node.js framework are you using?",
			[]string{"Express", "Next.js", "NestJS", "None/Other"}, 0)
		if err != nil {
			return model, err
		}
		model.Framework = nodeFrameworkChoices[fw]
	case requirements.LangPython:
		fw, err := runSelect("What Python framework are you using?",
			[]string{"Django", "Flask", "FastAPI", "None/Other"}, 0)
		if err != nil {
			return model, err
		}
		model.Framework = pythonFrameworkChoices[fw]
	}

	platform, err := runSelect("Where do you want to deploy?",
		[]string{"Heroku", "AWS", "Google Cloud (GCP)", "Azure"}, 0)
	if err != nil {
		return model, err
	}
	model.Platform = platformChoices[platform]

	staging, err := runConfirm("Do you need a staging environment?", true)
	if err != nil {
		return model, err
	}
	if staging {
		if !slices.Contains(model.Environments, "staging") {
			model.Environments = append([]string{"staging"}, model.Environments...)
		}
	} else {
		model.Environments = slices.DeleteFunc(model.Environments, func(e string) bool {
			return e == "staging"
		})
	}

	return model, nil
}

// =============================================================================
// Helpers
// =============================================================================

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func orNone(s string) string {
	if s == "" {
		return "Not specified"
	}
	return titleWord(s)
}
