package requirements

// Derived holds the fields computed purely from (language, framework).
type Derived struct {
	Version        string
	Port           int
	PackageManager string
	Build          string
	Test           string
	Lint           string
	Start          string
}

// langDefaults is the per-language defaults table row. Framework choice
// only ever affects the start command.
type langDefaults struct {
	version        string
	port           int
	packageManager string
	build          string
	test           string
	lint           string
	start          string            // used when no framework override applies
	frameworkStart map[string]string // framework label -> start command
}

var defaultsTable = map[string]langDefaults{
	LangNodeJS: {
		version:        "20",
		port:           3000,
		packageManager: "npm",
		build:          "npm run build",
		test:           "npm test",
		lint:           "npm run lint",
		start:          "npm start",
		frameworkStart: map[string]string{
			"express": "node server.js",
			"nextjs":  "npm start",
			"nestjs":  "node dist/main.js",
		},
	},
	LangPython: {
		version:        "3.11",
		port:           8000,
		packageManager: "pip",
		test:           "pytest",
		lint:           "flake8 . || ruff check .",
		start:          "python app.py",
		frameworkStart: map[string]string{
			"django":  "gunicorn myproject.wsgi:application",
			"flask":   "gunicorn app:app",
			"fastapi": "uvicorn main:app --host 0.0.0.0 --port $PORT",
		},
	},
	LangGo: {
		version:        "1.21",
		port:           8080,
		packageManager: "go",
		build:          "go build -o app .",
		test:           "go test ./...",
		start:          "./app",
	},
	LangJava: {
		version:        "17",
		port:           8080,
		packageManager: "maven",
		build:          "./mvnw package -DskipTests",
		test:           "./mvnw test",
		start:          "java -jar target/*.jar",
	},
}

// Resolve computes the derived fields for (language, framework). It is a
// pure function: identical inputs always yield identical outputs. An
// unknown language resolves like nodejs, mirroring the workflow
// generator's skeleton fallback.
func Resolve(language, framework string) Derived {
	d, ok := defaultsTable[language]
	if !ok {
		d = defaultsTable[LangNodeJS]
	}

	start := d.start
	if s, ok := d.frameworkStart[framework]; ok {
		start = s
	}

	return Derived{
		Version:        d.version,
		Port:           d.port,
		PackageManager: d.packageManager,
		Build:          d.build,
		Test:           d.test,
		Lint:           d.lint,
		Start:          start,
	}
}

// ApplyDefaults overwrites the model's derived fields from its current
// (language, framework). The overwrite is total and last-writer-wins: any
// command a caller set earlier is discarded, so external overrides that
// must survive have to be applied after the final ApplyDefaults call.
// Re-running with unchanged language and framework is idempotent.
func ApplyDefaults(req Requirements) Requirements {
	d := Resolve(req.Language, req.Framework)
	req.Version = d.Version
	req.Port = d.Port
	req.PackageManager = d.PackageManager
	req.BuildCommand = d.Build
	req.TestCommand = d.Test
	req.LintCommand = d.Lint
	req.StartCommand = d.Start
	return req
}
