package requirements

import "testing"

func TestResolvePerLanguage(t *testing.T) {
	tests := []struct {
		language  string
		framework string
		version   string
		port      int
		pm        string
		start     string
	}{
		{LangNodeJS, "", "20", 3000, "npm", "npm start"},
		{LangNodeJS, "express", "20", 3000, "npm", "node server.js"},
		{LangNodeJS, "nestjs", "20", 3000, "npm", "node dist/main.js"},
		{LangPython, "", "3.11", 8000, "pip", "python app.py"},
		{LangPython, "fastapi", "3.11", 8000, "pip", "uvicorn main:app --host 0.0.0.0 --port $PORT"},
		{LangPython, "django", "3.11", 8000, "pip", "gunicorn myproject.wsgi:application"},
		{LangGo, "", "1.21", 8080, "go", "./app"},
		{LangJava, "", "17", 8080, "maven", "java -jar target/*.jar"},
		{"cobol", "", "20", 3000, "npm", "npm start"}, // unknown resolves like nodejs
	}

	for _, tt := range tests {
		d := Resolve(tt.language, tt.framework)
		if d.Version != tt.version || d.Port != tt.port || d.PackageManager != tt.pm || d.Start != tt.start {
			t.Errorf("Resolve(%q, %q) = %+v", tt.language, tt.framework, d)
		}
	}
}

func TestResolveFrameworkOnlyAffectsStart(t *testing.T) {
	plain := Resolve(LangPython, "")
	fw := Resolve(LangPython, "fastapi")

	if plain.Start == fw.Start {
		t.Error("framework should change the start command")
	}
	plain.Start, fw.Start = "", ""
	if plain != fw {
		t.Errorf("framework changed more than the start command: %+v vs %+v", plain, fw)
	}
}

func TestApplyDefaultsIdempotent(t *testing.T) {
	req := Extract("Python FastAPI on AWS")
	once := ApplyDefaults(req)
	twice := ApplyDefaults(once)

	if once.Version != twice.Version || once.Port != twice.Port ||
		once.PackageManager != twice.PackageManager ||
		once.BuildCommand != twice.BuildCommand ||
		once.TestCommand != twice.TestCommand ||
		once.LintCommand != twice.LintCommand ||
		once.StartCommand != twice.StartCommand {
		t.Errorf("ApplyDefaults not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestApplyDefaultsOverwritesStaleValues(t *testing.T) {
	req := ApplyDefaults(Extract("Node.js Express app"))
	if req.StartCommand != "node server.js" {
		t.Fatalf("StartCommand = %q, want node server.js", req.StartCommand)
	}

	// A language switch followed by a defaults pass must leave no nodejs
	// values behind.
	req.Language = LangPython
	req.Framework = ""
	req = ApplyDefaults(req)

	if req.Port != 8000 {
		t.Errorf("Port = %d, want 8000", req.Port)
	}
	if req.PackageManager != "pip" {
		t.Errorf("PackageManager = %q, want pip", req.PackageManager)
	}
	if req.StartCommand != "python app.py" {
		t.Errorf("StartCommand = %q, want python app.py", req.StartCommand)
	}
	if req.BuildCommand != "" {
		t.Errorf("BuildCommand = %q, want empty", req.BuildCommand)
	}
}

func TestApplyDefaultsLastWriterWins(t *testing.T) {
	req := ApplyDefaults(Extract("node app"))
	req.TestCommand = "npm run test:custom"

	// Re-running the defaults pass discards the custom command; callers
	// who need it to survive must set it after the final pass.
	req = ApplyDefaults(req)
	if req.TestCommand != "npm test" {
		t.Errorf("TestCommand = %q, want npm test", req.TestCommand)
	}
}
