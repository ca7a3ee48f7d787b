package requirements

import "testing"

func questionIDs(questions []Question) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

func TestMissingInfo(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Requirements)
		wantIDs []string
	}{
		{
			name:    "nodejs without framework",
			mutate:  func(r *Requirements) { r.Language = LangNodeJS; r.Framework = "" },
			wantIDs: []string{"framework"},
		},
		{
			name:    "python without framework",
			mutate:  func(r *Requirements) { r.Language = LangPython; r.Framework = "" },
			wantIDs: []string{"framework"},
		},
		{
			name:    "nodejs with framework",
			mutate:  func(r *Requirements) { r.Language = LangNodeJS; r.Framework = "express" },
			wantIDs: nil,
		},
		{
			name:    "go never asks framework",
			mutate:  func(r *Requirements) { r.Language = LangGo },
			wantIDs: nil,
		},
		{
			name:    "missing platform",
			mutate:  func(r *Requirements) { r.Language = LangGo; r.Platform = "" },
			wantIDs: []string{"platform"},
		},
		{
			name:    "both gaps",
			mutate:  func(r *Requirements) { r.Language = LangPython; r.Framework = ""; r.Platform = "" },
			wantIDs: []string{"framework", "platform"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := New()
			req.Framework = "express"
			tt.mutate(&req)

			got := questionIDs(MissingInfo(req))
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("question ids = %v, want %v", got, tt.wantIDs)
			}
			for i := range got {
				if got[i] != tt.wantIDs[i] {
					t.Errorf("question ids = %v, want %v", got, tt.wantIDs)
				}
			}
		})
	}
}

func TestMissingInfoOptions(t *testing.T) {
	req := New()
	req.Language = LangPython
	req.Framework = ""

	questions := MissingInfo(req)
	if len(questions) == 0 {
		t.Fatal("expected a framework question")
	}
	opts := questions[0].Options
	if len(opts) != 4 || opts[0] != "Django" {
		t.Errorf("options = %v, want Django first of four", opts)
	}
}
