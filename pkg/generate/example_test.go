package generate_test

import (
	"fmt"

	"github.com/pipesmith/pipesmith/pkg/generate"
	"github.com/pipesmith/pipesmith/pkg/requirements"
)

func ExampleAll() {
	req := requirements.Extract("Node.js Express app deploying to Heroku with PostgreSQL")
	req = requirements.ApplyDefaults(req)

	files, err := generate.All(req)
	if err != nil {
		panic(err)
	}
	for _, path := range files.Paths() {
		fmt.Println(path)
	}
	// Output:
	// .env.example
	// .github/workflows/ci-cd.yml
	// PIPELINE_README.md
	// Procfile
	// app.json
}

func ExampleHeroku() {
	req := requirements.New()
	req.Name = "shop-api"
	req.Framework = "express"
	req = requirements.ApplyDefaults(req)

	files, err := generate.Heroku(req)
	if err != nil {
		panic(err)
	}
	fmt.Print(files[generate.ProcfilePath])
	// Output:
	// web: node server.js
}
