package requirements

import "regexp"

// pattern is one match rule inside a category table. RE2 has no negative
// lookahead, so rules that must not fire in a specific context carry an
// explicit unless expression ("go" must not match "go to").
type pattern struct {
	re     *regexp.Regexp
	unless *regexp.Regexp
}

// matches reports whether text satisfies the pattern. The unless
// expression wins over the main expression.
func (p pattern) matches(text string) bool {
	if !p.re.MatchString(text) {
		return false
	}
	if p.unless != nil {
		// Reject only if every occurrence sits in the excluded context.
		stripped := p.unless.ReplaceAllString(text, "")
		return p.re.MatchString(stripped)
	}
	return true
}

// entry associates a category label with its ordered match patterns.
type entry struct {
	label    string
	patterns []pattern
}

func p(expr string) pattern {
	return pattern{re: regexp.MustCompile(expr)}
}

func pu(expr, unless string) pattern {
	return pattern{re: regexp.MustCompile(expr), unless: regexp.MustCompile(unless)}
}

// The category tables below are data, not behavior. Order matters twice
// over: single-value categories stop at the first matching label, and
// multi-value categories report matches in table order regardless of
// where they appear in the input.

var languageTable = []entry{
	{LangNodeJS, []pattern{
		p(`\bnode\.?js\b`), p(`\bnode\b`), p(`\bjavascript\b`), p(`\bjs\b`),
		p(`\btypescript\b`), p(`\bts\b`), p(`\bnpm\b`), p(`\byarn\b`),
		p(`\bexpress\b`), p(`\bnext\.?js\b`), p(`\bnest\.?js\b`), p(`\breact\b`),
	}},
	{LangPython, []pattern{
		p(`\bpython\b`), p(`\bpy\b`), p(`\bdjango\b`), p(`\bflask\b`),
		p(`\bfastapi\b`), p(`\bpip\b`), p(`\bpoetry\b`), p(`\bpytest\b`),
	}},
	{LangGo, []pattern{
		p(`\bgolang\b`), pu(`\bgo\b`, `\bgo\s+to\b`), p(`\bgin\b`), p(`\becho\b`),
	}},
	{LangJava, []pattern{
		p(`\bjava\b`), p(`\bspring\b`), p(`\bmaven\b`), p(`\bgradle\b`),
		p(`\bspring\s*boot\b`),
	}},
}

var frameworkTable = []entry{
	{"express", []pattern{p(`\bexpress\b`), p(`\bexpress\.?js\b`)}},
	{"nextjs", []pattern{p(`\bnext\.?js\b`), p(`\bnext\b`)}},
	{"nestjs", []pattern{p(`\bnest\.?js\b`), p(`\bnest\b`)}},
	{"react", []pattern{p(`\breact\b`), p(`\bcreate.react.app\b`)}},
	{"django", []pattern{p(`\bdjango\b`)}},
	{"flask", []pattern{p(`\bflask\b`)}},
	{"fastapi", []pattern{p(`\bfastapi\b`), p(`\bfast\s*api\b`)}},
	{"gin", []pattern{p(`\bgin\b`)}},
	{"spring", []pattern{p(`\bspring\b`), p(`\bspring\s*boot\b`)}},
}

var platformTable = []entry{
	{PlatformHeroku, []pattern{p(`\bheroku\b`)}},
	{PlatformAWS, []pattern{p(`\baws\b`), p(`\bamazon\b`), p(`\bec2\b`), p(`\becs\b`), p(`\blambda\b`), p(`\bs3\b`)}},
	{PlatformGCP, []pattern{p(`\bgcp\b`), p(`\bgoogle\s*cloud\b`), p(`\bcloud\s*run\b`), p(`\bgke\b`)}},
	{PlatformAzure, []pattern{p(`\bazure\b`), p(`\bmicrosoft\b`), p(`\baks\b`)}},
}

var databaseTable = []entry{
	{"postgresql", []pattern{p(`\bpostgres\b`), p(`\bpostgresql\b`), p(`\bpg\b`)}},
	{"mysql", []pattern{p(`\bmysql\b`), p(`\bmariadb\b`)}},
	{"mongodb", []pattern{p(`\bmongo\b`), p(`\bmongodb\b`)}},
	{"redis", []pattern{p(`\bredis\b`)}},
	{"sqlite", []pattern{p(`\bsqlite\b`)}},
	{"elasticsearch", []pattern{p(`\belastic\b`), p(`\belasticsearch\b`)}},
}

// serviceRouted marks database-table labels that are recorded as auxiliary
// services rather than databases.
var serviceRouted = map[string]bool{
	"redis":         true,
	"elasticsearch": true,
}

var environmentTable = []entry{
	{"staging", []pattern{p(`\bstaging\b`), p(`\bstage\b`)}},
	{"production", []pattern{p(`\bprod\b`), p(`\bproduction\b`)}},
	{"preview", []pattern{p(`\bpreview\b`), p(`\bpr\s*deploy\b`)}},
	{"development", []pattern{p(`\bdev\b`), p(`\bdevelopment\b`)}},
}

var testTable = []entry{
	{"unit", []pattern{p(`\bunit\s*test`), p(`\bunit\b`)}},
	{"integration", []pattern{p(`\bintegration\s*test`), p(`\bintegration\b`)}},
	{"e2e", []pattern{p(`\be2e\b`), p(`\bend.to.end\b`), p(`\bend\s*to\s*end\b`), p(`\bcypress\b`), p(`\bplaywright\b`)}},
}

var (
	genericTestRe = regexp.MustCompile(`\btest`)
	dockerRe      = regexp.MustCompile(`\bdocker\b|\bcontainer\b`)
	previewRe     = regexp.MustCompile(`\bpreview\b|\bpr\s*deploy`)
)

// nameCaptures are tried in order against the original-case text. The
// first capture that survives the stop-word filter names the project.
var nameCaptures = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:called|named)\s+["']?(\w+(?:-\w+)*)["']?`),
	regexp.MustCompile(`(?i)project\s+["']?(\w+(?:-\w+)*)["']?`),
}

// nameStopWords are tokens that must never be taken as a project name.
var nameStopWords = map[string]bool{
	"i": true, "a": true, "an": true, "the": true, "my": true, "our": true,
	"this": true, "that": true,
	"to": true, "want": true, "need": true, "have": true, "will": true,
	"would": true, "should": true,
	"node": true, "nodejs": true, "python": true, "express": true,
	"django": true, "flask": true, "fastapi": true,
	"heroku": true, "aws": true, "gcp": true, "azure": true, "docker": true,
	"unit": true, "test": true, "tests": true, "staging": true,
	"production": true, "deploy": true, "deployment": true,
	"with": true, "and": true, "or": true, "for": true, "using": true, "on": true,
}

// matchFirst scans table in declared order and returns the first label
// with any matching pattern. The boolean is false when nothing matched.
func matchFirst(table []entry, text string) (string, bool) {
	for _, e := range table {
		for _, pat := range e.patterns {
			if pat.matches(text) {
				return e.label, true
			}
		}
	}
	return "", false
}

// matchAll scans the whole table and returns every label with a matching
// pattern, in table-declared order.
func matchAll(table []entry, text string) []string {
	var labels []string
	for _, e := range table {
		for _, pat := range e.patterns {
			if pat.matches(text) {
				labels = append(labels, e.label)
				break
			}
		}
	}
	return labels
}
