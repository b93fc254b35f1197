// Package readiness checks that a checkout has what a deployment needs:
// environment files, build scripts, ignore rules and project images.
// Every problem is reported as a Result; nothing here panics or returns early
// on I/O errors.
package readiness

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Level is the severity of a check result.
type Level int

const (
	Pass Level = iota
	Warn
	Fail
)

func (l Level) String() string {
	switch l {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	default:
		return "fail"
	}
}

// Result is the outcome of one check.
type Result struct {
	Check  string
	Level  Level
	Detail string
}

// Report is the ordered list of results.
type Report struct {
	Results []Result
}

// Failed reports whether any check is a hard error.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if res.Level == Fail {
			return true
		}
	}
	return false
}

// Count returns the number of results at level l.
func (r Report) Count(l Level) int {
	n := 0
	for _, res := range r.Results {
		if res.Level == l {
			n++
		}
	}
	return n
}

func (r *Report) add(check string, level Level, format string, args ...any) {
	r.Results = append(r.Results, Result{Check: check, Level: level, Detail: fmt.Sprintf(format, args...)})
}

// Checklist configures what Run looks for under Root.
type Checklist struct {
	Root            string
	RequiredEnv     []string
	RequiredScripts []string
	ImagesDir       string
}

// DefaultRequiredEnv are the variables production cannot start without.
var DefaultRequiredEnv = []string{"SITE_URL", "CONTACT_EMAIL", "ADMIN_TOKEN"}

// DefaultRequiredScripts are the package.json scripts the host invokes.
var DefaultRequiredScripts = []string{"build", "start"}

// New returns the default checklist for root.
func New(root string) Checklist {
	return Checklist{
		Root:            root,
		RequiredEnv:     DefaultRequiredEnv,
		RequiredScripts: DefaultRequiredScripts,
		ImagesDir:       filepath.Join("public", "images", "projects"),
	}
}

func (c Checklist) path(name string) string {
	return filepath.Join(c.Root, name)
}

// Run performs every check.
func (c Checklist) Run() Report {
	var r Report
	c.checkEnvLocal(&r)
	c.checkEnvExample(&r)
	c.checkPackageJSON(&r)
	c.checkVercel(&r)
	c.checkGitignore(&r)
	c.checkImages(&r)
	return r
}

func (c Checklist) checkEnvLocal(r *Report) {
	const check = ".env.local"
	raw, err := os.ReadFile(c.path(".env.local"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.add(check, Fail, "missing; copy .env.example and fill in the values")
		return
	case err != nil:
		r.add(check, Fail, "unreadable: %v", err)
		return
	}
	env, err := godotenv.Unmarshal(string(raw))
	if err != nil {
		r.add(check, Fail, "cannot be parsed: %v", err)
		env = scanEnv(string(raw))
	} else {
		r.add(check, Pass, "found")
	}
	for _, name := range c.RequiredEnv {
		v, ok := env[name]
		switch {
		case !ok:
			r.add("env "+name, Fail, "not set in .env.local")
		case strings.TrimSpace(v) == "":
			r.add("env "+name, Warn, "set but empty in .env.local")
		default:
			r.add("env "+name, Pass, "set")
		}
	}
}

// scanEnv reads NAME=value lines one at a time, skipping lines it cannot
// make sense of, so a file godotenv rejects still reports its variables.
func scanEnv(content string) map[string]string {
	env := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		name, value, ok := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" || strings.ContainsAny(name, " \t") {
			continue
		}
		env[name] = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return env
}

func (c Checklist) checkEnvExample(r *Report) {
	const check = ".env.example"
	env, err := godotenv.Read(c.path(".env.example"))
	if err != nil {
		r.add(check, Warn, "missing or unreadable; new contributors will not know which variables to set")
		return
	}
	var missing []string
	for _, name := range c.RequiredEnv {
		if _, ok := env[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		r.add(check, Warn, "does not document %s", strings.Join(missing, ", "))
		return
	}
	r.add(check, Pass, "documents all required variables")
}

func (c Checklist) checkPackageJSON(r *Report) {
	const check = "package.json"
	raw, err := os.ReadFile(c.path("package.json"))
	if err != nil {
		r.add(check, Fail, "missing or unreadable: %v", err)
		return
	}
	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(raw, &pkg); err != nil {
		r.add(check, Fail, "invalid JSON: %v", err)
		return
	}
	r.add(check, Pass, "found")
	for _, name := range c.RequiredScripts {
		if strings.TrimSpace(pkg.Scripts[name]) == "" {
			r.add("script "+name, Fail, "missing from package.json scripts")
			continue
		}
		r.add("script "+name, Pass, "%s", pkg.Scripts[name])
	}
}

func (c Checklist) checkVercel(r *Report) {
	const check = "vercel.json"
	raw, err := os.ReadFile(c.path("vercel.json"))
	if err != nil {
		r.add(check, Warn, "missing; platform defaults will be used")
		return
	}
	if !json.Valid(raw) {
		r.add(check, Warn, "not valid JSON; the platform will reject it")
		return
	}
	r.add(check, Pass, "found")
}

func (c Checklist) checkGitignore(r *Report) {
	const check = ".gitignore"
	raw, err := os.ReadFile(c.path(".gitignore"))
	if err != nil {
		r.add(check, Fail, "missing; secrets in .env.local could be committed")
		return
	}
	line, ignored := ignoresEnvLocal(string(raw))
	switch {
	case ignored:
		r.add(check, Pass, "ignores .env.local (%s)", line)
	case line != "":
		r.add(check, Fail, "%s re-includes .env.local; secrets could be committed", line)
	default:
		r.add(check, Fail, "does not ignore .env.local; add \".env*.local\"")
	}
}

// ignoresEnvLocal applies the ignore rules to a root-level .env.local. The
// last matching line wins, so a later "!" pattern re-includes the file. It
// returns that line, or "" when nothing matches.
func ignoresEnvLocal(content string) (string, bool) {
	var matched string
	var ignored bool
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.Index(line, "#"); i > 0 && (line[i-1] == ' ' || line[i-1] == '\t') {
			line = strings.TrimSpace(line[:i])
		}
		pattern, negated := strings.CutPrefix(line, "!")
		if strings.HasSuffix(pattern, "/") {
			continue
		}
		pattern = strings.TrimPrefix(pattern, "**/")
		pattern = strings.TrimPrefix(pattern, "/")
		if strings.Contains(pattern, "/") {
			continue
		}
		if ok, err := path.Match(pattern, ".env.local"); err != nil || !ok {
			continue
		}
		matched, ignored = line, !negated
	}
	return matched, ignored
}

func (c Checklist) checkImages(r *Report) {
	check := "images " + filepath.ToSlash(c.ImagesDir)
	entries, err := os.ReadDir(c.path(c.ImagesDir))
	if err != nil {
		r.add(check, Warn, "directory missing; project cards will show placeholders")
		return
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			n++
		}
	}
	if n == 0 {
		r.add(check, Warn, "directory is empty; project cards will show placeholders")
		return
	}
	r.add(check, Pass, "%d image(s)", n)
}
