package handlers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	_ "battery_dashboard/docs"
	"battery_dashboard/internal/service"

	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	Paths map[string]map[string]struct {
		Summary    string `json:"summary"`
		Parameters []struct {
			Name   string `json:"name"`
			In     string `json:"in"`
			Schema struct {
				Ref string `json:"$ref"`
			} `json:"schema"`
		} `json:"parameters"`
	} `json:"paths"`
	Definitions map[string]json.RawMessage `json:"definitions"`
}

func readSwagger(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}
	var doc swaggerDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("swagger doc is not valid JSON: %v", err)
	}
	return doc
}

var (
	summaryRe = regexp.MustCompile(`(?m)^// @Summary\s+(.+)$`)
	routerRe  = regexp.MustCompile(`(?m)^// @Router\s+(\S+)\s+\[(\w+)\]$`)
)

// Every annotated handler must appear in the registered document with the same summary.
func TestSwaggerDoc_MatchesAnnotations(t *testing.T) {
	doc := readSwagger(t)
	files, _ := filepath.Glob("*.go")
	seen := 0
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		src, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		// annotation blocks are separated by func declarations
		for _, block := range strings.Split(string(src), "\nfunc ") {
			s := summaryRe.FindStringSubmatch(block)
			r := routerRe.FindStringSubmatch(block)
			if s == nil || r == nil {
				continue
			}
			seen++
			op, ok := doc.Paths[r[1]][r[2]]
			if !ok {
				t.Errorf("%s: %s %s missing from swagger doc", f, r[2], r[1])
				continue
			}
			if op.Summary != strings.TrimSpace(s[1]) {
				t.Errorf("%s %s: summary %q; annotation says %q", r[2], r[1], op.Summary, s[1])
			}
		}
	}
	if seen == 0 {
		t.Fatal("no annotated handlers found")
	}
}

func TestSwaggerDoc_CoversRoutesAndBodies(t *testing.T) {
	doc := readSwagger(t)
	r := newTestRouter(&service.Service{})
	for _, rt := range r.Routes() {
		if strings.HasPrefix(rt.Path, "/swagger") {
			continue
		}
		path := regexp.MustCompile(`:(\w+)`).ReplaceAllString(rt.Path, "{$1}")
		if _, ok := doc.Paths[path][strings.ToLower(rt.Method)]; !ok {
			t.Errorf("route %s %s is not documented", rt.Method, path)
		}
	}

	bodies := map[string]string{
		"/api/v1/wizard/predict":       "#/definitions/handlers.ImpedanceRequest",
		"/api/v1/wizard/lifespan":      "#/definitions/handlers.UsageRequest",
		"/api/v1/wizard/fields/{name}": "#/definitions/service.FieldEdit",
		"/auth/sign-in":                "#/definitions/handlers.authCredentials",
	}
	for path, want := range bodies {
		var got string
		for _, op := range doc.Paths[path] {
			for _, p := range op.Parameters {
				if p.In == "body" {
					got = p.Schema.Ref
				}
			}
		}
		if got != want {
			t.Errorf("%s body schema=%q; want %q", path, got, want)
		}
		def := strings.TrimPrefix(want, "#/definitions/")
		if _, ok := doc.Definitions[def]; !ok {
			t.Errorf("definition %s missing", def)
		}
	}
}
