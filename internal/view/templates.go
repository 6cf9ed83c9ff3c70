package view

import (
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
)

// TemplateCache holds parsed templates keyed by file name.
type TemplateCache struct {
	mu    sync.RWMutex
	cache map[string]*template.Template
}

func NewTemplateCache() *TemplateCache {
	return &TemplateCache{cache: make(map[string]*template.Template)}
}

// Load parses every HTML file in dir.
func (tc *TemplateCache) Load(dir string) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	files, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return err
	}
	for _, file := range files {
		name := filepath.Base(file)
		tmpl, err := template.New(name).ParseFiles(file)
		if err != nil {
			return err
		}
		tc.cache[name] = tmpl
		slog.Debug("cached template", "name", name)
	}
	return nil
}

func (tc *TemplateCache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.cache[name]
}

// Render executes the named template, answering 500 when it is missing.
func (tc *TemplateCache) Render(w http.ResponseWriter, name string, data interface{}) {
	tmpl := tc.Get(name)
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	if err := tmpl.Execute(w, data); err != nil {
		slog.Error("render template", "name", name, "error", err)
	}
}
