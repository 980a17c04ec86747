package router

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Router maps a logical provider name to a concrete model identifier. The
// built-in table can be extended or overridden from a YAML file; resolution
// itself never fails, unknown providers get the fallback model.
type Router struct {
	routes   map[string]string
	fallback string
}

// New returns a router with the built-in provider table.
func New() *Router {
	return &Router{
		routes: map[string]string{
			"local":     "ollama/llama2",
			"openai":    "gpt-4-turbo",
			"anthropic": "claude-3-sonnet",
			"groq":      "mixtral-8x7b",
		},
		fallback: "ollama/mistral",
	}
}

// routesFile mirrors the optional override file:
//
//	routes:
//	  local: ollama/llama3
//	fallback: ollama/mistral
type routesFile struct {
	Routes   map[string]string `yaml:"routes"`
	Fallback string            `yaml:"fallback"`
}

// LoadRoutes merges provider overrides from a YAML file into the table.
func (r *Router) LoadRoutes(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read routes config: %w", err)
	}
	var file routesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse routes config: %w", err)
	}
	for provider, model := range file.Routes {
		r.routes[provider] = model
	}
	if file.Fallback != "" {
		r.fallback = file.Fallback
	}
	return nil
}

// Resolve returns the model identifier for a provider.
func (r *Router) Resolve(provider string) string {
	if model, ok := r.routes[provider]; ok {
		return model
	}
	return r.fallback
}

// VisionModel steers a resolved model id to its vision-capable variant by
// substituting "llama" with "llava". Ids without the substring pass through
// unchanged.
func VisionModel(model string) string {
	return strings.ReplaceAll(model, "llama", "llava")
}
