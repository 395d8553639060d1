package data

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"maze3d/geometry"
)

// MaterialTemplate describes a surface in a material file
type MaterialTemplate struct {
	ID          string `json:"id" yaml:"id"`                                       // Unique identifier, referenced by render parameters
	Color       string `json:"color" yaml:"color"`                                 // Color in hex format (e.g. "#2121DE")
	Texture     string `json:"texture,omitempty" yaml:"texture,omitempty"`         // Optional image path, relative to the template file
	Description string `json:"description,omitempty" yaml:"description,omitempty"` // Description text
}

// MaterialTemplateManager manages all material templates
type MaterialTemplateManager struct {
	Templates map[string]*MaterialTemplate
}

// NewMaterialTemplateManager creates a manager preloaded with the built-in materials
func NewMaterialTemplateManager() *MaterialTemplateManager {
	m := &MaterialTemplateManager{
		Templates: make(map[string]*MaterialTemplate),
	}
	for _, t := range DefaultMaterialTemplates() {
		t := t
		m.Templates[t.ID] = &t
	}
	return m
}

// DefaultMaterialTemplates returns the arcade palette
func DefaultMaterialTemplates() []MaterialTemplate {
	return []MaterialTemplate{
		{ID: "wall_base", Color: "#2121DE", Description: "Maze wall body"},
		{ID: "wall_top", Color: "#6A6AFF", Description: "Flat cap on top of walls"},
		{ID: "door", Color: "#FFB8DE", Description: "Ghost house door wing"},
		{ID: "floor", Color: "#0A0A14", Description: "Maze floor"},
		{ID: "house_lit", Color: "#FFE08A", Description: "Ghost house light while occupied"},
	}
}

// LoadTemplatesFromDirectory loads all JSON and YAML material files from a directory
func (m *MaterialTemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read material directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(file.Name())) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadTemplateFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load material from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadTemplateFromFile loads a single material template from a JSON or YAML file
func (m *MaterialTemplateManager) LoadTemplateFromFile(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var template MaterialTemplate
	if strings.ToLower(filepath.Ext(filePath)) == ".json" {
		err = json.Unmarshal(raw, &template)
	} else {
		err = yaml.Unmarshal(raw, &template)
	}
	if err != nil {
		return err
	}

	if err := ValidateMaterialTemplate(&template); err != nil {
		return fmt.Errorf("invalid material template in %s: %w", filePath, err)
	}

	if template.Texture != "" && !filepath.IsAbs(template.Texture) {
		template.Texture = filepath.Join(filepath.Dir(filePath), template.Texture)
	}

	m.Templates[template.ID] = &template
	return nil
}

// ValidateMaterialTemplate ensures that the template has all required fields
func ValidateMaterialTemplate(template *MaterialTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("material template missing id")
	}
	if template.Color == "" {
		return fmt.Errorf("material template '%s' missing color", template.ID)
	}
	return nil
}

// GetTemplate returns a template by ID
func (m *MaterialTemplateManager) GetTemplate(id string) (*MaterialTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// IDs lists template IDs in alphabetical order
func (m *MaterialTemplateManager) IDs() []string {
	ids := make([]string, 0, len(m.Templates))
	for id := range m.Templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Material converts the template for the geometry layer
func (t *MaterialTemplate) Material() geometry.Material {
	return geometry.Material{
		Name:    t.ID,
		Color:   ParseHexColor(t.Color),
		Texture: t.Texture,
	}
}

// Populate defines every template in lib
func (m *MaterialTemplateManager) Populate(lib *geometry.MaterialLibrary) {
	for _, id := range m.IDs() {
		lib.Define(m.Templates[id].Material())
	}
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}
