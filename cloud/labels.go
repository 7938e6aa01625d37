// =======================
// cloud/labels.go
// =======================

package cloud

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// Label is one technology shown in the cloud. Labels are index-aligned with
// the point field.
type Label struct {
	Name     string   `json:"name" yaml:"name"`
	Glyph    string   `json:"glyph,omitempty" yaml:"glyph,omitempty"`
	Color    string   `json:"color,omitempty" yaml:"color,omitempty"`
	Category Category `json:"category,omitempty" yaml:"category,omitempty"`
}

// Badge returns the glyph, or the first two letters of the name.
func (l Label) Badge() string {
	if l.Glyph != "" {
		return l.Glyph
	}
	var b strings.Builder
	for _, r := range l.Name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			if utf8.RuneCountInString(b.String()) == 2 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// Category groups technologies for default coloring.
type Category string

const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryDatabase Category = "database"
	CategoryCloud    Category = "cloud"
	CategoryTools    Category = "tools"
	CategoryDesign   Category = "design"
)

var categoryColors = map[Category]string{
	CategoryFrontend: "#3B82F6",
	CategoryBackend:  "#22C55E",
	CategoryDatabase: "#A855F7",
	CategoryCloud:    "#06B6D4",
	CategoryTools:    "#F97316",
	CategoryDesign:   "#EC4899",
}

var techCategories = map[string]Category{
	"react": CategoryFrontend, "nextjs": CategoryFrontend, "next.js": CategoryFrontend, "vue": CategoryFrontend,
	"angular": CategoryFrontend, "svelte": CategoryFrontend, "typescript": CategoryFrontend,
	"javascript": CategoryFrontend, "tailwind": CategoryFrontend, "tailwind css": CategoryFrontend,
	"css": CategoryFrontend, "css3": CategoryFrontend, "html": CategoryFrontend, "html5": CategoryFrontend,
	"sass": CategoryFrontend, "framer motion": CategoryFrontend, "flutter": CategoryFrontend,

	"nodejs": CategoryBackend, "node.js": CategoryBackend, "express": CategoryBackend, "fastapi": CategoryBackend,
	"django": CategoryBackend, "flask": CategoryBackend, "nestjs": CategoryBackend, "python": CategoryBackend,
	"java": CategoryBackend, "spring boot": CategoryBackend, "go": CategoryBackend, "rust": CategoryBackend,
	"graphql": CategoryBackend,

	"postgresql": CategoryDatabase, "postgres": CategoryDatabase, "mysql": CategoryDatabase,
	"mongodb": CategoryDatabase, "redis": CategoryDatabase, "sqlite": CategoryDatabase,
	"prisma": CategoryDatabase, "supabase": CategoryDatabase, "firebase": CategoryDatabase,

	"aws": CategoryCloud, "azure": CategoryCloud, "gcp": CategoryCloud, "google cloud": CategoryCloud,
	"vercel": CategoryCloud, "netlify": CategoryCloud, "heroku": CategoryCloud, "docker": CategoryCloud,
	"kubernetes": CategoryCloud,

	"git": CategoryTools, "github": CategoryTools, "github actions": CategoryTools, "gitlab": CategoryTools,
	"webpack": CategoryTools, "vite": CategoryTools, "jest": CategoryTools, "vitest": CategoryTools,
	"cypress": CategoryTools, "playwright": CategoryTools,

	"figma": CategoryDesign, "sketch": CategoryDesign, "adobe xd": CategoryDesign, "framer": CategoryDesign,
}

// CategoryOf looks a technology up by name, case-insensitively. Unknown
// names report CategoryTools and false.
func CategoryOf(name string) (Category, bool) {
	c, ok := techCategories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CategoryTools, false
	}
	return c, true
}

// CategoryColor returns the default hex color of a category.
func CategoryColor(c Category) (string, bool) {
	hex, ok := categoryColors[c]
	return hex, ok
}

// DefaultLabels returns the technologies of the portfolio cloud in display
// order.
func DefaultLabels() []Label {
	return []Label{
		{Name: "React", Glyph: "Re", Color: "#61DAFB"},
		{Name: "Next.js", Glyph: "Nx", Color: "#ffffff"},
		{Name: "TypeScript", Glyph: "TS", Color: "#3178C6"},
		{Name: "JavaScript", Glyph: "JS", Color: "#F7DF1E"},
		{Name: "Tailwind CSS", Glyph: "Tw", Color: "#06B6D4"},
		{Name: "Node.js", Glyph: "No", Color: "#339933"},
		{Name: "Express", Glyph: "Ex", Color: "#ffffff"},
		{Name: "GraphQL", Glyph: "GQ", Color: "#E10098"},
		{Name: "PostgreSQL", Glyph: "PG", Color: "#4169E1"},
		{Name: "MongoDB", Glyph: "Mo", Color: "#47A248"},
		{Name: "Firebase", Glyph: "Fb", Color: "#FFCA28"},
		{Name: "Supabase", Glyph: "Sb", Color: "#3FCF8E"},
		{Name: "Docker", Glyph: "Dk", Color: "#2496ED"},
		{Name: "Vercel", Glyph: "▲", Color: "#ffffff"},
		{Name: "Git", Glyph: "Gt", Color: "#F05032"},
		{Name: "GitHub Actions", Glyph: "GA", Color: "#2088FF"},
		{Name: "Figma", Glyph: "Fg", Color: "#F24E1E"},
		{Name: "Flutter", Glyph: "Fl", Color: "#02569B"},
		{Name: "Go", Glyph: "Go", Color: "#00ADD8"},
		{Name: "AWS", Glyph: "AW", Color: "#FF9900"},
		{Name: "HTML5", Glyph: "H5", Color: "#E34F26"},
		{Name: "CSS3", Glyph: "C3", Color: "#1572B6"},
		{Name: "Framer Motion", Glyph: "FM", Color: "#0055FF"},
		{Name: "Prisma", Glyph: "Pr", Color: "#2D3748"},
	}
}

// ValidateLabels checks a label set before it reaches the engine.
func ValidateLabels(labels []Label) error {
	if len(labels) == 0 {
		return fmt.Errorf("%w: no labels", ErrInvalidCount)
	}
	seen := make(map[string]int, len(labels))
	for i, l := range labels {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			return fmt.Errorf("%w: label %d has no name", ErrInvalidLabel, i)
		}
		key := strings.ToLower(name)
		if j, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q at %d duplicates label %d", ErrInvalidLabel, name, i, j)
		}
		seen[key] = i
		if l.Color != "" {
			if _, err := colorful.Hex(l.Color); err != nil {
				return fmt.Errorf("%w: %q color %q: %v", ErrInvalidLabel, name, l.Color, err)
			}
		}
		if l.Category != "" {
			if _, ok := categoryColors[l.Category]; !ok {
				return fmt.Errorf("%w: %q category %q", ErrInvalidLabel, name, l.Category)
			}
		}
	}
	return nil
}
