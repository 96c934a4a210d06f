// Package classifier assigns a portfolio category and a technology list to a GitHub repository.
//
// Classification is a pure function of the repository's name, primary language and topics.
// Categories are decided by an ordered rule list where the first matching rule wins.
package classifier

import (
	"slices"
	"strings"

	"portfolio-site/internal/model"
)

// FallbackTech is used when a repository exposes neither a language nor a known topic.
const FallbackTech = "Code"

// Signals is the normalised view of a repository the rules look at.
type Signals struct {
	Name     string   // lowercased
	Language string   // lowercased, empty when unknown
	Topics   []string // lowercased
}

// NewSignals lowercases the parts of r that the rules match on.
func NewSignals(r model.Repository) Signals {
	topics := make([]string, len(r.Topics))
	for i, t := range r.Topics {
		topics[i] = strings.ToLower(t)
	}
	return Signals{
		Name:     strings.ToLower(r.Name),
		Language: strings.ToLower(r.Language),
		Topics:   topics,
	}
}

func (s Signals) nameContains(words ...string) bool {
	for _, w := range words {
		if strings.Contains(s.Name, w) {
			return true
		}
	}
	return false
}

func (s Signals) hasTopic(topics ...string) bool {
	for _, t := range topics {
		if slices.Contains(s.Topics, t) {
			return true
		}
	}
	return false
}

func (s Signals) languageIs(langs ...string) bool {
	return slices.Contains(langs, s.Language)
}

// Rule maps a predicate to a category.
type Rule struct {
	Category string
	Match    func(Signals) bool
}

// Rules are evaluated in order. Names are matched as substrings, so "pos" also hits "repository".
var Rules = []Rule{
	{
		Category: model.CategorySystems,
		Match: func(s Signals) bool {
			return s.nameContains("system", "management", "pos", "rental") ||
				s.hasTopic("management-system", "system")
		},
	},
	{
		Category: model.CategoryAI,
		Match: func(s Signals) bool {
			return s.hasTopic("ai", "machine-learning", "nlp") ||
				s.nameContains("ai", "ml") ||
				s.languageIs("python")
		},
	},
	{
		Category: model.CategoryFrontend,
		Match: func(s Signals) bool {
			return s.hasTopic("frontend") || s.nameContains("ui", "landing")
		},
	},
	{
		Category: model.CategoryBackend,
		Match: func(s Signals) bool {
			return s.hasTopic("backend", "api") || s.languageIs("php", "go")
		},
	},
}

// topicTech maps lowercased GitHub topics to technology display names.
var topicTech = map[string]string{
	"nextjs":      "Next.js",
	"next-js":     "Next.js",
	"react":       "React",
	"typescript":  "TypeScript",
	"javascript":  "JavaScript",
	"tailwindcss": "Tailwind CSS",
	"tailwind":    "Tailwind CSS",
	"prisma":      "Prisma",
	"postgresql":  "PostgreSQL",
	"mysql":       "MySQL",
	"php":         "PHP",
	"python":      "Python",
	"nodejs":      "Node.js",
	"node-js":     "Node.js",
	"fastapi":     "FastAPI",
	"django":      "Django",
	"laravel":     "Laravel",
	"bootstrap":   "Bootstrap",
}

// Category returns the category of the first rule matching r, or fullstack when none does.
func Category(r model.Repository) string {
	s := NewSignals(r)
	for _, rule := range Rules {
		if rule.Match(s) {
			return rule.Category
		}
	}
	return model.CategoryFullstack
}

// TechStack lists the repository language followed by the display names of its known topics,
// without duplicates and in first-seen order. It is never empty.
func TechStack(r model.Repository) []string {
	var stack []string
	if r.Language != "" {
		stack = append(stack, r.Language)
	}
	for _, topic := range r.Topics {
		name, ok := topicTech[strings.ToLower(topic)]
		if ok && !slices.Contains(stack, name) {
			stack = append(stack, name)
		}
	}
	if len(stack) == 0 {
		return []string{FallbackTech}
	}
	return stack
}

// Classification is the combined result for one repository.
type Classification struct {
	Category  string
	TechStack []string
}

// Classify returns both the category and the technology list for r.
func Classify(r model.Repository) Classification {
	return Classification{
		Category:  Category(r),
		TechStack: TechStack(r),
	}
}
