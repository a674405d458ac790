// Package reply picks an automatic response for a classified email.
// The pool is chosen by subcategory markers in the raw text, the
// phrasing tier by classification confidence.
package reply

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/mailtriage/mailtriage/internal/classify"
)

// Selector draws templates from a seedable random source. Safe for
// concurrent use.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSelector() *Selector {
	return NewSelectorWithSeed(time.Now().UnixNano())
}

// NewSelectorWithSeed fixes the draw sequence, for tests and for
// reproducible runs.
func NewSelectorWithSeed(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a reply for the category. High confidence (>= 0.9)
// appends a direct closer, mid confidence (>= 0.8) returns a plain
// pool entry, anything lower falls back to a neutral template with a
// softer closer. A failure inside selection degrades to a bare
// neutral template.
func (s *Selector) Generate(category classify.Category, content string, confidence float64) (response string) {
	defer func() {
		if r := recover(); r != nil {
			response = s.pick(neutralTemplates)
		}
	}()

	if category == classify.CategoryProductive {
		return s.productive(content, confidence)
	}
	return s.unproductive(content, confidence)
}

func (s *Selector) productive(content string, confidence float64) string {
	pool := productiveTemplates[identify(content, productiveOrder, productiveMarkers)]

	switch {
	case confidence >= 0.9:
		return s.pick(pool) + closerProductiveHigh
	case confidence >= 0.8:
		return s.pick(pool)
	default:
		return s.pick(neutralTemplates) + closerProductiveLow
	}
}

func (s *Selector) unproductive(content string, confidence float64) string {
	pool := unproductiveTemplates[identify(content, unproductiveOrder, unproductiveMarkers)]

	switch {
	case confidence >= 0.9:
		return s.pick(pool) + closerUnproductiveHigh
	case confidence >= 0.8:
		return s.pick(pool)
	default:
		return s.pick(neutralTemplates) + closerUnproductiveLow
	}
}

// GenerateCustom short-circuits on recognized context before any pool
// is consulted. Unrecognized context delegates to the standard path
// at mid confidence.
func (s *Selector) GenerateCustom(category classify.Category, context map[string]string) (response string) {
	defer func() {
		if r := recover(); r != nil {
			response = s.pick(neutralTemplates)
		}
	}()

	if context["urgency"] == "high" {
		if category == classify.CategoryProductive {
			return customUrgentProductive
		}
		return customUrgentUnproductive
	}

	if context["formality"] == "high" {
		if category == classify.CategoryProductive {
			return customFormalProductive
		}
		return customFormalUnproductive
	}

	return s.Generate(category, "", 0.8)
}

// identify returns the subcategory whose markers appear most often in
// the raw lowercased content. Ties, including the all-zero case, go
// to the earliest subcategory in declaration order.
func identify(content string, order []string, markers map[string][]string) string {
	lower := strings.ToLower(content)

	best := order[0]
	bestScore := -1
	for _, sub := range order {
		score := 0
		for _, marker := range markers[sub] {
			if strings.Contains(lower, marker) {
				score++
			}
		}
		if score > bestScore {
			best = sub
			bestScore = score
		}
	}
	return best
}

func (s *Selector) pick(pool []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pool[s.rng.Intn(len(pool))]
}

// Templates reports the available pools for the templates endpoint.
// An empty category returns the full inventory.
func Templates(category string) map[string]any {
	switch category {
	case "":
		return map[string]any{
			"productive": map[string]any{
				"templates": productiveTemplates,
				"count":     countAll(productiveTemplates),
			},
			"unproductive": map[string]any{
				"templates": unproductiveTemplates,
				"count":     countAll(unproductiveTemplates),
			},
			"neutral": map[string]any{
				"templates": neutralTemplates,
				"count":     len(neutralTemplates),
			},
		}
	case string(classify.CategoryProductive):
		return map[string]any{
			"templates": productiveTemplates,
			"count":     countAll(productiveTemplates),
		}
	case string(classify.CategoryUnproductive):
		return map[string]any{
			"templates": unproductiveTemplates,
			"count":     countAll(unproductiveTemplates),
		}
	default:
		return map[string]any{"error": "Categoria inválida"}
	}
}

func countAll(pools map[string][]string) int {
	total := 0
	for _, pool := range pools {
		total += len(pool)
	}
	return total
}
