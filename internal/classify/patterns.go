package classify

import (
	"regexp"
	"strings"
)

// Structural signals read from the raw text, before normalization.
// Each contributes a fixed bonus or penalty when present.
var (
	linkRe       = regexp.MustCompile(`https?://[a-zA-Z0-9$\-_@.&+!*(),%]+`)
	attachmentRe = regexp.MustCompile(`(?i)anexo|attachment|enclosed|attached`)
	forwardedRe  = regexp.MustCompile(`(?i)fwd:|re:|reencaminhar|encaminhar`)
)

var (
	urgentWords   = []string{"urgente", "imediato", "agora", "hoje", "crítico", "emergência"}
	formalWords   = []string{"prezado", "caro", "senhor", "senhora", "atenciosamente", "cordiais saudações"}
	businessTerms = []string{"empresa", "corporação", "sociedade", "ltda", "s/a", "cnpj", "cpf"}
)

// analyzePatterns returns all six signals keyed by name. Absent
// signals are reported as 0 so the breakdown always has the same
// shape.
func analyzePatterns(text string) map[string]float64 {
	patterns := map[string]float64{
		"has_links":          0.0,
		"has_attachments":    0.0,
		"is_forwarded":       0.0,
		"has_urgent_words":   0.0,
		"is_formal":          0.0,
		"has_business_terms": 0.0,
	}

	if linkRe.MatchString(text) {
		patterns["has_links"] = -0.3
	}
	if attachmentRe.MatchString(text) {
		patterns["has_attachments"] = 0.2
	}
	if forwardedRe.MatchString(text) {
		patterns["is_forwarded"] = -0.4
	}

	lower := strings.ToLower(text)
	if containsAny(lower, urgentWords) {
		patterns["has_urgent_words"] = 0.1
	}
	if containsAny(lower, formalWords) {
		patterns["is_formal"] = 0.3
	}
	if containsAny(lower, businessTerms) {
		patterns["has_business_terms"] = 0.4
	}

	return patterns
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
