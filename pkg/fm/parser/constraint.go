package parser

import (
	"regexp"

	"mercator-hq/callisto/pkg/fm/ast"
)

// statementPattern maps one recognized English phrasing to a constraint kind.
// Capture group order is (source, target) unless swapped is set, in which
// case the statement names the prerequisite first ("X is required for Y"
// means Y requires X).
type statementPattern struct {
	re      *regexp.Regexp
	kind    ast.ConstraintKind
	swapped bool
}

// statementPatterns is the explicit grammar for cross-tree constraint
// statements. Patterns are tried in order; the first match wins.
var statementPatterns = []statementPattern{
	{
		re:   regexp.MustCompile(`(?i)^(\w+)\s+requires\s+(\w+)\.?$`),
		kind: ast.ConstraintRequires,
	},
	{
		re:   regexp.MustCompile(`(?i)^(\w+)\s+(?:depends\s+on|needs)\s+(\w+)\.?$`),
		kind: ast.ConstraintRequires,
	},
	{
		re:      regexp.MustCompile(`(?i)^(?:the\s+)?(\w+)(?:\s+feature)?\s+is\s+required\s+(?:to\s+filter\s+\w+\s+)?(?:for|by)\s+(?:the\s+)?(\w+)(?:\s+feature)?\.?$`),
		kind:    ast.ConstraintRequires,
		swapped: true,
	},
	{
		re:   regexp.MustCompile(`(?i)^(\w+)\s+excludes\s+(\w+)\.?$`),
		kind: ast.ConstraintExcludes,
	},
	{
		re:   regexp.MustCompile(`(?i)^(\w+)\s+cannot\s+be\s+(?:combined|selected|used)\s+with\s+(\w+)\.?$`),
		kind: ast.ConstraintExcludes,
	},
}

// ParseStatement classifies a cross-tree constraint statement.
//
// It returns the constraint kind, the dependent feature (source), and the
// required or excluded feature (target). ok is false when no pattern matches;
// such statements become Unsupported constraints.
func ParseStatement(stmt string) (kind ast.ConstraintKind, source, target string, ok bool) {
	for _, p := range statementPatterns {
		m := p.re.FindStringSubmatch(stmt)
		if m == nil {
			continue
		}
		if p.swapped {
			return p.kind, m[2], m[1], true
		}
		return p.kind, m[1], m[2], true
	}
	return ast.ConstraintUnsupported, "", "", false
}
