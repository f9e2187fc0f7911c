package parser

import (
	"fmt"
	"strings"

	"mercator-hq/callisto/pkg/fm/ast"
	fmErrors "mercator-hq/callisto/pkg/fm/errors"
)

// builder transforms the intermediate XML structures into the typed feature
// tree, accumulating structural errors as it goes.
type builder struct {
	sourceFile string
	index      map[string]*ast.Feature
	errors     *fmErrors.ErrorList
}

func newBuilder(sourceFile string) *builder {
	return &builder{
		sourceFile: sourceFile,
		index:      make(map[string]*ast.Feature),
		errors:     fmErrors.NewErrorList(),
	}
}

func (b *builder) location() fmErrors.Location {
	return fmErrors.Location{File: b.sourceFile}
}

// buildModel constructs the complete model from the decoded document.
// It returns an error list if any structural rule is violated; no partial
// model is returned.
func (b *builder) buildModel(doc *xmlModel) (*ast.Model, error) {
	if len(doc.Features) == 0 {
		b.errors.AddErrorWithSuggestion(
			fmErrors.ErrorTypeStructural,
			"model has no root feature",
			b.location(),
			"declare exactly one top-level <feature> element",
		)
		return nil, b.errors.ToError()
	}
	if len(doc.Features) > 1 {
		b.errors.AddErrorWithSuggestion(
			fmErrors.ErrorTypeStructural,
			fmt.Sprintf("model has %d top-level features, want exactly one root", len(doc.Features)),
			b.location(),
			"nest additional features under the root",
		)
		return nil, b.errors.ToError()
	}

	root := b.buildFeature(&doc.Features[0], "")

	model := &ast.Model{
		Name:       doc.Name,
		Root:       root,
		Index:      b.index,
		SourceFile: b.sourceFile,
	}

	for _, raw := range doc.Constraints {
		model.Constraints = append(model.Constraints, b.buildConstraint(raw))
	}

	if b.errors.HasErrors() {
		return nil, b.errors.ToError()
	}
	return model, nil
}

// buildFeature recursively constructs a feature and its subtree.
func (b *builder) buildFeature(raw *xmlFeature, parent string) *ast.Feature {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		b.errors.AddErrorWithSuggestion(
			fmErrors.ErrorTypeStructural,
			"feature is missing the name attribute",
			b.location(),
			`every <feature> element needs name="..."`,
		)
		return nil
	}

	f := &ast.Feature{
		Name:      name,
		Mandatory: raw.isMandatory(),
		Parent:    parent,
	}

	if _, dup := b.index[name]; dup {
		b.errors.AddErrorWithSuggestion(
			fmErrors.ErrorTypeStructural,
			fmt.Sprintf("duplicate feature name %q", name),
			b.location(),
			"feature names must be unique across the whole tree",
		)
		return f
	}
	b.index[name] = f

	switch {
	case raw.Group != nil && len(raw.Children) > 0:
		b.errors.AddError(
			fmErrors.ErrorTypeStructural,
			fmt.Sprintf("feature %q mixes a group with plain child features", name),
			b.location(),
		)
	case raw.Group != nil:
		b.buildGroup(f, raw.Group)
	default:
		for i := range raw.Children {
			if child := b.buildFeature(&raw.Children[i], name); child != nil {
				f.Children = append(f.Children, child)
			}
		}
	}

	return f
}

// buildGroup attaches a group's type and children to the owning feature.
func (b *builder) buildGroup(f *ast.Feature, raw *xmlGroup) {
	switch strings.ToUpper(strings.TrimSpace(raw.Type)) {
	case "XOR":
		f.Group = ast.GroupXOR
	case "OR":
		f.Group = ast.GroupOR
	default:
		b.errors.AddErrorWithSuggestion(
			fmErrors.ErrorTypeStructural,
			fmt.Sprintf("feature %q has unknown group type %q", f.Name, raw.Type),
			b.location(),
			`group type must be "xor" or "or"`,
		)
		return
	}

	if len(raw.Children) == 0 {
		b.errors.AddError(
			fmErrors.ErrorTypeStructural,
			fmt.Sprintf("group under feature %q has no child features", f.Name),
			b.location(),
		)
		return
	}

	for i := range raw.Children {
		if child := b.buildFeature(&raw.Children[i], f.Name); child != nil {
			f.Children = append(f.Children, child)
		}
	}
}

// buildConstraint classifies a cross-tree constraint statement.
// Statements that match no pattern, or that reference unknown features, are
// kept with kind Unsupported rather than dropped.
func (b *builder) buildConstraint(raw xmlConstraint) *ast.Constraint {
	stmt := strings.TrimSpace(raw.EnglishStatement)
	c := &ast.Constraint{
		Statement: stmt,
		Kind:      ast.ConstraintUnsupported,
	}

	kind, source, target, ok := ParseStatement(stmt)
	if !ok {
		return c
	}
	if _, known := b.index[source]; !known {
		return c
	}
	if _, known := b.index[target]; !known {
		return c
	}

	c.Kind = kind
	c.Source = source
	c.Target = target
	return c
}
