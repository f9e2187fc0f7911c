package handlers

import (
	"encoding/json"
	"net/http"

	"mercator-hq/callisto/pkg/fm/ast"
)

// FeatureNode is the JSON shape of one feature tree node.
type FeatureNode struct {
	Name      string        `json:"name"`
	Mandatory bool          `json:"mandatory"`
	Group     string        `json:"group,omitempty"`
	Children  []FeatureNode `json:"children,omitempty"`
}

// ConstraintEntry is the JSON shape of one cross-tree constraint.
type ConstraintEntry struct {
	EnglishStatement string `json:"englishStatement"`
	Type             string `json:"type"`
	Source           string `json:"source,omitempty"`
	Target           string `json:"target,omitempty"`
}

// ModelResponse is returned by model upload and model retrieval.
type ModelResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name,omitempty"`
	Features    FeatureNode       `json:"features"`
	LogicRules  []string          `json:"logicRules"`
	Products    [][]string        `json:"products"`
	Constraints []ConstraintEntry `json:"constraints"`
	Warnings    []string          `json:"warnings,omitempty"`
	Truncated   bool              `json:"truncated,omitempty"`
}

// ValidateRequest is the body of a selection validation request.
type ValidateRequest struct {
	SelectedFeatures []string `json:"selectedFeatures"`
}

// ValidateResponse is returned by selection validation.
type ValidateResponse struct {
	IsValid  bool     `json:"isValid"`
	Messages []string `json:"messages"`
}

// ErrorResponse is the JSON shape of any error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// featureNode converts a feature subtree into its JSON shape.
func featureNode(f *ast.Feature) FeatureNode {
	node := FeatureNode{
		Name:      f.Name,
		Mandatory: f.Mandatory,
		Group:     string(f.Group),
	}
	for _, c := range f.Children {
		node.Children = append(node.Children, featureNode(c))
	}
	return node
}

// constraintEntries converts the model's constraints into their JSON shape.
func constraintEntries(model *ast.Model) []ConstraintEntry {
	entries := make([]ConstraintEntry, 0, len(model.Constraints))
	for _, c := range model.Constraints {
		entries = append(entries, ConstraintEntry{
			EnglishStatement: c.Statement,
			Type:             string(c.Kind),
			Source:           c.Source,
			Target:           c.Target,
		})
	}
	return entries
}

// respondJSON writes data as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error reply with the given status.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
