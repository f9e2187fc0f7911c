package compile

import (
	"reflect"
	"testing"

	"mercator-hq/callisto/pkg/fm/parser"
)

const xorModel = `
<featureModel>
  <feature name="Root" mandatory="true">
    <feature name="A" mandatory="true">
      <group type="xor">
        <feature name="B"/>
        <feature name="C"/>
      </group>
    </feature>
  </feature>
</featureModel>
`

func TestCompile_XORModel(t *testing.T) {
	model, err := parser.New().ParseBytes([]byte(xorModel), "xor.xml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	result := Compile(model)

	// Variables in first-seen order: Root=1, A=2, B=3, C=4.
	wantClauses := [][]int{
		{1},        // Root
		{-1, 2},    // Root → A
		{-2, 1},    // A → Root
		{-2, 3, 4}, // A → (B ∨ C)
		{-3, -4},   // ¬(B ∧ C)
		{-3, 2},    // B → A
		{-4, 2},    // C → A
	}
	if !reflect.DeepEqual(result.Clauses, wantClauses) {
		t.Errorf("Clauses = %v, want %v", result.Clauses, wantClauses)
	}

	wantRules := []string{
		"Root",
		"Root → A",
		"A → Root",
		"A → (B ∨ C)",
		"¬(B ∧ C)",
		"B → A",
		"C → A",
	}
	if !reflect.DeepEqual(result.Rules, wantRules) {
		t.Errorf("Rules = %v, want %v", result.Rules, wantRules)
	}

	if len(result.Rules) != len(result.Clauses) {
		t.Errorf("rule log / clause set out of lock-step: %d rules, %d clauses",
			len(result.Rules), len(result.Clauses))
	}
}

func TestCompile_Deterministic(t *testing.T) {
	model, err := parser.New().ParseBytes([]byte(xorModel), "xor.xml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	first := Compile(model)
	second := Compile(model)

	if !reflect.DeepEqual(first.Clauses, second.Clauses) {
		t.Error("compiling the same model twice yielded different clause sets")
	}
	if !reflect.DeepEqual(first.Rules, second.Rules) {
		t.Error("compiling the same model twice yielded different rule logs")
	}
}

func TestCompile_OptionalAndOR(t *testing.T) {
	doc := `
<featureModel>
  <feature name="Root">
    <feature name="Opt"/>
    <feature name="Grp">
      <group type="or">
        <feature name="X"/>
        <feature name="Y"/>
      </group>
    </feature>
  </feature>
</featureModel>`

	model, err := parser.New().ParseBytes([]byte(doc), "or.xml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	result := Compile(model)

	// Root=1, Opt=2, Grp=3, X=4, Y=5. Optional features compile to a single
	// implication; OR groups emit no mutual exclusion clauses.
	wantClauses := [][]int{
		{1},
		{-2, 1},
		{-3, 1},
		{-3, 4, 5},
		{-4, 3},
		{-5, 3},
	}
	if !reflect.DeepEqual(result.Clauses, wantClauses) {
		t.Errorf("Clauses = %v, want %v", result.Clauses, wantClauses)
	}
}

func TestCompile_CrossTreeConstraints(t *testing.T) {
	doc := `
<featureModel>
  <feature name="Root">
    <feature name="A"/>
    <feature name="B"/>
    <feature name="C"/>
  </feature>
  <constraints>
    <constraint><englishStatement>A requires B</englishStatement></constraint>
    <constraint><englishStatement>B excludes C</englishStatement></constraint>
    <constraint><englishStatement>please keep things tidy</englishStatement></constraint>
  </constraints>
</featureModel>`

	model, err := parser.New().ParseBytes([]byte(doc), "ctc.xml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	result := Compile(model)

	// Root=1, A=2, B=3, C=4. Cross-tree clauses follow the structural ones.
	n := len(result.Clauses)
	if n < 2 {
		t.Fatalf("only %d clauses compiled", n)
	}

	requires := result.Clauses[n-2]
	if !reflect.DeepEqual(requires, []int{-2, 3}) {
		t.Errorf("requires clause = %v, want [-2 3]", requires)
	}
	if got := result.Rules[n-2]; got != "A → B" {
		t.Errorf("requires rule = %q, want %q", got, "A → B")
	}

	excludes := result.Clauses[n-1]
	if !reflect.DeepEqual(excludes, []int{-3, -4}) {
		t.Errorf("excludes clause = %v, want [-3 -4]", excludes)
	}
	if got := result.Rules[n-1]; got != "¬(B ∧ C)" {
		t.Errorf("excludes rule = %q, want %q", got, "¬(B ∧ C)")
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(result.Warnings))
	}
}

func TestCompile_MandatoryBiconditional(t *testing.T) {
	doc := `
<featureModel>
  <feature name="Root">
    <feature name="M" mandatory="true"/>
  </feature>
</featureModel>`

	model, err := parser.New().ParseBytes([]byte(doc), "m.xml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	result := Compile(model)

	// Root=1, M=2: both directions of the biconditional must be present.
	wantClauses := [][]int{
		{1},
		{-1, 2},
		{-2, 1},
	}
	if !reflect.DeepEqual(result.Clauses, wantClauses) {
		t.Errorf("Clauses = %v, want %v", result.Clauses, wantClauses)
	}
}
