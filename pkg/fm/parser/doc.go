// Package parser provides XML parsing and feature tree construction for
// Callisto feature models.
//
// The parser reads feature model documents (XML format), validates their
// structure, and constructs the typed feature tree consumed by the compiler,
// enumerator, and validator.
//
// # Basic Usage
//
// Parse a model file:
//
//	p := parser.New()
//	model, err := p.Parse("models/ecommerce.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Loaded model:", model.Root.Name)
//	fmt.Println("Features:", model.FeatureCount())
//
// Parse from memory:
//
//	model, err := p.ParseBytes(data, "upload://catalog.xml")
//
// # Document Format
//
// A model document is a tree of feature elements. A feature either nests
// plain child features (AND-composed, each mandatory or optional per its own
// attribute) or a single group element wrapping alternatives:
//
//	<featureModel name="catalog">
//	  <feature name="Catalog" mandatory="true">
//	    <feature name="Search" mandatory="true">
//	      <group type="xor">
//	        <feature name="ByName"/>
//	        <feature name="ByLocation"/>
//	      </group>
//	    </feature>
//	  </feature>
//	  <constraints>
//	    <constraint>
//	      <englishStatement>ByLocation requires Location</englishStatement>
//	    </constraint>
//	  </constraints>
//	</featureModel>
//
// # Parsing Stages
//
// The parser operates in two stages:
//
// 1. XML decoding: read the document into intermediate structures
//
// 2. Tree building: transform intermediate structures into the typed AST,
// accumulating every structural error (missing names, duplicates, unknown
// group types) instead of stopping at the first
//
// No partial tree is retained on failure: a parse either yields a complete
// immutable model or an error.
//
// # Cross-Tree Constraints
//
// Constraint statements are classified by an explicit pattern grammar
// (ParseStatement). Statements that match no pattern, or that reference
// unknown features, are retained with kind Unsupported so callers can report
// them; they never silently influence compilation.
package parser
