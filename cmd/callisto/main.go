// Callisto is a feature model analyzer backed by a SAT solver.
//
// It parses XML feature model documents, compiles them to propositional
// logic, and answers product-line questions:
//   - Enumerate all minimal valid products
//   - Validate candidate feature selections with targeted diagnostics
//   - Serve the analysis over an HTTP API
//
// Usage:
//
//	# Analyze a feature model and list its minimal products
//	callisto analyze model.xml
//
//	# Re-analyze automatically whenever the file changes
//	callisto analyze model.xml --watch
//
//	# Validate a feature selection
//	callisto validate model.xml --select Phone,Screen,Basic
//
//	# Start the HTTP API server
//	callisto serve
//
//	# Show recent analysis history
//	callisto history
//
//	# Show version information
//	callisto version
//
// For complete documentation, see: https://github.com/mercator-hq/callisto
package main

func main() {
	Execute()
}
