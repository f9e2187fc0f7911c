package sat

// VarMap is a bidirectional mapping between feature names and SAT variable
// identifiers. Identifiers are assigned lazily in first-seen order starting
// at 1, matching DIMACS conventions.
//
// A VarMap belongs to a single compilation session and must not be shared
// across concurrent sessions.
type VarMap struct {
	byName map[string]int
	byVar  []string // byVar[id-1] == name
}

// NewVarMap creates an empty variable registry.
func NewVarMap() *VarMap {
	return &VarMap{
		byName: make(map[string]int),
	}
}

// Lookup returns the variable for the given name, assigning the next free
// identifier on first reference.
func (vm *VarMap) Lookup(name string) int {
	if v, ok := vm.byName[name]; ok {
		return v
	}
	v := len(vm.byVar) + 1
	vm.byName[name] = v
	vm.byVar = append(vm.byVar, name)
	return v
}

// Var returns the variable for the given name, or 0 if it was never registered.
func (vm *VarMap) Var(name string) int {
	return vm.byName[name]
}

// Name returns the feature name for a literal, ignoring its sign.
// It returns "" for unregistered variables.
func (vm *VarMap) Name(lit int) string {
	if lit < 0 {
		lit = -lit
	}
	if lit < 1 || lit > len(vm.byVar) {
		return ""
	}
	return vm.byVar[lit-1]
}

// Count returns the number of registered variables.
func (vm *VarMap) Count() int {
	return len(vm.byVar)
}
