package infile

// ParentPolicy selects which referenced layers FilterInFiles keeps besides
// the selected ones.
type ParentPolicy int

const (
	// AllParents keeps every layer reachable from a selected layer.
	AllParents ParentPolicy = iota
	// NoParents keeps the selected layers only.
	NoParents
	// RequirementParents keeps layers reachable through requirements
	// edges only; a constraints edge stops the walk.
	RequirementParents
)

func (p ParentPolicy) String() string {
	switch p {
	case AllParents:
		return "all"
	case NoParents:
		return "none"
	case RequirementParents:
		return "requirements"
	}
	return "unknown"
}

// FilterInFiles returns the layers whose stem is in stems plus, depending on
// policy, the layers they reference. Stems matching no layer are ignored.
// The input order is preserved.
func FilterInFiles(infiles []*InFile, stems []string, policy ParentPolicy) []*InFile {
	keep := make(map[string]struct{})
	var visit func(f *InFile)
	visit = func(f *InFile) {
		if _, ok := keep[f.originalName]; ok {
			return
		}
		keep[f.originalName] = struct{}{}
		for _, ref := range f.references {
			switch {
			case policy == AllParents:
				visit(ref.InFile)
			case policy == RequirementParents && ref.Type == Requirements:
				visit(ref.InFile)
			}
		}
	}

	selected := make(map[string]struct{}, len(stems))
	for _, stem := range stems {
		selected[stem] = struct{}{}
	}
	for _, f := range infiles {
		if _, ok := selected[f.stem]; ok {
			visit(f)
		}
	}

	filtered := make([]*InFile, 0, len(keep))
	for _, f := range infiles {
		if _, ok := keep[f.originalName]; ok {
			filtered = append(filtered, f)
		}
	}
	return filtered
}
