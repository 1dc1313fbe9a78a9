package infile

import (
	"cmp"
	"maps"
	"slices"
)

// SortInFiles orders layers so that every layer comes after all the layers
// it references. It works in rounds: each round takes the layers whose
// remaining references all point outside the remaining set, sorts them by
// stem and appends them. References to layers that are not part of infiles
// are ignored.
//
// If a round finds nothing to take while layers remain, the remainder is
// returned in a CircularReferenceError, sorted by stem.
func SortInFiles(infiles []*InFile) ([]*InFile, error) {
	remaining := make(map[string]*InFile, len(infiles))
	for _, f := range infiles {
		remaining[f.originalName] = f
	}

	sorted := make([]*InFile, 0, len(remaining))
	for len(remaining) > 0 {
		var leaves []*InFile
		for _, f := range remaining {
			if !hasRemainingReferences(f, remaining) {
				leaves = append(leaves, f)
			}
		}
		if len(leaves) == 0 {
			return nil, &CircularReferenceError{InFiles: sortByStem(slices.Collect(maps.Values(remaining)))}
		}
		sorted = append(sorted, sortByStem(leaves)...)
		for _, f := range leaves {
			delete(remaining, f.originalName)
		}
	}
	return sorted, nil
}

func hasRemainingReferences(f *InFile, remaining map[string]*InFile) bool {
	for _, ref := range f.references {
		if _, ok := remaining[ref.InFile.originalName]; ok {
			return true
		}
	}
	return false
}

func sortByStem(infiles []*InFile) []*InFile {
	slices.SortFunc(infiles, func(a, b *InFile) int {
		return cmp.Or(cmp.Compare(a.stem, b.stem), cmp.Compare(a.originalName, b.originalName))
	})
	return infiles
}

