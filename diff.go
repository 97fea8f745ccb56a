package ptree

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ptree-go/ptree/tree"
)

// LeafDiff records one differing leaf between two congruent trees.
// For string leaves Patch carries a compact textual patch.
type LeafDiff struct {
	Steps []tree.Step
	From  any
	To    any
	Patch string
}

// Path renders the leaf's location in "$" notation.
func (d LeafDiff) Path() string {
	specs := make([]any, len(d.Steps))
	for i, s := range d.Steps {
		if s.Name != "" {
			specs[i] = s.Name
			continue
		}
		specs[i] = s.Index
	}
	return FormatPath(specs)
}

func (d LeafDiff) String() string {
	if d.Patch != "" {
		return fmt.Sprintf("%s: %s", d.Path(), strings.TrimSuffix(d.Patch, "\n"))
	}
	return fmt.Sprintf("%s: %v -> %v", d.Path(), d.From, d.To)
}

// Diff lists the leaves differing between two congruent trees, in
// trace order.
func Diff(a, b any) ([]LeafDiff, error) {
	aLeaves, aDef, err := tree.Flatten(a)
	if err != nil {
		return nil, err
	}
	bLeaves, bDef, err := tree.Flatten(b)
	if err != nil {
		return nil, err
	}
	if !aDef.Congruent(bDef) {
		return nil, fmt.Errorf("%w: trees are not congruent", tree.ErrStructure)
	}
	traces := aDef.LeafTraces()
	var res []LeafDiff
	for i := range aLeaves {
		if tree.LeafEqual(aLeaves[i], bLeaves[i]) {
			continue
		}
		d := LeafDiff{Steps: traces[i], From: aLeaves[i], To: bLeaves[i]}
		if from, ok := aLeaves[i].(string); ok {
			if to, ok := bLeaves[i].(string); ok {
				d.Patch = stringPatch(from, to)
			}
		}
		res = append(res, d)
	}
	return res, nil
}

func stringPatch(from, to string) string {
	dmp := diffpatch.New()
	patches := dmp.PatchMake(from, to)
	return dmp.PatchToText(patches)
}
