// Package dataset is a minimal labeled-array abstraction: named numeric
// variables of rank 1 or 2, each carrying named dimensions, collected into
// an ordered Dataset.
//
// It exists so callers can address genotype, covariate and trait data by
// name ("dosage", "age", "height") rather than positionally, and so the
// association entrypoint can hand results back the same way. It is a thin
// container, not an array-processing framework: variables are dense,
// row-major float64 slices with O(1) indexing and a one-call bridge to
// gonum matrices via Variable.Matrix.
//
// ⚙️ Usage:
//
//	ds := dataset.New()
//	err := ds.Add("age", dataset.MustVariable(
//	  []string{"samples"}, []int{4}, []float64{31, 45, 28, 60},
//	))
//	v, err := ds.Get("age")
//	m := v.Matrix() // (4, 1) gonum Dense
//
// All failure modes are package-level sentinels (ErrUnknownVariable,
// ErrBadRank, ...) matched with errors.Is.
package dataset
