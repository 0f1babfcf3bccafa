package guidance

// Simplifier rewrites legal text into plain language.
//
// The current implementation is an identity pass-through: curated simplified
// descriptions in the corpus cover the sections that matter, and runtime
// model-based simplification proved too slow to sit on the query path. The
// type exists as a named seam so a real simplifier can be swapped in without
// touching callers.
type Simplifier struct{}

// NewSimplifier creates a simplifier.
func NewSimplifier() *Simplifier {
	return &Simplifier{}
}

// Simplify returns a plain-language rendition of text.
// It is total and side-effect free.
func (s *Simplifier) Simplify(text string) string {
	return text
}
