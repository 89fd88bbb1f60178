package treediff

// OnlyIn returns every entry path present in a and absent from b. It is a
// pure set difference; calling it with swapped arguments yields the
// complement relationship.
func OnlyIn(a, b EntrySet) EntrySet {
	out := make(EntrySet)
	for path := range a {
		if !b.Contains(path) {
			out.Add(path)
		}
	}

	return out
}
