package encode

type EncodeOption func(*EncState)

// Compact renders the whole document on one line with no indentation
// and no comments.
func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

// EncodeComments controls the provenance comment lines in pretty
// output. They are on by default; compact output never has them.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

// EncodeColors renders ANSI colors through c.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Depth sets the starting indentation level for pretty output, for
// embedding the result inside an already indented document.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
