package encode

type EncodeOption func(*EncState)

// Indent sets the indentation factor in spaces per level. Zero, the
// default, emits compact text.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting indentation, for embedding output mid-line.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
