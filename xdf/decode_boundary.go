package xdf

// decodeBoundary discards a Boundary chunk's content: it is a semantically
// inert delimiter, carrying no information readers act on.
func decodeBoundary(content []byte) struct{} {
	_ = content
	return struct{}{}
}
