package mermaid

// Fence wraps markup in a fenced mermaid code block
func Fence(markup string) string {
	return "```mermaid\n" + markup + "\n```\n"
}
