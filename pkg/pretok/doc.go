// Package pretok computes pre-token boundaries for text that embeds fenced
// code blocks.
//
// Ordinary text passes through as one split per region. The body of a fence
// whose language tag is enabled is cut along the token boundaries of that
// language's lexer, with line breaks fused onto the preceding token and
// blanks attached to the following one:
//
//	text := "```python\nx=1\n```"
//	for _, s := range pretok.Default().Split(text) {
//		fmt.Printf("%v %q\n", s, s.Text(text))
//	}
//
// The result is always a complete partition of the input. Unsupported
// languages, unclosed fences and code the lexer rejects all degrade to
// literal splits; failures are only visible through the injected logger.
package pretok
