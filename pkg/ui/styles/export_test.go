package styles

// EmbeddedStyles exposes the embedded definitions to external tests.
var EmbeddedStyles = embeddedStyles
