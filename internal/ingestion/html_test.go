package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText_SeparatesBlocks(t *testing.T) {
	html := `<ul><li>Go</li><li>SQL</li></ul><p>Kubernetes<br>Docker</p>`

	text, err := HTMLToText(html)
	require.NoError(t, err)

	assert.Equal(t, "Go\nSQL\nKubernetes\nDocker", text)
}

func TestHTMLToText_PrefersJobDescription(t *testing.T) {
	html := `<html><body>
		<header>Acme Careers</header>
		<div class="sidebar-promo">Other openings: Rust</div>
		<main><div class="job-description"><p>We need <b>Python</b> and Django.</p></div></main>
		<footer>© Acme</footer>
		<script>var skills = ["java"];</script>
	</body></html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)

	assert.Equal(t, "We need Python and Django.", text)
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	html := `<html><body><p>Plain body</p><style>p{}</style></body></html>`

	text, err := ExtractMainText(html, []string{".missing"})
	require.NoError(t, err)

	assert.Equal(t, "Plain body", text)
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `<body><main><p>Keep</p><div class="apply">Apply now</div></main></body>`

	text, err := ExtractMainText(html, []string{"main"}, ".apply")
	require.NoError(t, err)

	assert.Equal(t, "Keep", text)
}

func TestHTMLToText_Empty(t *testing.T) {
	text, err := HTMLToText("")
	require.NoError(t, err)
	assert.Empty(t, text)
}
