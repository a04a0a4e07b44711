package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `
<html>
	<body>
		<nav>Site navigation</nav>
		<div class="job-description">
			<h1>Backend Engineer</h1>
			<p>We need Go, PostgreSQL and Docker experience.</p>
		</div>
		<form id="application-form">First name</form>
		<footer>Copyright</footer>
	</body>
</html>`

func TestJobDescription_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer server.Close()

	text, err := JobDescription(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "PostgreSQL")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "First name")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	_, err := JobDescription(context.Background(), "not-a-valid-url")
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestJobDescription_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := JobDescription(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractMainText_ContentSelector(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<main>
				<h1>Main Content</h1>
				<p>This is the important text.</p>
			</main>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors(), nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Main Content")
	assert.Contains(t, text, "important text")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer")
}

func TestExtractMainText_BodyFallback(t *testing.T) {
	html := `<html><body><div class="custom">Only content here</div></body></html>`

	text, err := ExtractMainText(html, []string{".does-not-exist"}, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Only content here")
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `
	<html>
		<body>
			<main>
				<p>Keep this.</p>
				<div class="eeo-statement">Drop this.</div>
			</main>
		</body>
	</html>`

	text, err := ExtractMainText(html, []string{"main"}, []string{".eeo-statement"})
	require.NoError(t, err)
	assert.Contains(t, text, "Keep this.")
	assert.NotContains(t, text, "Drop this.")
}

func TestCleanWhitespace(t *testing.T) {
	in := "  line one  \n\n\n   \n line two\n"
	assert.Equal(t, "line one\nline two", cleanWhitespace(in))
}
