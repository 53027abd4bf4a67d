package mime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	require.Equal(t, "application/json", Render(JSON, ""))
	require.Equal(t, "text/html; charset=utf8", Render(HTML, DefaultCharset[HTML]))
}
