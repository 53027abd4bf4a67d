package mime

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	XML         MIME = "text/xml"
	JSON        MIME = "application/json"
	YAML        MIME = "application/yaml"
	PDF         MIME = "application/pdf"
	GZIP        MIME = "application/gzip"
	CSS         MIME = "text/css"
	JS          MIME = "text/javascript"
	PNG         MIME = "image/png"
	SVG         MIME = "image/svg+xml"
)

// Render returns the Content-Type header value. Empty charset is omitted.
func Render(mime MIME, charset Charset) string {
	if len(charset) == 0 {
		return mime
	}

	return mime + "; charset=" + charset
}
