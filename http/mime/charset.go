package mime

type Charset = string

const (
	UTF8   Charset = "utf8"
	UTF16  Charset = "utf16"
	UTF32  Charset = "utf32"
	ASCII  Charset = "ascii"
	CP1251 Charset = "cp1251"
	CP1252 Charset = "cp1252"
)

// DefaultCharset defines charsets, used by default for MIMEs unless explicitly set.
var DefaultCharset = map[MIME]Charset{
	Plain: UTF8,
	CSS:   UTF8,
	HTML:  UTF8,
	JS:    UTF8,
	XML:   UTF8,
}
