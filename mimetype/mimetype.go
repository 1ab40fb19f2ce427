// Package mimetype guards batch input: password lists must be plain text, so
// archives and other binary files are rejected before any line is scored.
package mimetype

import (
	"strings"

	"bitbucket.org/taruti/mimemagic"
)

var archiveSuffixes = map[string]string{
	".tar":    "application/x-tar",
	".tar.gz": "application/x-tar",
	".tgz":    "application/x-tar",
	".zip":    "application/zip",
	".jar":    "application/zip",
	".gz":     "application/gzip",
}

// IsArchive reports whether the filename looks like an archive, and which
// kind.
func IsArchive(filename string) (string, bool) {
	for suffix, mime := range archiveSuffixes {
		if strings.HasSuffix(filename, suffix) {
			return mime, true
		}
	}

	return "", false
}

// IsBinary sniffs the leading bytes of a file. Unrecognized content is
// assumed to be text, since password lists are usually plain files with no
// magic header.
func IsBinary(prefix []byte) (string, bool) {
	mime := mimemagic.Match("", prefix)
	if mime == "" || strings.HasPrefix(mime, "text/") {
		return mime, false
	}

	return mime, true
}
