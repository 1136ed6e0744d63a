package drive

import (
	"regexp"
	"strings"
)

var (
	urlIDPattern  = regexp.MustCompile(`/d/([-\w]{10,})|[?&]id=([-\w]{10,})`)
	bareIDPattern = regexp.MustCompile(`^[-\w]{10,}$`)
)

// Placeholder values operators leave in JSON files before pasting in a
// real ID or share URL. They are treated the same as an empty value.
var placeholders = map[string]bool{
	"PASTE_FILE_ID_HERE": true,
	"FILE_ID_OR_URL":     true,
}

// ExtractFileID pulls a Drive file ID out of a value that may be a bare
// ID, a share URL, or an open URL. It returns "" for empty values,
// placeholders, and anything it cannot recognize.
func ExtractFileID(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || placeholders[value] {
		return ""
	}

	if bareIDPattern.MatchString(value) {
		return value
	}

	match := urlIDPattern.FindStringSubmatch(value)
	if match == nil {
		return ""
	}
	if match[1] != "" {
		return match[1]
	}
	return match[2]
}

// ViewURL returns the shareable view link for a file ID.
func ViewURL(fileID string) string {
	return "https://drive.google.com/file/d/" + fileID + "/view"
}
