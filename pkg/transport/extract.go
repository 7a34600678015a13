package transport

import (
	"encoding/json"
	"html"
	"regexp"
	"strings"
)

var preBlock = regexp.MustCompile(`(?s)<pre[^>]*>(.*?)</pre>`)

// ExtractJSON pulls a JSON document out of a rendered page.
//
// Browsers wrap raw JSON responses in a <pre> element; its contents are
// unescaped and used first. Otherwise the whole content is tried as JSON.
// It returns false when neither yields valid JSON.
func ExtractJSON(content string) ([]byte, bool) {
	if m := preBlock.FindStringSubmatch(content); m != nil {
		body := strings.TrimSpace(html.UnescapeString(m[1]))
		if json.Valid([]byte(body)) {
			return []byte(body), true
		}
	}

	body := strings.TrimSpace(content)
	if body != "" && json.Valid([]byte(body)) {
		return []byte(body), true
	}
	return nil, false
}
