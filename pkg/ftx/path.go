package ftx

import (
	"net/url"
	"strings"
)

// PathParam is one named placeholder value for ExpandPath.
type PathParam struct {
	Name  string
	Value string
	// Raw skips escaping entirely. By default each "/"-separated segment is
	// escaped, so spot markets such as "BTC/USD" keep their slash.
	Raw bool
}

// ExpandPath substitutes {name} placeholders in template. Every placeholder
// must be given a non-empty value and no placeholder may remain.
func ExpandPath(template string, params ...PathParam) (string, error) {
	path := template
	for _, p := range params {
		placeholder := "{" + p.Name + "}"
		if !strings.Contains(path, placeholder) {
			return "", constructionErr("path", "unknown parameter "+p.Name+" for "+template, nil)
		}
		if p.Value == "" {
			return "", constructionErr("path", "parameter "+p.Name+" is empty", nil)
		}
		value := p.Value
		if !p.Raw {
			value = escapeSegments(value)
		}
		path = strings.ReplaceAll(path, placeholder, value)
	}

	if i := strings.IndexByte(path, '{'); i >= 0 {
		end := strings.IndexByte(path[i:], '}')
		if end > 0 {
			return "", constructionErr("path", "missing parameter "+path[i+1:i+end]+" for "+template, nil)
		}
	}
	return path, nil
}

func escapeSegments(v string) string {
	segments := strings.Split(v, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
