package documents

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

// execPlaceholder pulls the failing expression out of a text/template exec error:
// `template: word/document.xml:1:40: executing "word/document.xml" at <.volunteer.name>: ...`
var execPlaceholder = regexp.MustCompile(`at <\.?([^>]*)>`)

func mergePart(name, src string, data map[string]interface{}) ([]byte, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Parse(joinSplitActions(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedTemplate, name, err)
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return nil, &RenderError{
			Placeholder: placeholderFromError(err),
			Part:        name,
			Err:         err,
		}
	}
	return out.Bytes(), nil
}

func placeholderFromError(err error) string {
	m := execPlaceholder.FindStringSubmatch(err.Error())
	if m == nil {
		return ""
	}
	return m[1]
}

// joinSplitActions removes the XML markup Word inserts inside a {{ ... }}
// action when it splits the typed text across several runs. Only the opening
// braces have to sit in one run. Quoted and raw string literals inside an
// action are copied as typed.
func joinSplitActions(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for {
		start := strings.Index(src, "{{")
		if start < 0 {
			b.WriteString(src)
			return b.String()
		}
		b.WriteString(src[:start+2])
		rest := src[start+2:]

		var action strings.Builder
		inTag, prevBrace, escaped := false, false, false
		var quote byte
		end := -1
		for i := 0; i < len(rest) && end < 0; i++ {
			c := rest[i]
			switch {
			case quote != 0:
				action.WriteByte(c)
				switch {
				case escaped:
					escaped = false
				case c == '\\' && quote == '"':
					escaped = true
				case c == quote:
					quote = 0
				}
			case inTag:
				if c == '>' {
					inTag = false
				}
			case c == '<':
				inTag = true
			case c == '}' && prevBrace:
				end = i
			case c == '}':
				prevBrace = true
			default:
				if prevBrace {
					action.WriteByte('}')
					prevBrace = false
				}
				action.WriteByte(c)
				if c == '"' || c == '`' {
					quote = c
				}
			}
		}
		if end < 0 {
			// unterminated, let the parser report it
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(action.String())
		b.WriteString("}}")
		src = rest[end+1:]
	}
}

// bindFields turns the ordered context into template data with every string
// escaped for XML.
func bindFields(ctx Context) map[string]interface{} {
	fields := ctx.Fields()
	data := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		data[f.Name] = escapeValue(f.Value)
	}
	return data
}

func escapeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return escapeString(val)
	case []string:
		out := make([]string, len(val))
		for i, s := range val {
			out[i] = escapeString(s)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = escapeValue(item)
		}
		return out
	case []map[string]interface{}:
		out := make([]map[string]interface{}, len(val))
		for i, item := range val {
			out[i] = escapeValue(item).(map[string]interface{})
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = escapeValue(item)
		}
		return out
	default:
		return v
	}
}

func escapeString(s string) string {
	var b strings.Builder
	// xml.EscapeText only fails if the writer does
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
