// Package documents merges report contexts into docx templates.
//
// A template is an ordinary Word document whose text contains text/template
// actions, e.g. {{.casa_case.case_number}} or
// {{range .case_contacts}}{{.subheading}}{{end}}. The document body, headers
// and footers are merged; every other archive entry is copied through untouched.
package documents

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const documentPart = "word/document.xml"

// ContentType is the mime type of a rendered report
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Field is a single named value bound into a template
type Field struct {
	Name  string
	Value interface{}
}

// Context is anything that can be merged into a template. Fields are returned
// in a fixed order.
type Context interface {
	Fields() []Field
}

// Keys returns the placeholder names a context binds, in order
func Keys(ctx Context) []string {
	fields := ctx.Fields()
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Name)
	}
	return keys
}

// Render merges ctx into the template at templatePath and returns the docx bytes
func Render(ctx Context, templatePath string) ([]byte, error) {
	start := time.Now()

	src, size, err := openTemplate(templatePath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	r, err := zip.NewReader(src, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedTemplate, templatePath, err)
	}

	data := bindFields(ctx)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	sawDocument := false
	for _, f := range r.File {
		if !isMergeable(f.Name) {
			if err := w.Copy(f); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrMalformedTemplate, f.Name, err)
			}
			continue
		}
		if f.Name == documentPart {
			sawDocument = true
		}
		if err := mergeFile(w, f, data); err != nil {
			return nil, err
		}
	}
	if !sawDocument {
		return nil, fmt.Errorf("%w: %s has no %s", ErrMalformedTemplate, templatePath, documentPart)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish report archive: %w", err)
	}

	zap.S().Debugw("rendered report template",
		"template", templatePath,
		"bytes", buf.Len(),
		"took", time.Since(start))
	return buf.Bytes(), nil
}

// RenderToFile renders ctx and writes the result to outputPath. The file only
// appears once the whole document has been written; on any failure nothing is
// left at outputPath.
func RenderToFile(ctx Context, templatePath, outputPath string) (err error) {
	b, err := Render(ctx, templatePath)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(b); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	if err = os.Rename(tmp.Name(), outputPath); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}
	return nil
}

// openTemplate opens the template for reading. Anything that stops us reading
// it, including a missing file, a permission problem or a directory, is
// ErrTemplateNotFound.
func openTemplate(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, 0, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, fmt.Errorf("%w: %s is a directory", ErrTemplateNotFound, path)
	}
	return f, info.Size(), nil
}

// isMergeable reports whether an archive entry can hold placeholders
func isMergeable(name string) bool {
	if name == documentPart {
		return true
	}
	if !strings.HasPrefix(name, "word/") || !strings.HasSuffix(name, ".xml") {
		return false
	}
	base := strings.TrimPrefix(name, "word/")
	return strings.HasPrefix(base, "header") || strings.HasPrefix(base, "footer")
}

func mergeFile(w *zip.Writer, f *zip.File, data map[string]interface{}) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedTemplate, f.Name, err)
	}
	defer rc.Close()

	src, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedTemplate, f.Name, err)
	}

	merged, err := mergePart(f.Name, string(src), data)
	if err != nil {
		return err
	}

	out, err := w.CreateHeader(&zip.FileHeader{
		Name:     f.Name,
		Method:   zip.Deflate,
		Modified: f.Modified,
	})
	if err != nil {
		return fmt.Errorf("failed to add %s to report: %w", f.Name, err)
	}
	_, err = out.Write(merged)
	return err
}
