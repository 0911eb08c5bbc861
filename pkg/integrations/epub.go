package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/microcosm-cc/bluemonday"

	"github.com/kerbaras/scriptures/pkg/data"
)

type EPubBuilder struct {
	outputDir string
	author    string
	policy    *bluemonday.Policy
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	return &EPubBuilder{
		outputDir: outputDir,
		author:    "The Scriptures",
		policy:    bluemonday.UGCPolicy(),
	}
}

// Process compiles the chapters of a book into a single EPub file, one
// section per chapter, and returns its path.
func (p *EPubBuilder) Process(book *data.Book, chapters []*data.ChapterContent) (string, error) {
	if book == nil {
		return "", fmt.Errorf("book cannot be nil")
	}
	if len(chapters) == 0 {
		return "", fmt.Errorf("no chapters to compile")
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	sorted := make([]*data.ChapterContent, len(chapters))
	copy(sorted, chapters)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Chapter < sorted[j].Chapter
	})

	e, err := epub.NewEpub(book.FullName)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor(p.author)
	e.SetLang("en")

	for _, chapter := range sorted {
		title := book.Title(chapter.Chapter)
		body := fmt.Sprintf("<h1>%s</h1>\n%s", html.EscapeString(title), p.policy.Sanitize(chapter.HTML))
		if _, err := e.AddSection(body, title, "", ""); err != nil {
			return "", fmt.Errorf("failed to add section %q: %w", title, err)
		}
	}

	outputPath := filepath.Join(p.outputDir, sanitizeFilename(book.FullName)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "book"
	}
	return result
}
