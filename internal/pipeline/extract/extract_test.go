package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestPDF builds a minimal but well-formed PDF with one content
// stream per entry. An empty entry becomes a page whose stream draws no
// text, like a scanned page.
func writeTestPDF(t *testing.T, path string, pages []string) {
	t.Helper()

	type object struct {
		num  int
		body string
	}

	// 1 catalog, 2 page tree, then page + stream pairs, font last
	next := 3
	pageNums := make([]int, len(pages))
	contentNums := make([]int, len(pages))
	for i := range pages {
		pageNums[i] = next
		contentNums[i] = next + 1
		next += 2
	}
	fontNum := next

	kids := make([]string, len(pages))
	for i, n := range pageNums {
		kids[i] = fmt.Sprintf("%d 0 R", n)
	}

	objects := []object{
		{1, "<< /Type /Catalog /Pages 2 0 R >>"},
		{2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))},
	}
	for i, text := range pages {
		objects = append(objects, object{pageNums[i], fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			fontNum, contentNums[i])})

		stream := ""
		if text != "" {
			stream = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		}
		objects = append(objects, object{contentNums[i], fmt.Sprintf(
			"<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream)})
	}
	objects = append(objects, object{fontNum,
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>"})

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make(map[int]int)
	for _, o := range objects {
		offsets[o.num] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", o.num, o.body)
	}

	xrefPos := b.Len()
	total := fontNum + 1
	fmt.Fprintf(&b, "xref\n0 %d\n", total)
	b.WriteString("0000000000 65535 f \n")
	for n := 1; n < total; n++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[n])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total, xrefPos)

	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		t.Fatalf("could not write pdf fixture: %v", err)
	}
}

func TestExtract_UnsupportedType(t *testing.T) {
	e := NewFileExtractor()
	for _, name := range []string{"image.png", "archive.zip", "noextension"} {
		if _, err := e.Extract(name); err == nil {
			t.Errorf("Extract(%q) expected an error", name)
		}
	}
}

func TestExtract_PlainText(t *testing.T) {
	e := NewFileExtractor()

	path := filepath.Join(t.TempDir(), "readme.txt")
	if err := os.WriteFile(path, []byte("plain file content"), 0644); err != nil {
		t.Fatalf("could not write temp file: %v", err)
	}

	got, err := e.Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !strings.HasPrefix(got, "plain file content") {
		t.Errorf("content got %q", got)
	}
	// plain files carry the same trailing separator as a pdf page
	if !strings.HasSuffix(got, "\n\n") {
		t.Errorf("expected a trailing blank-line separator, got %q", got)
	}
}

func TestExtract_CaseInsensitiveExtension(t *testing.T) {
	e := NewFileExtractor()

	path := filepath.Join(t.TempDir(), "UPPER.TXT")
	if err := os.WriteFile(path, []byte("upper"), 0644); err != nil {
		t.Fatalf("could not write temp file: %v", err)
	}

	if _, err := e.Extract(path); err != nil {
		t.Errorf("uppercase extension should extract, got %v", err)
	}
}

func TestExtractPDF_JoinsPagesWithBlankLines(t *testing.T) {
	e := NewFileExtractor()

	t.Run("Text_Page_Then_Empty_Page", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.pdf")
		writeTestPDF(t, path, []string{"Hello", ""})

		got, err := e.Extract(path)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		// the empty page still contributes its separator
		if got != "Hello\n\n\n\n" {
			t.Errorf("got %q, want %q", got, "Hello\n\n\n\n")
		}
	})

	t.Run("Pages_Stay_In_Document_Order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.pdf")
		writeTestPDF(t, path, []string{"First", "", "Second"})

		got, err := e.Extract(path)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if got != "First\n\n\n\nSecond\n\n" {
			t.Errorf("got %q, want %q", got, "First\n\n\n\nSecond\n\n")
		}
	})

	t.Run("Single_Page", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "one.pdf")
		writeTestPDF(t, path, []string{"Only page"})

		got, err := e.Extract(path)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if got != "Only page\n\n" {
			t.Errorf("got %q, want %q", got, "Only page\n\n")
		}
	})
}

func TestExtractPDF_MissingFile(t *testing.T) {
	e := NewFileExtractor()
	if _, err := e.Extract(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("expected an error for a missing pdf")
	}
}
