package source

import (
	"testing"
)

func TestAddAndGet(t *testing.T) {
	fs := NewFileSet()

	content := []byte("2 + 3 * 4\n")
	id := fs.AddVirtual("test.em", content)

	file := fs.Get(id)
	if file.Path != "test.em" {
		t.Errorf("Expected path %q, got %q", "test.em", file.Path)
	}
	if string(file.Content) != string(content) {
		t.Errorf("Expected content %q, got %q", content, file.Content)
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestCRLFNormalization(t *testing.T) {
	original := []byte("1 + 1\r\n2 + 2\r\n")
	normalized, changed := normalizeCRLF(original)

	if !changed {
		t.Error("Expected CRLF replacements to be reported")
	}
	if len(normalized) != len(original)-2 {
		t.Errorf("Expected length %d, got %d", len(original)-2, len(normalized))
	}
}

func TestBOMRemoval(t *testing.T) {
	bomContent := []byte{0xEF, 0xBB, 0xBF, '1', '\n'}
	withoutBOM, hadBOM := removeBOM(bomContent)

	if !hadBOM {
		t.Error("Expected BOM to be detected")
	}
	if string(withoutBOM) != "1\n" {
		t.Errorf("Expected content without BOM %q, got %q", "1\n", string(withoutBOM))
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.em", []byte("1 + 2\n3 * 4\n"))

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"start_of_file", 0, LineCol{Line: 1, Col: 1}},
		{"mid_first_line", 4, LineCol{Line: 1, Col: 5}},
		{"newline_itself", 5, LineCol{Line: 1, Col: 6}},
		{"start_of_second_line", 6, LineCol{Line: 2, Col: 1}},
		{"mid_second_line", 10, LineCol{Line: 2, Col: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start != tt.want {
				t.Errorf("Resolve(%d): expected %+v, got %+v", tt.off, tt.want, start)
			}
		})
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()

	// "α" is two bytes; columns count bytes within the line.
	content := []byte("α\n")
	id := fs.AddVirtual("test.em", content)

	start, end := fs.Resolve(Span{File: id, Start: 0, End: 1})
	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("Expected start 1:1, got %+v", start)
	}
	if (end != LineCol{Line: 1, Col: 2}) {
		t.Errorf("Expected end 1:2, got %+v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.em", []byte("1 + 2\n3 * 4"))
	file := fs.Get(id)

	if got := file.GetLine(1); got != "1 + 2" {
		t.Errorf("GetLine(1): expected %q, got %q", "1 + 2", got)
	}
	if got := file.GetLine(2); got != "3 * 4" {
		t.Errorf("GetLine(2): expected %q, got %q", "3 * 4", got)
	}
	if got := file.GetLine(3); got != "" {
		t.Errorf("GetLine(3): expected empty, got %q", got)
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.em", []byte("version 1"), 0)
	id2 := fs.Add("test.em", []byte("version 2"), 0)

	if id2 == id1 {
		t.Error("Expected different FileID for second Add")
	}

	latest, ok := fs.GetLatest("test.em")
	if !ok {
		t.Fatal("Expected file to exist")
	}
	if latest != id2 {
		t.Errorf("Expected latest ID %d, got %d", id2, latest)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 2, End: 5}
	b := Span{File: 0, Start: 4, End: 9}

	got := a.Cover(b)
	if got.Start != 2 || got.End != 9 {
		t.Errorf("Expected 2-9, got %d-%d", got.Start, got.End)
	}

	other := Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files should be a no-op, got %+v", got)
	}
}
