package parser

import "testing"

const sectionDoc = `# Title

## Description

LABEL=

## Todo list

* [ ] top

### Backend

* [x] api
* [ ] db

#### Notes

* [ ] deep

### Frontend

* [ ] css

## Motives

1. because
`

func TestExtractBlock(t *testing.T) {
	t.Run("task block stops at next level-2 heading", func(t *testing.T) {
		block, ok := ExtractBlock(sectionDoc, "Todo list", 2)
		if !ok {
			t.Fatal("expected task block")
		}
		want := "\n* [ ] top\n\n### Backend\n\n* [x] api\n* [ ] db\n\n#### Notes\n\n* [ ] deep\n\n### Frontend\n\n* [ ] css\n"
		if block != want {
			t.Fatalf("block = %q, want %q", block, want)
		}
	})

	t.Run("subsection keeps deeper headings", func(t *testing.T) {
		block, ok := SectionBlock(sectionDoc, "Backend")
		if !ok {
			t.Fatal("expected Backend section")
		}
		want := "\n* [x] api\n* [ ] db\n\n#### Notes\n\n* [ ] deep\n"
		if block != want {
			t.Fatalf("block = %q, want %q", block, want)
		}
	})

	t.Run("last section runs to end of task block", func(t *testing.T) {
		block, ok := SectionBlock(sectionDoc, "Frontend")
		if !ok {
			t.Fatal("expected Frontend section")
		}
		if block != "\n* [ ] css\n" {
			t.Fatalf("block = %q", block)
		}
	})

	t.Run("missing heading", func(t *testing.T) {
		if _, ok := SectionBlock(sectionDoc, "Nope"); ok {
			t.Fatal("expected no section")
		}
	})

	t.Run("match is exact and case sensitive", func(t *testing.T) {
		for _, name := range []string{"backend", "Back", "Backend "} {
			if _, ok := SectionBlock(sectionDoc, name); ok {
				t.Errorf("SectionBlock(%q) matched", name)
			}
		}
	})

	t.Run("first duplicate wins", func(t *testing.T) {
		doc := "## Todo list\n\n### A\n\n* [ ] one\n\n### A\n\n* [ ] two\n"
		block, ok := SectionBlock(doc, "A")
		if !ok {
			t.Fatal("expected section")
		}
		if block != "\n* [ ] one\n" {
			t.Fatalf("block = %q", block)
		}
	})

	t.Run("headings in code fences are ignored", func(t *testing.T) {
		doc := "## Todo list\n\n* [ ] a\n```\n## not a heading\n```\n* [ ] b\n## Next\n"
		block, ok := TaskBlock(doc)
		if !ok {
			t.Fatal("expected block")
		}
		if block != "\n* [ ] a\n```\n## not a heading\n```\n* [ ] b" {
			t.Fatalf("block = %q", block)
		}
	})

	t.Run("heading on last line", func(t *testing.T) {
		block, ok := TaskBlock("# T\n\n## Todo list")
		if !ok || block != "" {
			t.Fatalf("got %q, %v", block, ok)
		}
	})
}

func TestHeadingDepth(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"# Title", 1},
		{"## Todo list", 2},
		{"### Section", 3},
		{"###", 3},
		{"#hashtag", 0},
		{"   ## indented", 2},
		{"    ## code", 0},
		{"####### seven", 0},
		{"text", 0},
	}
	for _, tt := range tests {
		if got := HeadingDepth(tt.line); got != tt.want {
			t.Errorf("HeadingDepth(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}
