package frontmatter_test

import (
	"testing"

	"github.com/KimNorgaard/go-frontmatter"
	"github.com/KimNorgaard/go-frontmatter/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("Fenced note", func(t *testing.T) {
		note := testutil.Fixture(t, "note.md")
		front, body, ok := frontmatter.Split(note)
		require.True(t, ok)
		require.Equal(t, "title: Trivial\nvideo_img: preview.jpg\nperformers:\n  - name: Yann Andre\n    image: yann.webp", front)
		require.Equal(t, "# Trivial\n\nNotes about the scene.\n", body)

		doc := frontmatter.Decode(front)
		require.True(t, frontmatter.IsValid(doc))
		require.Equal(t, note, frontmatter.Join(front, body))
	})

	tests := []struct {
		name  string
		note  string
		front string
		body  string
		ok    bool
	}{
		{"Empty front matter", "---\n---\nbody", "", "body", true},
		{"No body", "---\ntitle: x\n---", "title: x", "", true},
		{"CRLF", "---\r\ntitle: x\r\n---\r\nbody", "title: x", "body", true},
		{"Fence with trailing spaces", "--- \ntitle: x\n---\t\nbody", "title: x", "body", true},
		{"Fences later in the body stay", "---\na: 1\n---\ntext\n---\nmore", "a: 1", "text\n---\nmore", true},
		{"No opening fence", "title: x\n---\nbody", "", "title: x\n---\nbody", false},
		{"Unclosed fence", "---\ntitle: x\nbody", "", "---\ntitle: x\nbody", false},
		{"Lone fence", "---", "", "---", false},
		{"Empty note", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			front, body, ok := frontmatter.Split(tt.note)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.front, front)
			require.Equal(t, tt.body, body)
		})
	}
}

func TestJoin(t *testing.T) {
	require.Equal(t, "---\ntitle: x\n---\nbody", frontmatter.Join("title: x", "body"))
	require.Equal(t, "---\ntitle: x\n---\n", frontmatter.Join("title: x\n", ""))
	require.Equal(t, "---\n---\nbody", frontmatter.Join("", "body"))
}
