package frontmatter_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/KimNorgaard/go-frontmatter"
	"github.com/KimNorgaard/go-frontmatter/internal/testutil"
	"github.com/stretchr/testify/require"
)

// docOf builds a document from alternating keys and values.
func docOf(kv ...any) *frontmatter.Document {
	d := frontmatter.NewDocument()
	for i := 0; i < len(kv); i += 2 {
		d.Set(kv[i].(string), kv[i+1].(frontmatter.Value))
	}
	return d
}

func obj(kv ...any) frontmatter.Value {
	return frontmatter.MappingOf(docOf(kv...))
}

func str(s string) frontmatter.Value { return frontmatter.String(s) }

func num(n float64) frontmatter.Value { return frontmatter.Number(n) }

func requireDocEqual(t *testing.T, expected, actual *frontmatter.Document) {
	t.Helper()
	require.True(t, expected.Equal(actual), "expected:\n%s\n\nactual:\n%s", expected, actual)
}

func TestDecode(t *testing.T) {
	t.Run("Empty input", func(t *testing.T) {
		doc := frontmatter.Decode("")
		require.Equal(t, 0, doc.Len())
	})

	t.Run("Single scalar", func(t *testing.T) {
		doc := frontmatter.Decode("title: Trivial")
		v, ok := doc.Get("title")
		require.True(t, ok)
		s, ok := v.AsString()
		require.True(t, ok)
		require.Equal(t, "Trivial", s)
	})

	t.Run("Inline object list", func(t *testing.T) {
		input := "performers:\n  - name: Yann Andre\n    image: yann.webp\n"
		expected := docOf("performers", frontmatter.List(
			obj("name", str("Yann Andre"), "image", str("yann.webp")),
		))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Indented note", func(t *testing.T) {
		input := `
  title: Trivial
  video_img: preview.jpg
  performers:
    - name: Yann Andre
      image: yann.webp
`
		expected := docOf(
			"title", str("Trivial"),
			"video_img", str("preview.jpg"),
			"performers", frontmatter.List(obj("name", str("Yann Andre"), "image", str("yann.webp"))),
		)
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Scalar coercion", func(t *testing.T) {
		input := "a: true\nb: false\nc: null\nd: 42\ne: -3.5\nf: 1e3\ng: hello world\nh: True\ni: 0x10"
		expected := docOf(
			"a", frontmatter.Bool(true),
			"b", frontmatter.Bool(false),
			"c", frontmatter.Null(),
			"d", num(42),
			"e", num(-3.5),
			"f", num(1000),
			"g", str("hello world"),
			"h", str("True"),
			"i", str("0x10"),
		)
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Primitive list", func(t *testing.T) {
		input := "tags:\n- interview\n- 2024\n- true\n-\n"
		expected := docOf("tags", frontmatter.List(str("interview"), num(2024), frontmatter.Bool(true), str("")))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Empty header is an empty list", func(t *testing.T) {
		doc := frontmatter.Decode("performers:\ntitle: x")
		v, ok := doc.Get("performers")
		require.True(t, ok)
		items, ok := v.AsList()
		require.True(t, ok)
		require.Empty(t, items)
	})

	t.Run("Consecutive inline objects", func(t *testing.T) {
		input := `performers:
  - name: A
    image: a.jpg
  - name: B
  - name: C
    image: c.jpg
    age: 30`
		expected := docOf("performers", frontmatter.List(
			obj("name", str("A"), "image", str("a.jpg")),
			obj("name", str("B")),
			obj("name", str("C"), "image", str("c.jpg"), "age", num(30)),
		))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Objects and scalars mixed in one list", func(t *testing.T) {
		input := "cast:\n  - solo\n  - name: B\n    image: b.jpg\n  - 7"
		expected := docOf("cast", frontmatter.List(
			str("solo"),
			obj("name", str("B"), "image", str("b.jpg")),
			num(7),
		))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Header replaces an earlier list", func(t *testing.T) {
		input := "tags:\n  - a\n  - b\ntags:\n  - c"
		expected := docOf("tags", frontmatter.List(str("c")))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Header replaces an earlier scalar in place", func(t *testing.T) {
		input := "a: 1\nb: 2\na:\n  - x"
		doc := frontmatter.Decode(input)
		require.Equal(t, []string{"a", "b"}, doc.Keys())
		v, _ := doc.Get("a")
		require.True(t, v.Equal(frontmatter.List(str("x"))))
	})

	t.Run("Values keep colons after the first", func(t *testing.T) {
		input := "recorded: 2024-01-02T10:30:00Z\nurl: https://example.com:8080/a\nperformers:\n  - name: A\n    link: http://a.example/x"
		expected := docOf(
			"recorded", str("2024-01-02T10:30:00Z"),
			"url", str("https://example.com:8080/a"),
			"performers", frontmatter.List(obj("name", str("A"), "link", str("http://a.example/x"))),
		)
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Item bodies that are not simple keys stay scalars", func(t *testing.T) {
		input := "items:\n  - : leading colon\n  - full name: x\n  - https://example.com\n  - {a: b}\n  - a: [1, 2]\n  - name:\n  - a:b"
		expected := docOf("items", frontmatter.List(
			str(": leading colon"),
			str("full name: x"),
			str("https://example.com"),
			str("{a: b}"),
			str("a: [1, 2]"),
			str("name:"),
			str("a:b"),
		))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Orphan items are dropped", func(t *testing.T) {
		input := "- lost\n- name: lost\n  image: lost.jpg\ntitle: x\n- also lost"
		expected := docOf("title", str("x"))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Scalar key closes the open list", func(t *testing.T) {
		input := "tags:\n  - a\ntitle: x\n  - b"
		expected := docOf("tags", frontmatter.List(str("a")), "title", str("x"))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Comments and blank lines are skipped", func(t *testing.T) {
		input := "# header comment\n\ntags:\n  # inside\n\n  - a\n  - name: B\n    # between\n    image: b.jpg\n"
		expected := docOf("tags", frontmatter.List(
			str("a"),
			obj("name", str("B"), "image", str("b.jpg")),
		))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Shallow blank or comment line ends an inline object", func(t *testing.T) {
		for _, sep := range []string{"", "# note", "  # note", "  "} {
			input := "performers:\n  - name: A\n" + sep + "\n    image: a.jpg\n  - B"
			expected := docOf(
				"performers", frontmatter.List(obj("name", str("A"))),
				"image", str("a.jpg"),
			)
			requireDocEqual(t, expected, frontmatter.Decode(input))
		}
	})

	t.Run("Continuation edge cases", func(t *testing.T) {
		input := "p:\n  - name: A\n    image:\n    nonsense\n    - nested\n    k: v"
		expected := docOf("p", frontmatter.List(obj("name", str("A"), "image", str(""), "k", str("v"))))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Lines without a key are dropped", func(t *testing.T) {
		input := "just text\n: no key\ntitle: x"
		expected := docOf("title", str("x"))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Lines without a key close the open list", func(t *testing.T) {
		input := "tags:\n  - a\njust text\n  - b\nother:\n  - c\n: no key\n  - d"
		expected := docOf(
			"tags", frontmatter.List(str("a")),
			"other", frontmatter.List(str("c")),
		)
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("CRLF line endings", func(t *testing.T) {
		input := "title: x\r\ntags:\r\n  - a\r\n"
		expected := docOf("title", str("x"), "tags", frontmatter.List(str("a")))
		requireDocEqual(t, expected, frontmatter.Decode(input))
	})

	t.Run("Fresh document per call", func(t *testing.T) {
		first := frontmatter.Decode("a: 1")
		first.Set("b", str("2"))
		second := frontmatter.Decode("a: 1")
		require.Equal(t, []string{"a"}, second.Keys())
	})
}

func TestUnmarshal_Strict(t *testing.T) {
	input := "- orphan\ntitle: x\nbroken\np:\n  - name: A\n    - nested\n    junk"

	t.Run("Lenient by default", func(t *testing.T) {
		doc, err := frontmatter.Unmarshal([]byte(input))
		require.NoError(t, err)
		require.Equal(t, []string{"title", "p"}, doc.Keys())
	})

	t.Run("Strict reports each dropped line", func(t *testing.T) {
		doc, err := frontmatter.Unmarshal([]byte(input), frontmatter.Strict())
		require.Error(t, err)

		var perrs frontmatter.ParseErrors
		require.True(t, errors.As(err, &perrs))
		require.Len(t, perrs, 4)

		require.Equal(t, 1, perrs[0].Line)
		require.Contains(t, perrs[0].Message, "outside of a list")
		require.Equal(t, 3, perrs[1].Line)
		require.Equal(t, 6, perrs[2].Line)
		require.Equal(t, 5, perrs[2].Column)
		require.Equal(t, "nested lists are not supported", perrs[2].Message)
		require.Equal(t, 7, perrs[3].Line)

		require.Equal(t, "frontmatter: line 1, column 1: list item \"orphan\" outside of a list (and 3 more)", err.Error())

		// The document is the same one lenient decoding builds.
		requireDocEqual(t, frontmatter.Decode(input), doc)
	})

	t.Run("Strict on clean input", func(t *testing.T) {
		src, err := testutil.ReadTestData("scene.fm")
		require.NoError(t, err)
		doc, err := frontmatter.Unmarshal(src, frontmatter.Strict())
		require.NoError(t, err)
		require.True(t, frontmatter.IsValid(doc))
	})
}

func TestDecoder(t *testing.T) {
	t.Run("Reads the whole stream", func(t *testing.T) {
		dec := frontmatter.NewDecoder(strings.NewReader("title: x\ntags:\n  - a"))
		doc, err := dec.Decode()
		require.NoError(t, err)
		requireDocEqual(t, docOf("title", str("x"), "tags", frontmatter.List(str("a"))), doc)
	})

	t.Run("Nil reader", func(t *testing.T) {
		_, err := frontmatter.NewDecoder(nil).Decode()
		require.EqualError(t, err, "frontmatter: Decode(nil reader)")
	})

	t.Run("Read error", func(t *testing.T) {
		readErr := errors.New("boom")
		_, err := frontmatter.NewDecoder(iotest.ErrReader(readErr)).Decode()
		require.ErrorIs(t, err, readErr)
	})

	t.Run("Strict option", func(t *testing.T) {
		dec := frontmatter.NewDecoder(strings.NewReader("- orphan"), frontmatter.Strict())
		doc, err := dec.Decode()
		require.Error(t, err)
		require.Equal(t, 0, doc.Len())
	})
}
