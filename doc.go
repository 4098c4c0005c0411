/*
Package frontmatter parses and writes the small, indentation-sensitive
key/value markup used as note front matter. The API mirrors the standard
`encoding/json` package where it can.

The accepted grammar is deliberately narrow. A document is a flat mapping
whose values are scalars, lists of scalars, or lists of single-level inline
objects:

	title: Trivial
	video_img: preview.jpg
	# whole-line comments are ignored
	performers:
	  - name: Yann Andre
	    image: yann.webp
	tags:
	  - interview
	  - 2024

Bare tokens are typed when decoded: true, false and null become booleans
and null, decimal literals become numbers, everything else stays a string.
Nothing is unquoted or unescaped, and nothing is quoted on the way out, so
some strings do not survive a round trip: "true", "null" or "12" come back
typed, and a list item string shaped like "key: value" comes back as an
inline object.

1. Lenient decoding and encoding

Decode never fails. Lines the grammar has no form for, and list items that
do not follow a "key:" header, are dropped. Encode is the structural
inverse; encoding and decoding again reproduces equivalent data for the
supported shapes, though comments and spacing are not preserved.

	doc := frontmatter.Decode(text)
	if frontmatter.IsValid(doc) {
		for _, p := range frontmatter.GetPerformers(doc) {
			fmt.Println(p.Name, p.Image)
		}
	}

	updated := frontmatter.Patch(doc, patch) // doc is left untouched
	text = frontmatter.Encode(updated)

2. Strict decoding

Unmarshal and Decoder accept the Strict option, which builds the same
document but reports every dropped line as a ParseError:

	doc, err := frontmatter.Unmarshal(data, frontmatter.Strict())
	var perrs frontmatter.ParseErrors
	if errors.As(err, &perrs) {
		// inspect perrs
	}

Documents also implement yaml.Marshaler and yaml.Unmarshaler from
gopkg.in/yaml.v3, and json.MarshalerTo and json.UnmarshalerFrom from
github.com/go-json-experiment/json, keeping key order in both directions.
All functions are safe for concurrent use as long as their inputs are not
mutated concurrently.
*/
package frontmatter
