package frontmatter

// Field names of a video note.
const (
	FieldTitle      = "title"
	FieldVideoImage = "video_img"
	FieldPerformers = "performers"
)

// Performer is one entry of the performers list.
type Performer struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// IsValid reports whether doc describes a video note: title is a string,
// video_img is present (any value, null included) and performers is a list.
func IsValid(doc *Document) bool {
	if doc == nil {
		return false
	}
	title, _ := doc.Get(FieldTitle)
	if _, ok := title.AsString(); !ok {
		return false
	}
	if !doc.Has(FieldVideoImage) {
		return false
	}
	performers, _ := doc.Get(FieldPerformers)
	_, ok := performers.AsList()
	return ok
}

// GetPerformers returns the performers of doc in order. A name or image
// that is missing, null, false, 0 or empty becomes ""; list items that are
// not inline objects yield an empty Performer. When performers is absent or
// not a list the result is empty, never nil.
func GetPerformers(doc *Document) []Performer {
	v, _ := doc.Get(FieldPerformers)
	items, ok := v.AsList()
	if !ok {
		return []Performer{}
	}
	out := make([]Performer, 0, len(items))
	for _, item := range items {
		m, _ := item.AsMapping()
		out = append(out, Performer{
			Name:  optionalText(m, "name"),
			Image: optionalText(m, "image"),
		})
	}
	return out
}

// GetVideoImage returns the video_img field as text. ok is false when the
// field is absent, null, or a list or mapping.
func GetVideoImage(doc *Document) (img string, ok bool) {
	v, found := doc.Get(FieldVideoImage)
	if !found {
		return "", false
	}
	switch v.Kind() {
	case NullKind, ListKind, MappingKind:
		return "", false
	default:
		return v.Text(), true
	}
}

// Patch returns a new document holding doc overlaid with the entries of
// patch. Patch values win on key collisions, keys only in doc keep their
// value and position, and keys only in patch are appended in patch order.
// Neither input is modified.
func Patch(doc, patch *Document) *Document {
	out := doc.Clone()
	for k, v := range patch.All() {
		out.Set(k, v.clone())
	}
	return out
}

func optionalText(m *Document, key string) string {
	v, _ := m.Get(key)
	if !v.truthy() {
		return ""
	}
	return v.Text()
}
