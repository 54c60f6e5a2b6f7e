package session

// Field identifies one editable value of the draft.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldSourceBranch
	FieldTargetBranch
	fieldCount
)

// Fields lists the fields in navigation order.
var Fields = []Field{FieldTitle, FieldDescription, FieldSourceBranch, FieldTargetBranch}

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldDescription:
		return "Description"
	case FieldSourceBranch:
		return "Source branch"
	case FieldTargetBranch:
		return "Target branch"
	default:
		return "Unknown"
	}
}

// Multiline reports whether the field accepts newlines.
func (f Field) Multiline() bool {
	return f == FieldDescription
}

// Next moves step positions through the fields, wrapping in both directions.
func (f Field) Next(step int) Field {
	n := (int(f) + step) % int(fieldCount)
	if n < 0 {
		n += int(fieldCount)
	}
	return Field(n)
}
