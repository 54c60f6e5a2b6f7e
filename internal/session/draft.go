package session

import (
	"strings"
	"unicode/utf8"
)

// Draft is the pull request being composed.
type Draft struct {
	Title        string
	Description  string
	SourceBranch string
	TargetBranch string
}

func NewDraft(source, target string) Draft {
	return Draft{SourceBranch: source, TargetBranch: target}
}

func (d Draft) Get(f Field) string {
	switch f {
	case FieldTitle:
		return d.Title
	case FieldDescription:
		return d.Description
	case FieldSourceBranch:
		return d.SourceBranch
	case FieldTargetBranch:
		return d.TargetBranch
	default:
		return ""
	}
}

func (d *Draft) Set(f Field, v string) {
	switch f {
	case FieldTitle:
		d.Title = v
	case FieldDescription:
		d.Description = v
	case FieldSourceBranch:
		d.SourceBranch = v
	case FieldTargetBranch:
		d.TargetBranch = v
	}
}

// Form is the field store: a draft plus the field being browsed or edited.
type Form struct {
	draft Draft
	field Field
}

func NewForm(source, target string) *Form {
	return &Form{draft: NewDraft(source, target)}
}

func (f *Form) Current() Field { return f.field }

func (f *Form) Value() string { return f.draft.Get(f.field) }

func (f *Form) Draft() Draft { return f.draft }

// Append adds text to the active field. Line breaks are dropped from
// single-line fields and normalized to "\n" in the description.
func (f *Form) Append(text string) {
	if text == "" {
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if f.field.Multiline() {
		text = strings.ReplaceAll(text, "\r", "\n")
	} else {
		text = strings.NewReplacer("\r", "", "\n", "").Replace(text)
	}
	f.draft.Set(f.field, f.Value()+text)
}

// Backspace removes the last character of the active field.
func (f *Form) Backspace() {
	f.draft.Set(f.field, trimLastRune(f.Value()))
}

func (f *Form) Advance(step int) {
	f.field = f.field.Next(step)
}

func (f *Form) SetTarget(branch string) {
	f.draft.TargetBranch = branch
}

// Reset replaces the draft with a fresh one and returns to the first field.
func (f *Form) Reset(source, target string) {
	f.draft = NewDraft(source, target)
	f.field = FieldTitle
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
