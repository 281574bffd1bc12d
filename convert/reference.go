package convert

import (
	"strings"

	"github.com/inspirehep/hepkit/schema/hep"
)

// ReferenceBuilder accumulates one entry of a reference list. Like the record
// builder it tolerates empty inputs, so callers can feed it whatever a source
// reference happens to carry.
type ReferenceBuilder struct {
	ref hep.Reference
}

func NewReferenceBuilder() *ReferenceBuilder {
	return &ReferenceBuilder{}
}

func (r *ReferenceBuilder) SetJournalTitle(title string) {
	r.ref.JournalTitle = strings.TrimSpace(title)
}

func (r *ReferenceBuilder) SetJournalVolume(volume string) {
	r.ref.JournalVolume = strings.TrimSpace(volume)
}

func (r *ReferenceBuilder) SetJournalIssue(issue string) {
	r.ref.JournalIssue = strings.TrimSpace(issue)
}

func (r *ReferenceBuilder) SetPageStart(page string) {
	r.ref.PageStart = strings.TrimSpace(page)
}

func (r *ReferenceBuilder) SetYear(year string) {
	if y, ok := maybeInt(year); ok && y >= 1000 && y <= 2100 {
		r.ref.Year = y
	}
}

func (r *ReferenceBuilder) AddTitle(title string) {
	r.ref.Title = collapseWhitespace(title)
}

// AddUID classifies a bare identifier: DOIs are recognized by shape, 13 digit
// strings count as ISBNs, anything else is dropped.
func (r *ReferenceBuilder) AddUID(uid string) {
	uid = strings.TrimSpace(uid)
	if doi := cleanDOI(uid); doi != "" {
		r.ref.DOI = doi
		return
	}
	digits := strings.Map(func(c rune) rune {
		if c == '-' {
			return -1
		}
		return c
	}, uid)
	if _, ok := maybeInt(digits); ok && len(digits) == 13 {
		r.ref.ISBN = digits
	}
}

func (r *ReferenceBuilder) AddAuthor(fullName string) {
	fullName = collapseWhitespace(fullName)
	if fullName == "" {
		return
	}
	r.ref.Authors = append(r.ref.Authors, fullName)
}

func (r *ReferenceBuilder) AddRawReference(raw string) {
	r.ref.RawRef = strings.TrimSpace(raw)
}

func (r *ReferenceBuilder) Reference() hep.Reference {
	return r.ref
}
