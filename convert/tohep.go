package convert

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/inspirehep/hepkit/schema/crawler"
	"github.com/inspirehep/hepkit/schema/hep"
)

// Collection tags that map to publication types rather than document types.
var publicationTypes = map[string]bool{
	"introductory": true,
	"lectures":     true,
	"review":       true,
	"manual":       true,
}

// Collection tags that are document types verbatim.
var documentTypes = map[string]bool{
	"book":        true,
	"note":        true,
	"report":      true,
	"proceedings": true,
	"thesis":      true,
}

// DownloadedFile associates a remote URL with the local path the download
// stage stored it under.
type DownloadedFile struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// hasPublicationInfo reports whether any of the flat journal fields of a
// crawler record is set. Only then does the normalized record carry a
// publication info entry.
func hasPublicationInfo(rec *crawler.Record) bool {
	return rec.PubinfoFreetext != "" ||
		rec.JournalVolume != "" ||
		rec.JournalTitle != "" ||
		rec.JournalYear != "" ||
		rec.JournalIssue != "" ||
		rec.JournalFPage != "" ||
		rec.JournalLPage != "" ||
		rec.JournalArtid != "" ||
		rec.JournalDoctype != ""
}

// NormalizeCrawlerRecord moves the flat fields of a crawler record into the
// nested lists the converter consumes, clearing them afterwards. The source
// argument is the fallback provenance when the record itself carries none.
func NormalizeCrawlerRecord(rec *crawler.Record, source string) error {
	if len(rec.RelatedArticleDOI) > 0 {
		rec.DOIs = append(rec.DOIs, rec.RelatedArticleDOI...)
		rec.RelatedArticleDOI = nil
	}

	titleSource := rec.Source
	if titleSource == "" {
		titleSource = source
	}
	rec.Titles = []crawler.Title{{
		Title:    rec.Title,
		Subtitle: rec.Subtitle,
		Source:   titleSource,
	}}
	rec.Abstracts = []crawler.SourcedValue{{
		Value:  rec.Abstract,
		Source: source,
	}}
	rec.Imprints = []crawler.Imprint{{
		Date: rec.DatePublished,
	}}
	rec.Copyright = []crawler.Copyright{{
		Holder:    rec.CopyrightHolder,
		Year:      rec.CopyrightYear,
		Statement: rec.CopyrightStatement,
		Material:  rec.CopyrightMaterial,
	}}

	if hasPublicationInfo(rec) {
		info := crawler.PublicationInfo{
			JournalTitle:    rec.JournalTitle,
			JournalVolume:   rec.JournalVolume,
			JournalIssue:    rec.JournalIssue,
			Artid:           rec.JournalArtid,
			PageStart:       rec.JournalFPage,
			PageEnd:         rec.JournalLPage,
			Note:            rec.JournalDoctype,
			PubinfoFreetext: rec.PubinfoFreetext,
			Material:        rec.PubinfoMaterial,
		}
		if rec.JournalYear != "" {
			year, err := strconv.Atoi(strings.TrimSpace(rec.JournalYear))
			if err != nil {
				return fmt.Errorf("invalid journal year %q: %w", rec.JournalYear, err)
			}
			info.Year = year
		}
		rec.PublicationInfo = []crawler.PublicationInfo{info}
	}

	rec.Title = ""
	rec.Subtitle = ""
	rec.Abstract = ""
	rec.Source = ""
	rec.DatePublished = ""
	rec.CopyrightHolder = ""
	rec.CopyrightYear = 0
	rec.CopyrightStatement = ""
	rec.CopyrightMaterial = ""
	rec.JournalTitle = ""
	rec.JournalVolume = ""
	rec.JournalYear = ""
	rec.JournalIssue = ""
	rec.JournalFPage = ""
	rec.JournalLPage = ""
	rec.JournalArtid = ""
	rec.JournalDoctype = ""
	rec.PubinfoFreetext = ""
	rec.PubinfoMaterial = ""

	return nil
}

// CrawlerToHep converts a normalized crawler record into the canonical
// format. The acquisition source must be complete, records without full
// provenance are rejected.
func CrawlerToHep(rec *crawler.Record) (hep.Record, error) {
	as := rec.AcquisitionSource
	if as.Method == "" || as.Date == "" || as.Source == "" || as.SubmissionNumber == "" {
		return hep.Record{}, fmt.Errorf("incomplete acquisition source: %+v", as)
	}
	b := NewBuilder(as.Source)

	for _, author := range rec.Authors {
		var affiliations []string
		for _, aff := range author.Affiliations {
			if aff.Value != "" {
				affiliations = append(affiliations, aff.Value)
			}
		}
		b.AddAuthor(b.MakeAuthor(author.FullName, affiliations, author.Emails, nil))
	}
	for _, title := range rec.Titles {
		b.AddTitle(title.Title, title.Subtitle, title.Source)
	}
	for _, abstract := range rec.Abstracts {
		b.AddAbstract(abstract.Value, abstract.Source)
	}
	for _, eprint := range rec.ArxivEprints {
		b.AddArxivEprint(eprint.Value, eprint.Categories)
	}
	for _, doi := range rec.DOIs {
		b.AddDOI(doi.Value, doi.Material, doi.Source)
	}
	for _, note := range rec.PrivateNotes {
		b.AddPrivateNote(note.Value, note.Source)
	}
	for _, note := range rec.PublicNotes {
		b.AddPublicNote(note.Value, note.Source)
	}
	for _, license := range rec.License {
		b.AddLicense(license.URL, license.License, "", license.Material)
	}
	for _, collab := range rec.Collaborations {
		b.AddCollaboration(collab.Value)
	}
	for _, imprint := range rec.Imprints {
		b.AddImprintDate(imprint.Date)
	}
	for _, c := range rec.Copyright {
		b.AddCopyright(c.Holder, c.Year, c.Statement, c.Material)
	}
	b.SetPreprintDate(rec.PreprintDate)
	b.SetAcquisitionSource(hep.AcquisitionSource{
		Method:           as.Method,
		Date:             as.Date,
		Source:           as.Source,
		SubmissionNumber: as.SubmissionNumber,
	})

	if len(rec.PageNr) > 0 {
		// Bad page counts are dropped, they are cosmetic at this stage.
		if n, err := strconv.Atoi(strings.TrimSpace(rec.PageNr[0])); err == nil {
			b.SetNumberOfPages(n)
		}
	}

	for _, collection := range rec.Collections {
		tag := strings.ToLower(strings.TrimSpace(collection.Primary))
		switch {
		case tag == "arxiv":
			// ignored
		case tag == "citeable":
			b.SetCiteable(true)
		case tag == "core":
			b.SetCore(true)
		case tag == "noncore":
			b.SetCore(false)
		case tag == "published":
			b.SetRefereed(true)
		case tag == "withdrawn":
			b.SetWithdrawn(true)
		case publicationTypes[tag]:
			b.AddPublicationType(tag)
		case tag == "bookchapter":
			b.AddDocumentType("book chapter")
		case tag == "conferencepaper":
			b.AddDocumentType("conference paper")
		case documentTypes[tag]:
			b.AddDocumentType(tag)
		}
	}

	if len(rec.PublicationInfo) > 0 {
		info := rec.PublicationInfo[0]
		b.AddPublicationInfo(hep.PublicationInfo{
			JournalTitle:    info.JournalTitle,
			JournalVolume:   info.JournalVolume,
			JournalIssue:    info.JournalIssue,
			Artid:           info.Artid,
			PageStart:       info.PageStart,
			PageEnd:         info.PageEnd,
			Note:            info.Note,
			PubinfoFreetext: info.PubinfoFreetext,
			Material:        info.Material,
			Year:            info.Year,
		})
	}

	for _, rn := range rec.ReportNumbers {
		b.AddReportNumber(rn.Value, rn.Source)
	}
	for _, url := range rec.URLs {
		b.AddURL(url.Value)
	}
	for _, doc := range rec.Documents {
		b.AddDocument(hep.Document{
			Key:         doc.Key,
			URL:         doc.URL,
			OriginalURL: doc.OriginalURL,
			Description: doc.Description,
			Fulltext:    doc.Fulltext,
			Hidden:      doc.Hidden,
			Material:    doc.Material,
		})
	}

	return b.Record(), nil
}

// AttachDocuments reconciles the documents of a record with locally
// downloaded files. A document whose URL basename matches a downloaded file
// gets its URL rewritten to the local path, with the remote location
// preserved in old_url. The operation is idempotent: applying it again with
// the same file list leaves the record unchanged.
func AttachDocuments(rec *hep.Record, files []DownloadedFile) {
	if len(files) == 0 || len(rec.Documents) == 0 {
		return
	}
	index := make(map[string]string, len(files))
	for _, f := range files {
		index[path.Base(f.URL)] = f.Path
	}
	for i := range rec.Documents {
		doc := &rec.Documents[i]
		remote := doc.OldURL
		if remote == "" {
			remote = doc.URL
		}
		if remote == "" {
			continue
		}
		local, ok := index[path.Base(remote)]
		if !ok {
			doc.URL = remote
			continue
		}
		log.Debugf("attaching document: %s -> %s", remote, local)
		doc.OldURL = remote
		doc.URL = local
		if doc.Key == "" {
			doc.Key = path.Base(remote)
		}
	}
}
