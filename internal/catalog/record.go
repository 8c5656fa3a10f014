// Package catalog extracts bibliographic records from detail pages of the
// Biblioteca Nacional online catalog (acervo.bn.gov.br).
package catalog

// Record holds the fields scraped from a single catalog detail page.
// Selector misses leave the corresponding field empty rather than failing
// the lookup.
type Record struct {
	Title               string   `json:"title"`
	Material            string   `json:"material"`
	Language            string   `json:"language"`
	ISBN                string   `json:"isbn_code"`
	Dewey               string   `json:"dewey"`
	Location            string   `json:"location"`
	UniformTitle        string   `json:"uniform_title"`
	Publisher           string   `json:"publisher"`
	PhysicalDescription string   `json:"physical_description"`
	GeneralNote         string   `json:"general_note"`
	Subjects            []string `json:"subjects"`
	Authors             []string `json:"authors"`
	CoverImageURL       string   `json:"cover_image"`
}
