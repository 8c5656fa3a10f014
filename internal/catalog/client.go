package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultBaseURL is the catalog host, used to resolve relative cover image
// paths.
const DefaultBaseURL = "https://acervo.bn.gov.br"

// Client looks up bibliographic records on the catalog site.
type Client struct {
	fetcher Fetcher
	baseURL string
}

// NewClient creates a catalog client. An empty baseURL falls back to
// DefaultBaseURL.
func NewClient(fetcher Fetcher, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{fetcher: fetcher, baseURL: baseURL}
}

// Lookup fetches one catalog detail page and extracts its record. Fields
// whose selectors match nothing come back empty; a page with no recognized
// structure yields an empty record, not an error.
func (c *Client) Lookup(ctx context.Context, pageURL string) (*Record, error) {
	html, err := c.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse catalog page: %w", err)
	}

	record := &Record{
		Title:               text(doc, `h1.titulo[itemprop="name"]`),
		Material:            text(doc, `p[itemprop="genre"]`),
		Language:            text(doc, `p[itemprop="inLanguage"]`),
		ISBN:                text(doc, `p[itemprop="isbn"]`),
		Dewey:               text(doc, `.classifDewey`),
		Location:            text(doc, `.localizacao`),
		UniformTitle:        text(doc, `.outrosTitulos`),
		Publisher:           text(doc, `p[itemprop="publisher"]`),
		PhysicalDescription: text(doc, `p[itemprop="numberOfPages"]`),
		GeneralNote:         text(doc, `.texto-completo`),
		Subjects:            texts(doc, `span[itemprop="about"] a`),
		Authors:             texts(doc, `span[itemprop="name"] a`),
	}

	if src, ok := doc.Find(`img[itemprop="image"]`).First().Attr("src"); ok {
		record.CoverImageURL = c.baseURL + src
	}

	return record, nil
}

func text(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}

func texts(doc *goquery.Document, selector string) []string {
	var values []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		values = append(values, strings.TrimSpace(s.Text()))
	})
	return values
}
