package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent       = "Mozilla/5.0 (compatible; PolicyHub-PDF-Downloader/2.0)"
	headingSelector = "h1,h2,h3,h4,h5,h6"
	maxHeadingWalk  = 10
)

// Discoverer finds candidate PDF links on a single page.
type Discoverer struct {
	client *http.Client
}

func NewDiscoverer(client *http.Client) *Discoverer {
	return &Discoverer{client: client}
}

// Discover fetches pageURL, collects anchors whose target contains ".pdf",
// resolves them against the page URL and de-duplicates by resolved URL
// (first occurrence wins, order preserved). Any fetch or parse failure
// aborts the whole discovery; there are no partial results.
func (d *Discoverer) Discover(ctx context.Context, pageURL string) ([]PDFLink, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}

	var links []PDFLink
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		// Permissive on purpose: also matches query-stringed PDF URLs.
		if !strings.Contains(href, ".pdf") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref).String()
		if seen[resolved] {
			return
		}
		seen[resolved] = true

		text := strings.TrimSpace(a.Text())
		if text == "" {
			text = "PDF Document"
		}

		links = append(links, PDFLink{
			URL:            resolved,
			Text:           text,
			NearbyText:     nearbyText(a),
			SectionHeading: sectionHeading(a),
		})
	})

	slog.InfoContext(ctx, "discovered pdf links", "page", pageURL, "count", len(links))
	return links, nil
}

// nearbyText concatenates the anchor's parent text with the text of the
// parent's previous and next siblings. Heuristic signal only.
func nearbyText(a *goquery.Selection) string {
	parent := a.Parent()
	if parent.Length() == 0 {
		return ""
	}
	text := strings.TrimSpace(parent.Text())
	if prev := strings.TrimSpace(parent.Prev().Text()); prev != "" {
		text += " " + prev
	}
	if next := strings.TrimSpace(parent.Next().Text()); next != "" {
		text += " " + next
	}
	return text
}

// sectionHeading walks up to maxHeadingWalk ancestor levels and, at each
// level, scans preceding siblings nearest-first for a heading element,
// either directly or nested. Empty when nothing is found.
func sectionHeading(a *goquery.Selection) string {
	current := a
	for i := 0; i < maxHeadingWalk; i++ {
		current = current.Parent()
		if current.Length() == 0 {
			break
		}

		var heading string
		current.PrevAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			if sib.Is(headingSelector) {
				heading = strings.TrimSpace(sib.Text())
				return false
			}
			if nested := sib.Find(headingSelector).Last(); nested.Length() > 0 {
				heading = strings.TrimSpace(nested.Text())
				return false
			}
			return true
		})
		if heading != "" {
			return heading
		}
	}
	return ""
}
