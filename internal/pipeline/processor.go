package pipeline

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Discovery finds candidate links on a page.
type Discovery interface {
	Discover(ctx context.Context, pageURL string) ([]PDFLink, error)
}

// Fetcher downloads one validated document.
type Fetcher interface {
	Download(ctx context.Context, rawURL string) ([]byte, string, error)
}

// Storer persists one document and returns its storage location.
type Storer interface {
	Upload(ctx context.Context, content []byte, filename, section string) (*UploadRecord, error)
}

// Processor drives one pipeline run: discover once, then handle each link
// sequentially in discovery order. One item's failure never aborts the
// run; partial success is an expected outcome.
type Processor struct {
	discovery Discovery
	downloads Fetcher
	uploads   Storer
	now       func() time.Time
}

func NewProcessor(d Discovery, f Fetcher, s Storer) *Processor {
	return &Processor{discovery: d, downloads: f, uploads: s, now: time.Now}
}

// New builds a Processor with the default discoverer and downloader
// sharing one HTTP client, uploading through store into bucket.
func New(client *http.Client, store ObjectStore, bucket string) *Processor {
	return NewProcessor(NewDiscoverer(client), NewDownloader(client), NewUploader(store, bucket))
}

// Process runs the pipeline over one seed URL. Discovery failure yields
// Success=false with the error message; it never escapes as a Go error.
// Zero discovered links is a success with an explanatory message.
// Cancellation is honored between items: remaining links are recorded as
// failed so that Total == Successful + Failed always holds.
func (p *Processor) Process(ctx context.Context, seedURL string) *Result {
	slog.InfoContext(ctx, "starting pdf processing", "url", seedURL)

	links, err := p.discovery.Discover(ctx, seedURL)
	if err != nil {
		slog.ErrorContext(ctx, "discovery failed", "url", seedURL, "error", err)
		return &Result{
			Success:       false,
			Error:         err.Error(),
			ProcessedFrom: seedURL,
			Timestamp:     p.now().Format(time.RFC3339),
		}
	}

	if len(links) == 0 {
		return &Result{
			Success:       true,
			Summary:       &Summary{Sections: map[string]int{}},
			Results:       []DocumentResult{},
			Message:       "No PDF links found on the specified page",
			ProcessedFrom: seedURL,
			Timestamp:     p.now().Format(time.RFC3339),
		}
	}

	results := []DocumentResult{}
	var failures []DocumentError
	sections := make(map[string]int)

	for i, link := range links {
		if err := ctx.Err(); err != nil {
			failures = append(failures, DocumentError{URL: link.URL, LinkText: link.Text, Error: err.Error()})
			continue
		}

		slog.InfoContext(ctx, "processing pdf", "index", i+1, "total", len(links), "url", link.URL)

		filename := documentFilename(link)
		section := Categorize(link.Text, link.URL, link.NearbyText+" "+link.SectionHeading)

		content, contentType, err := p.downloads.Download(ctx, link.URL)
		if err != nil {
			slog.WarnContext(ctx, "download failed", "url", link.URL, "error", err)
			failures = append(failures, DocumentError{URL: link.URL, LinkText: link.Text, Error: err.Error()})
			continue
		}

		record, err := p.uploads.Upload(ctx, content, filename, section)
		if err != nil {
			slog.WarnContext(ctx, "upload failed", "url", link.URL, "error", err)
			failures = append(failures, DocumentError{URL: link.URL, LinkText: link.Text, Error: err.Error()})
			continue
		}

		// Sections count uploaded documents only, keeping
		// sum(sections) == successful.
		sections[section]++

		results = append(results, DocumentResult{
			OriginalURL: link.URL,
			Filename:    filename,
			LinkText:    link.Text,
			Section:     section,
			StorageKey:  record.Key,
			Size:        len(content),
			ContentType: contentType,
			Timestamp:   p.now().Format(time.RFC3339),
		})
	}

	slog.InfoContext(ctx, "processing completed",
		"successful", len(results), "failed", len(failures), "total", len(links))

	return &Result{
		Success: true,
		Summary: &Summary{
			Total:      len(links),
			Successful: len(results),
			Failed:     len(failures),
			Sections:   sections,
		},
		Results:       results,
		Errors:        failures,
		ProcessedFrom: seedURL,
		Timestamp:     p.now().Format(time.RFC3339),
	}
}

// documentFilename derives a storage filename from the link's URL path,
// falling back to the sanitized anchor text with a .pdf suffix when the
// path has no usable .pdf name.
func documentFilename(link PDFLink) string {
	var name string
	if u, err := url.Parse(link.URL); err == nil {
		name = path.Base(u.Path)
		if name == "." || name == "/" {
			name = ""
		}
	}
	if name == "" || !strings.HasSuffix(name, ".pdf") {
		text := link.Text
		if text == "" {
			text = "document"
		}
		name = SanitizeFilename(text) + ".pdf"
	}
	return name
}
