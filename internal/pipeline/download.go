package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var pdfMagic = []byte("%PDF")

// Downloader fetches a single PDF payload.
type Downloader struct {
	client *http.Client
}

func NewDownloader(client *http.Client) *Downloader {
	return &Downloader{client: client}
}

// Download fetches rawURL and returns the payload with its declared
// content type. The payload is accepted only when it starts with the PDF
// signature or the declared content type mentions pdf; otherwise a
// ContentTypeError carrying the observed type is returned. No retries.
func (d *Downloader) Download(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/pdf,*/*")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, "", &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &FetchError{URL: rawURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &FetchError{URL: rawURL, Err: err}
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !bytes.HasPrefix(content, pdfMagic) && !strings.Contains(contentType, "pdf") {
		return nil, "", &ContentTypeError{ContentType: contentType}
	}

	return content, contentType, nil
}
