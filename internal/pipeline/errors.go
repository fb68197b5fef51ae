package pipeline

import "fmt"

// FetchError reports a transport failure (network error, timeout or
// non-2xx status) while fetching a page or a document.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ContentTypeError reports a downloaded payload that is neither
// PDF-signed nor declared as PDF by the server.
type ContentTypeError struct {
	ContentType string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("invalid file type, expected PDF, got: %s", e.ContentType)
}
