// Package pipeline discovers PDF links on a policy page, categorizes them
// by keyword rules and uploads them to object storage under a deterministic
// key layout.
package pipeline

import "context"

// PDFLink is one candidate document found on a page. NearbyText and
// SectionHeading are best-effort context signals used for categorization
// and carry no correctness guarantee on text boundaries.
type PDFLink struct {
	URL            string `json:"url"`
	Text           string `json:"text"`
	NearbyText     string `json:"nearby_text"`
	SectionHeading string `json:"section_heading"`
}

// ObjectStore is the blob layer the uploader writes through. Writes
// overwrite any existing object at the same key.
type ObjectStore interface {
	Put(ctx context.Context, key string, content []byte, contentType string, metadata map[string]string) error
}

// Summary aggregates one pipeline run. Total == Successful + Failed and
// Sections counts successfully uploaded documents only.
type Summary struct {
	Total      int            `json:"total"`
	Successful int            `json:"successful"`
	Failed     int            `json:"failed"`
	Sections   map[string]int `json:"sections"`
}

type DocumentResult struct {
	OriginalURL string `json:"original_url"`
	Filename    string `json:"filename"`
	LinkText    string `json:"link_text"`
	Section     string `json:"section"`
	StorageKey  string `json:"storage_key"`
	Size        int    `json:"size"`
	ContentType string `json:"content_type"`
	Timestamp   string `json:"timestamp"`
}

type DocumentError struct {
	URL      string `json:"url"`
	LinkText string `json:"link_text"`
	Error    string `json:"error"`
}

// Result is the aggregate outcome of one run over one seed URL. It is
// constructed fresh per invocation and not mutated after being returned.
type Result struct {
	Success       bool             `json:"success"`
	Summary       *Summary         `json:"summary,omitempty"`
	Results       []DocumentResult `json:"results"`
	Errors        []DocumentError  `json:"errors,omitempty"`
	Message       string           `json:"message,omitempty"`
	Error         string           `json:"error,omitempty"`
	ProcessedFrom string           `json:"processed_from,omitempty"`
	Timestamp     string           `json:"timestamp"`
}
