package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/ledongthuc/pdf"
)

// FetchError reports that the document could not be retrieved. Status is the
// HTTP status of the last attempt, or 0 for a transport-level failure.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch document failed (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("fetch document failed (status %d)", e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports that the fetched bytes were not a readable PDF.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode pdf failed: %v", e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

// URLSigner resolves a stored object's signed retrieval URL from its public
// URL, for providers that require authenticated access to non-public assets.
type URLSigner interface {
	SignedGetURL(ctx context.Context, rawURL string) (string, error)
}

// Extractor fetches a stored PDF document and extracts its plain text.
type Extractor struct {
	signer     URLSigner
	httpClient *http.Client
}

func NewExtractor(signer URLSigner) *Extractor {
	return &Extractor{
		signer:     signer,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Extract retrieves the document at rawURL and returns its plain-text content.
// Retrieval tries a signed URL first; a signing failure falls back to the raw
// URL, and a non-success status on the primary fetch is retried exactly once
// against the raw URL. There is no further retry and no caching.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (string, error) {
	fetchURL := rawURL
	if e.signer != nil {
		signed, err := e.signer.SignedGetURL(ctx, rawURL)
		if err != nil {
			log.Printf("signing document url failed, falling back to raw url: %v", err)
		} else {
			fetchURL = signed
		}
	}

	data, status, err := e.fetch(ctx, fetchURL)
	if err != nil {
		return "", &FetchError{Status: status, Err: err}
	}
	if status >= 300 {
		data, status, err = e.fetch(ctx, rawURL)
		if err != nil {
			return "", &FetchError{Status: status, Err: err}
		}
		if status >= 300 {
			return "", &FetchError{Status: status}
		}
	}

	text, err := pdfText(data)
	if err != nil {
		return "", &DecodeError{Err: err}
	}
	return text, nil
}

func (e *Extractor) fetch(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build document request failed: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("document request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, resp.StatusCode, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read document body failed: %w", err)
	}
	return data, resp.StatusCode, nil
}

// pdfText decodes b as a PDF document and returns its extracted plain text.
// Returns empty string for a PDF with no extractable text.
func pdfText(b []byte) (string, error) {
	if len(b) == 0 {
		return "", fmt.Errorf("empty document")
	}
	pdfReader, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return "", err
	}
	plainReader, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(plainReader)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
