// Package extract turns uploaded files into plain text for
// classification. Supported inputs are .txt, .pdf and .eml.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/emersion/go-message/mail"
	"github.com/ledongthuc/pdf"
)

var allowedExtensions = map[string]bool{
	".txt": true,
	".pdf": true,
	".eml": true,
}

// Allowed reports whether the file type is supported for upload.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Text extracts plain text from the uploaded file, dispatching on the
// filename extension.
func Text(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return strings.TrimSpace(string(data)), nil
	case ".pdf":
		return pdfText(data)
	case ".eml":
		return emlText(data)
	default:
		return "", fmt.Errorf("unsupported file type %q", ext)
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// emlText returns the message subject followed by its body. A
// text/plain part is preferred; an HTML-only message is stripped to
// text.
func emlText(data []byte) (string, error) {
	mr, err := mail.CreateReader(bytes.NewReader(data))
	if err != nil && mr == nil {
		return "", fmt.Errorf("failed to parse message: %w", err)
	}

	var plain, html strings.Builder
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read message part: %w", err)
		}

		if header, ok := part.Header.(*mail.InlineHeader); ok {
			contentType, _, _ := header.ContentType()
			body, err := io.ReadAll(part.Body)
			if err != nil {
				return "", fmt.Errorf("failed to read message body: %w", err)
			}
			switch contentType {
			case "text/html":
				html.Write(body)
			default:
				plain.Write(body)
			}
		}
	}

	body := strings.TrimSpace(plain.String())
	if body == "" {
		body = StripHTML(html.String())
	}

	subject, _ := mr.Header.Subject()
	if subject != "" {
		return subject + "\n\n" + body, nil
	}
	return body, nil
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// StripHTML reduces an HTML document to its visible text.
func StripHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(tagRe.ReplaceAllString(html, " "))
	}
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text())
}
