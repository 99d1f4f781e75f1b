package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/jobmatch/internal/client/endpoints"
)

// File is a multipart upload. Content is kept in memory so the body can be
// rebuilt for a retry.
type File struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// Request describes one logical API call. It is not modified by Do and may
// be reused.
type Request struct {
	Endpoint   endpoints.Endpoint
	PathParams map[string]string
	Query      url.Values
	// Body is sent as JSON. Ignored when File is set.
	Body any
	File *File
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encode builds a fresh body for one attempt.
func (r *Request) encode() (io.Reader, string, error) {
	switch {
	case r.File != nil:
		return r.encodeMultipart()
	case r.Body != nil:
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, "", fmt.Errorf("encode request body: %w", err)
		}
		return bytes.NewReader(b), "application/json", nil
	default:
		return nil, "", nil
	}
}

func (r *Request) encodeMultipart() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(r.File.Field), quoteEscaper.Replace(r.File.Name)))
	ct := r.File.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(r.File.Content); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
