package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"slices"
	"strings"
)

// Request describes one backend call. Method defaults to GET.
type Request struct {
	Method string
	// Path is relative to the base URL; a leading slash does not escape the base path.
	Path string
	// Query is url.Values, map[string]string or map[string]any. Keys are
	// encoded in sorted order, nil values as a bare key, slices repeat the key.
	Query any
	// Body is encoded as JSON. Ignored when Form is set.
	Body any
	// Form sends a multipart/form-data body.
	Form   *Form
	Header http.Header
}

// Form is a multipart body.
type Form struct {
	Fields map[string]string
	Files  []File
}

// File is one multipart file part.
type File struct {
	Field       string
	Filename    string
	ContentType string
	Content     io.Reader
}

// queryPair is one encoded query entry. A nil value renders as a bare key.
type queryPair struct {
	key   string
	value *string
}

// EncodeQuery renders q in deterministic, key-sorted order. Values of one
// key keep their order. A nil value in a map[string]any renders as the bare
// key, so {"k": nil} encodes as "k".
func EncodeQuery(q any) (string, error) {
	var pairs []queryPair
	switch v := q.(type) {
	case nil:
		return "", nil
	case url.Values:
		for k, vs := range v {
			for _, s := range vs {
				pairs = append(pairs, queryPair{k, &s})
			}
		}
	case map[string]string:
		for k, s := range v {
			pairs = append(pairs, queryPair{k, &s})
		}
	case map[string]any:
		for k, item := range v {
			pairs = appendQueryValue(pairs, k, item)
		}
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedType, q)
	}

	slices.SortStableFunc(pairs, func(a, b queryPair) int {
		return strings.Compare(a.key, b.key)
	})

	var buf strings.Builder
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(p.key))
		if p.value != nil {
			buf.WriteByte('=')
			buf.WriteString(url.QueryEscape(*p.value))
		}
	}
	return buf.String(), nil
}

func appendQueryValue(pairs []queryPair, key string, item any) []queryPair {
	str := func(s string) []queryPair { return append(pairs, queryPair{key, &s}) }
	switch v := item.(type) {
	case nil:
		return append(pairs, queryPair{key: key})
	case string:
		return str(v)
	case []string:
		for _, s := range v {
			pairs = append(pairs, queryPair{key, &s})
		}
		return pairs
	case []any:
		for _, s := range v {
			pairs = appendQueryValue(pairs, key, s)
		}
		return pairs
	case fmt.Stringer:
		return str(v.String())
	default:
		return str(fmt.Sprint(v))
	}
}

// resolve joins base and path the way browsers' HTTP clients join a relative
// path onto a base URL that ends in a directory.
func resolve(base *url.URL, path, rawQuery string) string {
	u := *base
	u.Path = strings.TrimRight(base.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawPath = ""
	u.RawQuery = rawQuery
	return u.String()
}

func (c *Client) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := strings.ToUpper(r.Method)
	if method == "" {
		method = http.MethodGet
	}

	query, err := EncodeQuery(r.Query)
	if err != nil {
		return nil, err
	}

	var (
		body        io.Reader
		contentType = "application/json"
	)
	switch {
	case r.Form != nil:
		buf, ct, err := encodeForm(r.Form)
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case r.Body != nil:
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, resolve(c.baseURL, r.Path, query), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", c.userAgent)
	for k, vs := range r.Header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

func encodeForm(f *Form) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for k, v := range f.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("apiclient: writing form field %q: %w", k, err)
		}
	}

	for _, file := range f.Files {
		if file.Field == "" || file.Content == nil {
			return nil, "", fmt.Errorf("%w: form file needs a field name and content", ErrInvalidRequest)
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Filename))
		ct := file.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("apiclient: creating form file %q: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", fmt.Errorf("apiclient: reading form file %q: %w", file.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("apiclient: closing form: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
