package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/schema"
)

// maxJSONBody caps JSON payloads of non-upload endpoints.
const maxJSONBody = 1 << 20

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	return d
}

// decodePayload fills dst from the request payload. JSON bodies, query
// strings and url-encoded forms are all normalized to key/value pairs first,
// so every endpoint accepts any of them.
func decodePayload(r *http.Request, dst any) error {
	values, err := payloadValues(r)
	if err != nil {
		return err
	}
	return decodeValues(values, dst)
}

func decodeValues(values url.Values, dst any) error {
	if err := decoder.Decode(dst, values); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// payloadValues normalizes the request payload. A body that cannot be
// parsed, JSON or form, is an empty payload, so validation reports the
// missing fields. Only a body over the size limit is an error.
func payloadValues(r *http.Request) (url.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case mediaType == "application/json":
		return jsonValues(io.LimitReader(r.Body, maxJSONBody)), nil
	case r.Method == http.MethodGet:
		return r.URL.Query(), nil
	default:
		if err := r.ParseForm(); err != nil {
			if isTooLarge(err) {
				return nil, fmt.Errorf("parse form: %w", err)
			}
			return url.Values{}, nil
		}
		return r.PostForm, nil
	}
}

func jsonValues(body io.Reader) url.Values {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return url.Values{}
	}

	values := make(url.Values, len(raw))
	for key, v := range raw {
		if s, ok := scalarString(v); ok {
			values.Set(key, s)
		}
	}
	return values
}

// scalarString renders a decoded JSON value the way a form would carry it.
// Nested objects and arrays are re-encoded as JSON text; null is dropped.
func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case json.Number:
		return t.String(), true
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

// isTooLarge reports whether err came from an http.MaxBytesReader limit.
func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
