// Package web moves Values over HTTP. A request becomes a Map with
// keys env, get, post, cookies and stdin_available; a Value is written
// back in the format named by a MIME type.
package web

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/signadot/univcont/debug"
	"github.com/signadot/univcont/encode"
	"github.com/signadot/univcont/format"
	"github.com/signadot/univcont/ir"
	"github.com/signadot/univcont/parse"
	"github.com/signadot/univcont/token"
)

// DefaultMIMEType is used when no MIME type is given.
const DefaultMIMEType = "application/x-www-form-urlencoded"

// FromEnviron builds a Map from KEY=VALUE strings such as os.Environ.
// Values are typed with StringInterpret.
func FromEnviron(env []string) *ir.Value {
	res := ir.NewMap()
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		res.Put(k, ir.Interpret(v))
	}
	return res
}

func requestEnv(r *http.Request) *ir.Value {
	env := []string{
		"REQUEST_METHOD=" + r.Method,
		"REQUEST_URI=" + r.RequestURI,
		"REMOTE_ADDR=" + r.RemoteAddr,
		"QUERY_STRING=" + r.URL.RawQuery,
	}
	for k, vs := range r.Header {
		name := "HTTP_" + strings.ToUpper(strings.ReplaceAll(k, "-", "_"))
		env = append(env, name+"="+strings.Join(vs, ", "))
	}
	return FromEnviron(env)
}

// DecodeRequest converts r into a Map. get holds the decoded query
// string and post the body decoded by its Content-Type; either is
// false when absent. A body of a type which cannot be decoded is left
// unread and stdin_available is true.
func DecodeRequest(r *http.Request) (*ir.Value, error) {
	res := ir.NewMap()
	res.Put("env", requestEnv(r))

	get := ir.FromBool(false)
	if q := r.URL.RawQuery; q != "" {
		v, err := parse.Form(q)
		if err != nil {
			return nil, err
		}
		get = v
	}
	res.Put("get", get)

	post := ir.FromBool(false)
	available := true
	ct := r.Header.Get("Content-Type")
	if r.Method == http.MethodPost && ct != "" && format.CanDecodeMIMEType(ct) {
		d, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, ir.Errorf(ir.ErrCommunication, nil, "reading body: %v", err)
		}
		post, err = parse.ParseMIME(ct, d)
		if err != nil {
			return nil, err
		}
		available = false
	}
	res.Put("post", post)
	res.Put("stdin_available", ir.FromBool(available))

	cookies := ir.FromBool(false)
	if r.Header.Get("Cookie") != "" {
		cookies = ir.NewMap()
		for _, c := range r.Cookies() {
			cookies.Put(c.Name, ir.Interpret(token.Chomp(c.Value)))
		}
	}
	res.Put("cookies", cookies)
	if debug.Codec() {
		debug.Logf("decoded %s %s", r.Method, r.URL.Path)
	}
	return res, nil
}

// WriteResponse writes v encoded by mimeType, DefaultMIMEType if empty.
// Nothing is written if v cannot be encoded.
func WriteResponse(w http.ResponseWriter, v *ir.Value, mimeType string) error {
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}
	d, err := encode.EncodeMIME(v, mimeType)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", mimeType)
	_, err = w.Write(d)
	return err
}

// Handler serves remote calls made with Call. The request Value is
// the decoded request and the reply is written in the request's
// Content-Type. A failing fn is answered with status 500 and the error
// rendered as a Value.
func Handler(fn func(context.Context, *ir.Value) (*ir.Value, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mt := r.Header.Get("Content-Type")
		if !format.CanDecodeMIMEType(mt) {
			mt = DefaultMIMEType
		}
		req, err := DecodeRequest(r)
		if err != nil {
			writeError(w, err, mt)
			return
		}
		resp, err := fn(r.Context(), req)
		if err != nil {
			writeError(w, err, mt)
			return
		}
		WriteResponse(w, resp, mt)
	})
}

func writeError(w http.ResponseWriter, err error, mimeType string) {
	var e *ir.Error
	if !errors.As(err, &e) {
		e = ir.Errorf(ir.ErrUnknown, nil, "%v", err)
	}
	d, encErr := encode.EncodeMIME(e.Value(), mimeType)
	if encErr != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusInternalServerError)
	w.Write(d)
}

// Call posts v to url encoded by mimeType and decodes the reply by its
// Content-Type. Transport failures and error statuses are
// ir.ErrCommunication errors.
func Call(ctx context.Context, client *http.Client, url string, v *ir.Value, mimeType string) (*ir.Value, error) {
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}
	if client == nil {
		client = http.DefaultClient
	}
	d, err := encode.EncodeMIME(v, mimeType)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(d))
	if err != nil {
		return nil, ir.Errorf(ir.ErrCommunication, nil, "%v", err)
	}
	req.Header.Set("Content-Type", mimeType)
	resp, err := client.Do(req)
	if err != nil {
		return nil, ir.Errorf(ir.ErrCommunication, nil, "%v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ir.Errorf(ir.ErrCommunication, nil, "reading reply: %v", err)
	}
	if resp.StatusCode/100 != 2 {
		return nil, ir.Errorf(ir.ErrCommunication, nil, "%s: %s", resp.Status, bytes.TrimSpace(body))
	}
	return parse.ParseMIME(resp.Header.Get("Content-Type"), body)
}
