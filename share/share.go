// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package share encodes a raw benchmark document into a URL so it can
// be reopened elsewhere, and copies such links to the clipboard.
package share

import (
	"context"
	"net/url"

	"github.com/atotto/clipboard"
)

// Param is the query parameter carrying the raw benchmark document.
const Param = "benchmarkId"

// Link returns base with its Param query parameter set to raw. Other
// query parameters of base are kept.
func Link(base, raw string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(Param, raw)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FromQuery returns the shared document in q, if any.
func FromQuery(q url.Values) (string, bool) {
	if _, ok := q[Param]; !ok {
		return "", false
	}
	return q.Get(Param), true
}

// FromURL returns the shared document carried by the link rawURL.
func FromURL(rawURL string) (raw string, ok bool, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false, err
	}
	raw, ok = FromQuery(u.Query())
	return raw, ok, nil
}

// A Clipboard receives copied links.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Copy writes link to cb in the background and reports the outcome
// to done, which may be nil. Copy does not wait for the write. done
// is not called if ctx is cancelled first.
func Copy(ctx context.Context, cb Clipboard, link string, done func(error)) {
	go func() {
		err := cb.WriteAll(link)
		if done == nil {
			return
		}
		select {
		case <-ctx.Done():
		default:
			done(err)
		}
	}()
}
