// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package htmlsniff provides cheap heuristics for detecting HTML-like
// structure in byte slices without parsing the markup.
//
// Every function is a pure scan over a caller-owned buffer:
// no allocation on the ASCII paths, no side effects, and a definite
// boolean or index result for any input, including empty slices and
// out-of-range offsets. All functions are safe for concurrent use
// as long as the caller does not mutate the buffer mid-call.
package htmlsniff

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// LooksLikeHTML reports whether b contains anything resembling an HTML tag.
// It requires a '<' followed by a byte that could start an open tag,
// closing tag, doctype, or comment, with a '>' somewhere later.
// This is a sniff, not a validator: it accepts strings like
// "<!-- no close delimiter nearby>" as a deliberate trade-off for speed.
func LooksLikeHTML(b []byte) bool {
	i := bytes.IndexByte(b, '<')
	if i < 0 || i+1 >= len(b) {
		return false
	}
	// The byte after '<' rules out "< foo" and other constructs
	// that cannot start a tag.
	if c := b[i+1]; !isASCIILetter(c) && c != '/' && c != '!' {
		return false
	}
	return bytes.IndexByte(b[i+2:], '>') >= 0
}

// ContainsOpenTag reports whether html contains an open tag named tagName
// (closing tags never match). The comparison is case-insensitive:
// a byte-wise ASCII fold when tagName is pure ASCII,
// otherwise a full Unicode case-folding comparison.
// A candidate only counts when the byte after the name is end-of-input
// or one of '>', '/', space, tab, CR, LF, so "div" does not match
// inside "<divvy>".
func ContainsOpenTag(html []byte, tagName string) bool {
	if len(html) == 0 || len(tagName) == 0 {
		return false
	}
	ascii := isASCIIString(tagName)
	for rest := html; ; {
		i := bytes.IndexByte(rest, '<')
		if i < 0 {
			return false
		}
		rest = rest[i+1:]
		if len(rest) > 0 && rest[0] == '/' {
			// Closing tag.
			rest = rest[1:]
			continue
		}
		if len(rest) < len(tagName) {
			continue
		}
		var match bool
		if ascii {
			match = hasCaseInsensitiveBytePrefix(rest, tagName)
		} else {
			match = foldEqual(rest[:len(tagName)], tagName)
		}
		if !match {
			continue
		}
		after := rest[len(tagName):]
		if len(after) == 0 || after[0] == '>' || after[0] == '/' || isSpaceTabOrLineEnding(after[0]) {
			return true
		}
	}
}

func hasCaseInsensitiveBytePrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i, bb := range b[:len(prefix)] {
		if toLowerASCII(prefix[i]) != toLowerASCII(bb) {
			return false
		}
	}
	return true
}

// foldEqual compares a byte window against a tag name containing
// non-ASCII characters. Full case folding handles casings the
// single-byte fold cannot (e.g. 'İ', 'ẞ'). This is the slow path;
// it allocates and only runs for non-ASCII tag names.
func foldEqual(b []byte, s string) bool {
	c := cases.Fold()
	return c.String(string(b)) == c.String(s)
}

func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpaceTabOrLineEnding(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
