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

package htmlsniff

import (
	"bytes"

	"golang.org/x/net/html/atom"
)

// ContainsKnownTag reports whether b contains an open or closing tag
// whose name is a standard HTML element, per [atom.Lookup].
// It is a stricter sniff than [LooksLikeHTML]:
// "<madeup>" passes the generic heuristic but fails this one.
func ContainsKnownTag(b []byte) bool {
	// Long enough for every standard element name
	// (the longest is "annotation-xml").
	var lower [16]byte
	for rest := b; ; {
		i := bytes.IndexByte(rest, '<')
		if i < 0 {
			return false
		}
		rest = rest[i+1:]
		name := rest
		if len(name) > 0 && name[0] == '/' {
			name = name[1:]
		}
		n := tagNameLength(name)
		if n == 0 || n > len(lower) {
			continue
		}
		if after := name[n:]; len(after) > 0 && after[0] != '>' && after[0] != '/' && !isSpaceTabOrLineEnding(after[0]) {
			continue
		}
		for j := 0; j < n; j++ {
			lower[j] = toLowerASCII(name[j])
		}
		if atom.Lookup(lower[:n]) != 0 {
			return true
		}
	}
}

// tagNameLength returns the length of the tag name at the start of b:
// an ASCII letter followed by letters, digits, or hyphens.
// It returns zero if b does not start with a tag name.
func tagNameLength(b []byte) int {
	if len(b) == 0 || !isASCIILetter(b[0]) {
		return 0
	}
	n := 1
	for n < len(b) && (isASCIILetter(b[n]) || isASCIIDigit(b[n]) || b[n] == '-') {
		n++
	}
	return n
}
