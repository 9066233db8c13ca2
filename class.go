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

const classKeyword = "class"

// IndexClassStart returns the index of the first 'c' or 'C'
// at or after start, or -1 if there is none or start is out of bounds.
// It is a pre-filter for [IsClassKeywordAt]:
// scanning for a single byte is much cheaper than a keyword compare
// at every position.
func IndexClassStart(b []byte, start int) int {
	if start < 0 || start > len(b) {
		return -1
	}
	for i := start; i < len(b); i++ {
		if b[i] == 'c' || b[i] == 'C' {
			return i
		}
	}
	return -1
}

// IsClassKeywordAt reports whether the 5 bytes at i spell "class",
// ignoring ASCII case. It returns false if fewer than 5 bytes remain.
// Bytes after the keyword are not inspected
// ("classy" at 0 reports true); callers that need a word boundary
// must check the following byte themselves.
func IsClassKeywordAt(b []byte, i int) bool {
	if i < 0 || len(b)-i < len(classKeyword) {
		return false
	}
	for j := 0; j < len(classKeyword); j++ {
		// The |0x20 fold is sound here because every byte of the
		// keyword is a lowercase ASCII letter.
		if b[i+j]|0x20 != classKeyword[j] {
			return false
		}
	}
	return true
}

// HasClassAttribute reports whether html contains a "class" keyword
// in attribute position: preceded by ASCII whitespace and followed,
// after optional spaces or tabs, by '='.
// It pairs [IndexClassStart] with [IsClassKeywordAt] and does not
// verify that the match sits inside a tag.
func HasClassAttribute(html []byte) bool {
	for i := IndexClassStart(html, 0); i >= 0; i = IndexClassStart(html, i+1) {
		if !IsClassKeywordAt(html, i) {
			continue
		}
		if i == 0 || !isSpaceTabOrLineEnding(html[i-1]) {
			continue
		}
		j := i + len(classKeyword)
		for j < len(html) && (html[j] == ' ' || html[j] == '\t') {
			j++
		}
		if j < len(html) && html[j] == '=' {
			return true
		}
	}
	return false
}
