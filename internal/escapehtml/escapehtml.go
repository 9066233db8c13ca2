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

// Package escapehtml escapes HTML metacharacters in byte slices.
// The sniffing tests use it to turn markup fixtures into plain text
// that must no longer read as HTML.
package escapehtml

import (
	"bytes"

	"go4.org/bytereplacer"
)

var escaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// Bytes returns a copy of b with HTML metacharacters replaced by
// their entity references. The input is not modified.
func Bytes(b []byte) []byte {
	return escaper.Replace(bytes.Clone(b))
}
