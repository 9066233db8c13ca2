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

package htmlsniff_test

import (
	"fmt"

	"zombiezen.com/go/htmlsniff"
)

func ExampleLooksLikeHTML() {
	fmt.Println(htmlsniff.LooksLikeHTML([]byte("Hello, <em>World</em>!")))
	fmt.Println(htmlsniff.LooksLikeHTML([]byte("2 < 3 and 4 > 1")))
	// Output:
	// true
	// false
}

func ExampleContainsOpenTag() {
	page := []byte(`<DIV class="note">Take care.</DIV>`)
	fmt.Println(htmlsniff.ContainsOpenTag(page, "div"))
	fmt.Println(htmlsniff.ContainsOpenTag(page, "span"))
	// Output:
	// true
	// false
}

func ExampleIsClassKeywordAt() {
	attrs := []byte(`id="x" CLASS="note"`)
	i := htmlsniff.IndexClassStart(attrs, 0)
	fmt.Println(i, htmlsniff.IsClassKeywordAt(attrs, i))
	// Output:
	// 7 true
}
