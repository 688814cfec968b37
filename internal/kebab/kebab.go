// Copyright (c) 2025-present deep.rent GmbH (https://deep.rent)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kebab converts CamelCase identifiers to lowercase kebab-case
// strings, the conventional spelling of long option names.
package kebab

import (
	"strings"
	"unicode"
)

// Case converts a CamelCase string to a lowercase kebab-case string.
//
// For example, "NoColor" is converted to "no-color", and "APIKey" becomes
// "api-key". Digits are treated like capitals, so "http2" becomes "http-2".
func Case(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 5)
	runes := []rune(s)
	for i, r := range runes {
		// Insert a dash before a capital letter or digit.
		if i != 0 {
			q := runes[i-1]
			if (unicode.IsLower(q) &&
				// Case 1: Lowercase to uppercase/digit transition ("myVar", "myVar1").
				(unicode.IsUpper(r) || unicode.IsDigit(r))) ||
				(unicode.IsUpper(q) &&
					// Case 2: Acronym to new word transition ("MYVar").
					unicode.IsUpper(r) &&
					i+1 < len(runes) &&
					unicode.IsLower(runes[i+1])) {
				b.WriteRune('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
