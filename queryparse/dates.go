// Copyright 2025 Poiesic Systems
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


package queryparse

import (
	"strings"
	"time"
)

// Absolute date layouts tried in order after the relative forms fail.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"January 2006",
	"Jan 2006",
	"2006-01-02",
	"01/02/2006",
}

// ParseDateExpression resolves a date expression produced by the parser
// prompt ("recent", "last 30 days", "January 2025", ...) into a Unix
// timestamp cutoff. Relative expressions are anchored at now. Returns
// false when the expression is empty, "null", or unrecognized.
func ParseDateExpression(expr string, now time.Time) (int64, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" || strings.EqualFold(expr, "null") {
		return 0, false
	}

	lower := strings.ToLower(expr)

	// "recent" means the last 30 days
	if strings.Contains(lower, "recent") {
		return now.AddDate(0, 0, -30).Unix(), true
	}

	// "last N days/weeks/months" with the number pulled from anywhere
	// in the expression. A month counts as 30 days.
	if strings.Contains(lower, "last") {
		if n, ok := extractDigits(lower); ok {
			switch {
			case strings.Contains(lower, "day"):
				return now.AddDate(0, 0, -n).Unix(), true
			case strings.Contains(lower, "week"):
				return now.AddDate(0, 0, -n*7).Unix(), true
			case strings.Contains(lower, "month"):
				return now.AddDate(0, 0, -n*30).Unix(), true
			}
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, expr); err == nil {
			return t.Unix(), true
		}
	}

	return 0, false
}

// extractDigits concatenates every digit in s into one number, so
// "last 30 days" yields 30 and "last 2 weeks" yields 2.
func extractDigits(s string) (int, bool) {
	n := 0
	found := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			found = true
		}
	}
	return n, found
}
