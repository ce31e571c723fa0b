// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

// SanitizeToken masks a credential for logging, keeping only the first and
// last 4 characters. Tokens of 12 characters or fewer are fully masked.
//
//	"abcdefghijklmnop" -> "abcd...mnop"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
