package main

import "strings"

func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	leftPadding := (width - len(text)) / 2
	return strings.Repeat(" ", leftPadding) + text
}

// shortenString trims s to maxLength by keeping the start and end with
// ".." in between. Odd maxLength gives the extra character to the front
// part. A maxLength below 3 just truncates.
func shortenString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength < 3 {
		return s[:maxLength]
	}

	partLength := (maxLength - 2) / 2
	firstPart := s[:partLength+maxLength%2]
	lastPart := s[len(s)-partLength:]
	return firstPart + ".." + lastPart
}
