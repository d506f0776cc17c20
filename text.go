package ui

import "strings"

// Text layout helpers built on FontRenderer measurement. Widths are in
// unscaled atlas pixels, matching Measure; callers working at a draw
// scale divide their pixel budget by the scale first.

// WrapText wraps text at word boundaries to fit within maxWidth.
// Words longer than maxWidth get a line of their own rather than being
// split. A degraded renderer measures everything as 0, so the text comes
// back as a single line.
func WrapText(fonts *FontRenderer, text string, maxWidth float32) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var currentLine string

	for _, word := range words {
		testLine := currentLine
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		if fonts.Measure(testLine) > maxWidth && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// TruncateText truncates text to fit within maxWidth, appending ".." when
// anything was cut.
func TruncateText(fonts *FontRenderer, text string, maxWidth float32) string {
	return TruncateTextWithSuffix(fonts, text, maxWidth, "..")
}

// TruncateTextWithSuffix truncates text with a custom overflow suffix.
// When even the suffix alone does not fit, the suffix is returned as the
// best effort.
func TruncateTextWithSuffix(fonts *FontRenderer, text string, maxWidth float32, suffix string) string {
	if fonts.Measure(text) <= maxWidth {
		return text
	}

	runes := []rune(text)
	targetWidth := maxWidth - fonts.Measure(suffix)

	for len(runes) > 0 {
		if fonts.Measure(string(runes)) <= targetWidth {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}

	return suffix
}

// MeasureWrappedText returns the bounding size of text wrapped to
// maxWidth: the widest line and lineHeight per line.
func MeasureWrappedText(fonts *FontRenderer, text string, maxWidth float32) Vec2 {
	lines := WrapText(fonts, text, maxWidth)
	if len(lines) == 0 {
		return Vec2{}
	}

	var maxLineWidth float32
	for _, line := range lines {
		if w := fonts.Measure(line); w > maxLineWidth {
			maxLineWidth = w
		}
	}

	return Vec2{
		X: maxLineWidth,
		Y: float32(len(lines)) * fonts.LineHeight(),
	}
}
