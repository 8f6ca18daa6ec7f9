package gui

import (
	"strings"
	"unicode"
)

// TextWrapMode specifies how text should be wrapped.
type TextWrapMode int

const (
	// WrapModeWord wraps at word boundaries (default for Latin text).
	WrapModeWord TextWrapMode = iota
	// WrapModeChar wraps at character boundaries (for CJK or dense text).
	WrapModeChar
	// WrapModeAuto wraps Latin runs at words and CJK runs at characters.
	WrapModeAuto
)

// WrapText wraps text to fit within maxWidth pixels. Explicit newlines always
// break. A single word wider than maxWidth gets a line of its own.
func WrapText(f Font, text string, maxWidth int, mode TextWrapMode) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if maxWidth <= 0 {
			lines = append(lines, para)
			continue
		}
		var wrapped []string
		switch mode {
		case WrapModeChar:
			wrapped = wrapByChar(f, para, maxWidth)
		case WrapModeAuto:
			wrapped = wrapMixed(f, para, maxWidth)
		default:
			wrapped = wrapByWord(f, para, maxWidth)
		}
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

// wrapByWord wraps text at word boundaries.
func wrapByWord(f Font, text string, maxWidth int) []string {
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

		if f.MeasureText(testLine).Width > maxWidth && currentLine != "" {
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

// wrapByChar wraps text at character boundaries.
func wrapByChar(f Font, text string, maxWidth int) []string {
	var lines []string
	var currentLine []rune

	for _, r := range text {
		testLine := append(currentLine, r)
		if f.MeasureText(string(testLine)).Width > maxWidth && len(currentLine) > 0 {
			lines = append(lines, string(currentLine))
			currentLine = []rune{r}
		} else {
			currentLine = testLine
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, string(currentLine))
	}
	return lines
}

// wrapMixed wraps each script run with its own mode and joins runs onto a
// shared line when they fit.
func wrapMixed(f Font, text string, maxWidth int) []string {
	var lines []string
	var currentLine string

	for _, seg := range splitByScript(text) {
		mode := WrapModeWord
		if seg.isCJK {
			mode = WrapModeChar
		}
		segLines := wrapByWord(f, seg.text, maxWidth)
		if mode == WrapModeChar {
			segLines = wrapByChar(f, seg.text, maxWidth)
		}

		for i, line := range segLines {
			switch {
			case i == 0 && currentLine != "":
				if testLine := currentLine + line; f.MeasureText(testLine).Width <= maxWidth {
					currentLine = testLine
					continue
				}
				lines = append(lines, currentLine)
				currentLine = line
			case i == 0:
				currentLine = line
			default:
				if currentLine != "" {
					lines = append(lines, currentLine)
				}
				currentLine = line
			}
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// textSegment is a run of text with uniform script type.
type textSegment struct {
	text  string
	isCJK bool
}

// splitByScript splits text into runs of CJK and non-CJK characters.
func splitByScript(text string) []textSegment {
	var segments []textSegment
	var current []rune
	currentIsCJK := false

	for _, r := range text {
		runeIsCJK := isCJKRune(r)
		if runeIsCJK != currentIsCJK && len(current) > 0 {
			segments = append(segments, textSegment{text: string(current), isCJK: currentIsCJK})
			current = nil
		}
		currentIsCJK = runeIsCJK
		current = append(current, r)
	}

	if len(current) > 0 {
		segments = append(segments, textSegment{text: string(current), isCJK: currentIsCJK})
	}
	return segments
}

// isCJKRune returns true if the rune is a CJK character.
func isCJKRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r) ||
		unicode.In(r, unicode.Bopomofo) ||
		unicode.In(r, unicode.Yi)
}

// TruncateText shortens text to fit maxWidth, ending it with "..".
// It returns the empty string when not even the suffix fits.
func TruncateText(f Font, text string, maxWidth int) string {
	if f.MeasureText(text).Width <= maxWidth {
		return text
	}
	for _, suffix := range []string{"..", "."} {
		if f.MeasureText(suffix).Width > maxWidth {
			continue
		}
		runes := []rune(text)
		for len(runes) > 0 {
			runes = runes[:len(runes)-1]
			if candidate := string(runes) + suffix; f.MeasureText(candidate).Width <= maxWidth {
				return candidate
			}
		}
		return suffix
	}
	return ""
}

// MeasureLines returns the size of a block of lines drawn one below the
// other.
func MeasureLines(f Font, lines []string) Size {
	var size Size
	for _, line := range lines {
		size.Width = maxi(size.Width, f.MeasureText(line).Width)
	}
	size.Height = len(lines) * f.LineHeight()
	return size
}
