// Package text holds small display-name helpers shared by registration and
// the database seeder.
package text

import "strings"

// FirstName returns the first token of a full name, with surrounding and
// repeated whitespace collapsed. Blank input yields "".
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Capitalize uppercases the first letter of every word and lowercases the
// rest. Hyphenated words are capitalized part by part, and whitespace is
// collapsed to single spaces.
func Capitalize(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	for i, word := range fields {
		if strings.Contains(word, "-") {
			parts := strings.Split(word, "-")
			for j, part := range parts {
				parts[j] = capitalizeWord(part)
			}
			fields[i] = strings.Join(parts, "-")
			continue
		}
		fields[i] = capitalizeWord(word)
	}

	return strings.Join(fields, " ")
}

func capitalizeWord(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
