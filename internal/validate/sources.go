package validate

import (
	"strings"
	"unicode/utf8"
)

// SourceScheme is the only URI scheme accepted in a source list
const SourceScheme = "s3://"

// Sources checks a trimmed source list for encoding, scheme and exact-string
// uniqueness. All offending entries are reported together; order is kept.
// Lines that are not valid UTF-8 are only reported as encoding errors,
// since their bytes cannot be carried into the JSON manifest.
func Sources(lines []string) ([]string, error) {
	var badEncoding, nonS3, dupes []string
	counts := make(map[string]int, len(lines))

	for _, line := range lines {
		if !utf8.ValidString(line) {
			badEncoding = append(badEncoding, line)
			continue
		}
		if !strings.HasPrefix(line, SourceScheme) {
			nonS3 = append(nonS3, line)
		}
		counts[line]++
		if counts[line] == 2 {
			dupes = append(dupes, line)
		}
	}

	if len(badEncoding) > 0 || len(nonS3) > 0 || len(dupes) > 0 {
		return nil, &SourceError{BadEncoding: badEncoding, NonS3: nonS3, Duplicates: dupes}
	}

	out := make([]string, len(lines))
	copy(out, lines)
	return out, nil
}
