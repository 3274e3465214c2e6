package normalize

import "strings"

// ParseTags splits a comma-separated tag string. Pieces are trimmed, empty
// pieces are dropped, order is kept and duplicates are not removed. The result
// is never nil so it encodes as [] rather than null.
func ParseTags(raw string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
