package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

const viewableDriveURL = "https://drive.usercontent.google.com/download?id=%s&export=view&authuser=0"

var (
	drivePathID  = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)
	driveQueryID = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
	driveBareID  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// DriveLink rewrites a Google Drive file link (or a bare file ID) into a URL
// that renders the file inline. Anything it cannot recognise is returned as is.
func DriveLink(link string) string {
	if strings.TrimSpace(link) == "" {
		return ""
	}
	if strings.Contains(link, "drive.usercontent.google.com/download") {
		return link
	}

	id := driveFileID(link)
	if id == "" {
		return link
	}
	return fmt.Sprintf(viewableDriveURL, id)
}

// driveFileID tries, in order: /file/d/<id>, ?id=<id> or &id=<id>, bare id.
func driveFileID(link string) string {
	if m := drivePathID.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	if m := driveQueryID.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	if trimmed := strings.TrimSpace(link); driveBareID.MatchString(trimmed) {
		return trimmed
	}
	return ""
}
