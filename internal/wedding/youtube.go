package wedding

import "regexp"

var youtubeRe = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)

// ExtractYoutubeID pulls the 11-character video id out of the common
// YouTube link shapes (watch?v=, youtu.be/, embed/). Anything else,
// including an empty url, yields "".
func ExtractYoutubeID(url string) string {
	m := youtubeRe.FindStringSubmatch(url)
	if len(m) == 2 && len(m[1]) == 11 {
		return m[1]
	}
	return ""
}
