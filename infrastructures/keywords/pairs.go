package keywords

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// NameAddressPair couples a name-like line with a nearby address-like
// line from line-oriented text such as OCR output.
type NameAddressPair struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// pairScanWindow is how many lines below a name line are checked for an
// address.
const pairScanWindow = 4

// minPairAddressLen is the minimum address length after normalization.
const minPairAddressLen = 5

var (
	// noiseLineRe rejects lines that cannot be a bare store name
	noiseLineRe = regexp.MustCompile(`[@#]|위치|주소|장소|팔로워|팔로우|게시물|좋아요|followers?|following`)

	// nameLineRe accepts a short alphanumeric/Hangul token line
	nameLineRe = regexp.MustCompile(`^[가-힣A-Za-z0-9][가-힣A-Za-z0-9\s&.\-']{1,24}$`)

	// addressLabelRe captures an address after an explicit label
	addressLabelRe = regexp.MustCompile(`(?:위치|주소|장소)\s*[:：]\s*(.+)`)

	// inlineAddressRe matches a street-type+number shape mid-line
	inlineAddressRe = regexp.MustCompile(`(?:(?:서울|부산|대구|인천|광주|대전|울산|세종)\s*|[가-힣]+(?:특별시|광역시|시|도)\s*)?[가-힣]+(?:시|군|구)\s+[가-힣A-Za-z0-9]+(?:로|길|가)\s*[0-9]+(?:-[0-9]+)?`)
)

// ExtractPairs walks the text line by line, pairing each name-like line
// with the first address-like line within the scan window below it.
// Pairs are deduplicated by the name|address key in first-seen order.
func ExtractPairs(text string) []NameAddressPair {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return nil
	}

	seen := map[string]bool{}
	var pairs []NameAddressPair

	for i, line := range lines {
		if !isNameLine(line) {
			continue
		}

		end := i + pairScanWindow
		if end > len(lines)-1 {
			end = len(lines) - 1
		}
		for j := i + 1; j <= end; j++ {
			address := extractAddress(lines[j])
			if address == "" {
				continue
			}
			if utf8.RuneCountInString(address) < minPairAddressLen {
				break
			}

			name := NormalizeCandidate(line)
			key := name + "|" + address
			if !seen[key] {
				seen[key] = true
				pairs = append(pairs, NameAddressPair{Name: name, Address: address})
			}
			break
		}
	}

	return pairs
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

func isNameLine(line string) bool {
	if noiseLineRe.MatchString(line) {
		return false
	}
	return nameLineRe.MatchString(line)
}

// extractAddress returns the address carried by a line, or empty.
func extractAddress(line string) string {
	if m := addressLabelRe.FindStringSubmatch(line); len(m) > 1 {
		return NormalizeCandidate(m[1])
	}
	if m := inlineAddressRe.FindString(line); m != "" {
		return NormalizeCandidate(m)
	}
	return ""
}
