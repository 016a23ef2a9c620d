package loader

import (
	"regexp"
	"strings"
)

var (
	bracketRe  = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)
	rereadRe   = regexp.MustCompile(`\breread\b.*$`)
	punctRe    = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	spaceRe    = regexp.MustCompile(`\s+`)
	parenSufRe = regexp.MustCompile(`\s*\([^)]*\)`)
	brackSufRe = regexp.MustCompile(`\s*\[[^\]]*\]`)
	dblSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// CanonTitle canonicalizes a title for joining across the two exports:
// lowercase, drop bracketed/parenthetical segments, normalize dashes, drop a
// trailing "reread ..." marker, strip punctuation, collapse whitespace.
// Two titles with equal canonical forms are treated as the same work.
func CanonTitle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = bracketRe.ReplaceAllString(s, "")
	s = strings.NewReplacer("—", "-", "–", "-").Replace(s)
	s = rereadRe.ReplaceAllString(s, "")
	s = punctRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// DisplayTitle pretty-prints a title for the UI: keeps case, removes (#2)
// and [reread] style suffixes, collapses doubled spaces. Never used for
// joining.
func DisplayTitle(s string) string {
	s = parenSufRe.ReplaceAllString(s, "")
	s = brackSufRe.ReplaceAllString(s, "")
	s = dblSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
