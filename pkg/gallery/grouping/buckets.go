// Package grouping partitions gallery items into named groups for the
// grouped overview layouts. Every function is pure: the same inputs
// always produce the same groups in the same order.
package grouping

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mkoester/lightbox/pkg/gallery"
)

// Bucket names for entries that do not sort alphabetically.
const (
	BucketDigits = "0-9" // always first
	BucketOther  = "#"   // always last
)

// AllGroupID identifies the catch-all group used when grouping is disabled.
const AllGroupID = "all"

var pinyinArgs = pinyin.NewArgs()

// Bucket returns the group key for a display name. Names starting with a
// digit land in "0-9", Han characters are bucketed by their pinyin initial,
// Latin and other cased letters by their uppercased first rune, and anything
// else in "#".
func Bucket(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return BucketOther
	}

	r := []rune(trimmed)[0]
	switch {
	case unicode.IsDigit(r):
		return BucketDigits
	case unicode.Is(unicode.Han, r):
		if initial := pinyinInitial(r); initial != "" {
			return initial
		}
		return BucketOther
	case unicode.IsLetter(r):
		return strings.ToUpper(string(r))
	default:
		return BucketOther
	}
}

// pinyinInitial returns the uppercased first letter of the pinyin reading
// of a Han rune, or "" when no reading exists.
func pinyinInitial(r rune) string {
	readings := pinyin.Pinyin(string(r), pinyinArgs)
	if len(readings) == 0 || len(readings[0]) == 0 || readings[0][0] == "" {
		return ""
	}
	return strings.ToUpper(readings[0][0][:1])
}

// ByInitial partitions ids into alphabetic groups keyed by the first rune of
// each display name. The digit bucket sorts first and the "#" bucket last;
// letter buckets are ordered with locale-aware collation. Members keep their
// input order within each group. Ids without a display name fall into "#".
func ByInitial(ids []string, names map[string]string) []gallery.Group {
	members := make(map[string][]string)
	for _, id := range ids {
		bucket := Bucket(names[id])
		members[bucket] = append(members[bucket], id)
	}

	letters := make([]string, 0, len(members))
	for bucket := range members {
		if bucket != BucketDigits && bucket != BucketOther {
			letters = append(letters, bucket)
		}
	}
	collate.New(language.Und).SortStrings(letters)

	ordered := make([]string, 0, len(members))
	if _, ok := members[BucketDigits]; ok {
		ordered = append(ordered, BucketDigits)
	}
	ordered = append(ordered, letters...)
	if _, ok := members[BucketOther]; ok {
		ordered = append(ordered, BucketOther)
	}

	groups := make([]gallery.Group, 0, len(ordered))
	for _, bucket := range ordered {
		groups = append(groups, gallery.Group{
			ID:        gallery.HeaderID(bucket),
			Title:     bucket,
			MemberIDs: members[bucket],
		})
	}
	return groups
}

// All returns a single catch-all group holding every id, used when grouping
// is disabled but the grouped code path still runs.
func All(ids []string) []gallery.Group {
	return []gallery.Group{{
		ID:        gallery.HeaderID(AllGroupID),
		Title:     AllGroupID,
		MemberIDs: ids,
	}}
}

// Filter returns the ids whose display name contains query, matched
// case-insensitively. An empty query keeps everything.
func Filter(ids []string, names map[string]string, query string) []string {
	if query == "" {
		return ids
	}
	needle := strings.ToLower(query)
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.Contains(strings.ToLower(names[id]), needle) {
			kept = append(kept, id)
		}
	}
	return kept
}
