package grouping

import "github.com/mkoester/lightbox/pkg/gallery"

// UncategorizedTitle names the fallback topic group. It always sorts last.
const UncategorizedTitle = "uncategorized"

// Topic is a curated group definition: a title plus the ids it claims.
type Topic struct {
	Title     string   `json:"title" bson:"title"`
	MemberIDs []string `json:"member_ids" bson:"member_ids"`
}

// ByTopic partitions ids into the given topics. Each id lands in the first
// topic that claims it; ids no topic claims collect in a trailing
// "uncategorized" group. Topics that end up empty are dropped. Members keep
// their input order within each group.
func ByTopic(ids []string, topics []Topic) []gallery.Group {
	claimed := make(map[string]int, len(ids)) // id -> topic index
	for i, topic := range topics {
		for _, id := range topic.MemberIDs {
			if _, ok := claimed[id]; !ok {
				claimed[id] = i
			}
		}
	}

	members := make([][]string, len(topics))
	var leftover []string
	for _, id := range ids {
		if i, ok := claimed[id]; ok {
			members[i] = append(members[i], id)
		} else {
			leftover = append(leftover, id)
		}
	}

	groups := make([]gallery.Group, 0, len(topics)+1)
	for i, topic := range topics {
		if len(members[i]) == 0 {
			continue
		}
		groups = append(groups, gallery.Group{
			ID:        gallery.HeaderID(topic.Title),
			Title:     topic.Title,
			MemberIDs: members[i],
		})
	}
	if len(leftover) > 0 {
		groups = append(groups, gallery.Group{
			ID:        gallery.HeaderID(UncategorizedTitle),
			Title:     UncategorizedTitle,
			MemberIDs: leftover,
		})
	}
	return groups
}
