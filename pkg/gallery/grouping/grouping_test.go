package grouping

import (
	"reflect"
	"testing"

	"github.com/mkoester/lightbox/pkg/gallery"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alice", "A"},
		{"alice", "A"},
		{"  bob", "B"},
		{"42nd Street", "0-9"},
		{"9", "0-9"},
		{"张伟", "Z"},
		{"李娜", "L"},
		{"!bang", "#"},
		{"", "#"},
		{"   ", "#"},
		{"émile", "É"},
	}
	for _, tt := range tests {
		if got := Bucket(tt.name); got != tt.want {
			t.Errorf("Bucket(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestByInitialOrdering(t *testing.T) {
	ids := []string{"p1", "p2", "p3", "p4", "p5"}
	names := map[string]string{
		"p1": "Zoe",
		"p2": "!anon",
		"p3": "7of9",
		"p4": "Ann",
		"p5": "zach",
	}

	groups := ByInitial(ids, names)

	titles := make([]string, len(groups))
	for i, g := range groups {
		titles[i] = g.Title
	}
	want := []string{"0-9", "A", "Z", "#"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("group order = %v, want %v", titles, want)
	}

	// Members keep input order within a bucket.
	if !reflect.DeepEqual(groups[2].MemberIDs, []string{"p1", "p5"}) {
		t.Errorf("Z members = %v, want [p1 p5]", groups[2].MemberIDs)
	}

	// Group ids carry the synthetic header prefix.
	if !gallery.IsHeaderID(groups[0].ID) {
		t.Errorf("group id %q should be a header id", groups[0].ID)
	}
}

func TestByInitialCoversEveryone(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	names := map[string]string{"a": "Ann", "b": "张伟", "c": "3po"}
	// "d" has no name at all and must still land somewhere.

	groups := ByInitial(ids, names)

	seen := make(map[string]bool)
	for _, g := range groups {
		for _, id := range g.MemberIDs {
			if seen[id] {
				t.Errorf("id %s appears in more than one group", id)
			}
			seen[id] = true
		}
	}
	if len(seen) != len(ids) {
		t.Errorf("grouped %d ids, want %d", len(seen), len(ids))
	}
	if groups[len(groups)-1].Title != "#" {
		t.Errorf("last group = %q, want #", groups[len(groups)-1].Title)
	}
}

func TestByTopic(t *testing.T) {
	topics := []Topic{
		{Title: "family", MemberIDs: []string{"p1", "p2"}},
		{Title: "work", MemberIDs: []string{"p2", "p3"}},
		{Title: "club", MemberIDs: []string{"p9"}},
	}
	ids := []string{"p1", "p2", "p3", "p4"}

	groups := ByTopic(ids, topics)

	titles := make([]string, len(groups))
	for i, g := range groups {
		titles[i] = g.Title
	}
	// club is empty and dropped; uncategorized trails.
	want := []string{"family", "work", "uncategorized"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("group order = %v, want %v", titles, want)
	}

	// p2 is claimed by family first, so work only gets p3.
	if !reflect.DeepEqual(groups[0].MemberIDs, []string{"p1", "p2"}) {
		t.Errorf("family members = %v", groups[0].MemberIDs)
	}
	if !reflect.DeepEqual(groups[1].MemberIDs, []string{"p3"}) {
		t.Errorf("work members = %v", groups[1].MemberIDs)
	}
	if !reflect.DeepEqual(groups[2].MemberIDs, []string{"p4"}) {
		t.Errorf("uncategorized members = %v", groups[2].MemberIDs)
	}
}

func TestByTopicAllClaimed(t *testing.T) {
	topics := []Topic{{Title: "only", MemberIDs: []string{"a", "b"}}}
	groups := ByTopic([]string{"a", "b"}, topics)
	if len(groups) != 1 || groups[0].Title != "only" {
		t.Fatalf("groups = %+v, want single 'only' group", groups)
	}
}

func TestAll(t *testing.T) {
	groups := All([]string{"x", "y"})
	if len(groups) != 1 {
		t.Fatalf("All returned %d groups, want 1", len(groups))
	}
	if groups[0].Title != AllGroupID {
		t.Errorf("title = %q, want %q", groups[0].Title, AllGroupID)
	}
	if !reflect.DeepEqual(groups[0].MemberIDs, []string{"x", "y"}) {
		t.Errorf("members = %v", groups[0].MemberIDs)
	}
}

func TestFilter(t *testing.T) {
	ids := []string{"p1", "p2", "p3"}
	names := map[string]string{"p1": "Alice", "p2": "Bob", "p3": "ALINA"}

	got := Filter(ids, names, "ali")
	if !reflect.DeepEqual(got, []string{"p1", "p3"}) {
		t.Errorf("Filter = %v, want [p1 p3]", got)
	}

	// Empty query keeps everything.
	if got := Filter(ids, names, ""); !reflect.DeepEqual(got, ids) {
		t.Errorf("empty query Filter = %v, want %v", got, ids)
	}

	// No matches yields an empty, non-nil slice.
	if got := Filter(ids, names, "zzz"); len(got) != 0 {
		t.Errorf("Filter = %v, want empty", got)
	}
}
