package pipeline

import (
	"sort"

	"github.com/mkoester/lightbox/pkg/gallery"
	"github.com/mkoester/lightbox/pkg/gallery/grouping"
	"github.com/mkoester/lightbox/pkg/gallery/layout"
	"github.com/mkoester/lightbox/pkg/library"
)

// BuildInput assembles the layout engine input from a scanned catalog and
// pipeline options. This is where grouping policy lives; the engine itself
// only consumes the prepared group lists.
func BuildInput(lib *library.Library, opts Options) layout.Input {
	ids := lib.ItemIDs()
	meta := lib.Metadata()
	names := lib.Names()

	in := layout.Input{
		Items:          ids,
		Ratios:         gallery.Ratios(ids, meta),
		Mode:           gallery.Mode(opts.Mode),
		View:           gallery.ViewKind(opts.View),
		ContainerWidth: opts.ContainerWidth,
		CellSize:       opts.CellSize,
		TagFilter:      opts.TagFilter,
		Grouped:        opts.Grouped,
		Collapsed:      opts.Collapsed,
	}

	switch gallery.ViewKind(opts.View) {
	case gallery.ViewTags:
		in.TagGroups = bucketTags(opts.Tags)
	case gallery.ViewPeople:
		if opts.Grouped {
			in.Groups = peopleGroups(ids, names, opts)
		}
	}

	return in
}

// bucketTags groups tag names by their alphabetic bucket for the tag
// overview's keyed sections.
func bucketTags(tags map[string][]string) map[string][]string {
	if len(tags) == 0 {
		return nil
	}

	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	buckets := make(map[string][]string)
	for _, name := range names {
		bucket := grouping.Bucket(name)
		buckets[bucket] = append(buckets[bucket], name)
	}
	return buckets
}

// peopleGroups picks the grouping strategy for the grouped people overview:
// curated topics when configured, alphabetic buckets otherwise.
func peopleGroups(ids []string, names map[string]string, opts Options) []gallery.Group {
	if opts.TagFilter != "" {
		ids = grouping.Filter(ids, names, opts.TagFilter)
	}
	if len(opts.Topics) > 0 {
		return grouping.ByTopic(ids, opts.Topics)
	}
	return grouping.ByInitial(ids, names)
}
