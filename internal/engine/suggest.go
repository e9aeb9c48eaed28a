package engine

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/vk/hclimport/internal/finder"
	"github.com/vk/hclimport/internal/fsutil"
	"github.com/vk/hclimport/internal/unitname"
)

const (
	maxSuggestionDistance = 2
	maxSuggestions        = 3
)

var initializerStem = strings.TrimSuffix(finder.ContainerInitializer, filepath.Ext(finder.ContainerInitializer))

// suggest lists units next to name whose last segment is a close edit of
// name's last segment.
func (e *Engine) suggest(name unitname.Name, parentLocations []string) []string {
	locations := append(append([]string(nil), parentLocations...), e.searchPath...)
	candidates, err := fsutil.ListUnitNames(locations, e.builder.Suffixes())
	if err != nil {
		candidates = nil
	}

	parent, hasParent := name.Parent()
	if e.platform != nil {
		for _, raw := range e.platform.Names() {
			pn := unitname.MustParse(raw)
			pp, ok := pn.Parent()
			if ok == hasParent && (!ok || pp.Equal(parent)) {
				candidates = append(candidates, pn.Last())
			}
		}
	}

	type scored struct {
		last string
		dist int
	}
	seen := make(map[string]bool)
	var matches []scored
	want := name.Last()
	for _, c := range candidates {
		if seen[c] || c == want || c == initializerStem {
			continue
		}
		seen[c] = true
		if d := levenshtein.ComputeDistance(want, c); d <= maxSuggestionDistance {
			matches = append(matches, scored{last: c, dist: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].last < matches[j].last
	})
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if hasParent {
			out = append(out, parent.String()+"."+m.last)
		} else {
			out = append(out, m.last)
		}
	}
	return out
}
