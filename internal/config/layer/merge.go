package layer

import (
	"reflect"
	"sort"
	"strings"
)

// DeepMerge merges src into dst and returns dst. Nested maps merge key by
// key; every other value in src, slices included, replaces the one in dst.
// A nil dst is allocated.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, sv := range src {
		sm, srcMap := sv.(map[string]any)
		dm, dstMap := dst[k].(map[string]any)
		if srcMap && dstMap {
			dst[k] = DeepMerge(dm, sm)
			continue
		}
		dst[k] = cloneValue(sv)
	}
	return dst
}

// Clone deep-copies a settings map.
func Clone(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}

// GetByPath looks up a dotted path such as "timing.click_settle".
func GetByPath(data map[string]any, path string) (any, bool) {
	var cur any = data
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, data != nil
}

// SetByPath stores value at a dotted path, replacing any non-map value
// that sits where a section is needed.
func SetByPath(data map[string]any, path string, value any) {
	if data == nil {
		return
	}
	parts := strings.Split(path, ".")
	cur := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := cur[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[part] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}

// FlattenMap returns the leaves of data keyed by dotted path.
func FlattenMap(data map[string]any) map[string]any {
	out := make(map[string]any)
	flatten(data, "", out)
	return out
}

func flatten(data map[string]any, prefix string, out map[string]any) {
	for k, v := range data {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if m, ok := v.(map[string]any); ok {
			flatten(m, path, out)
			continue
		}
		out[path] = v
	}
}

// DiffMaps compares the leaves of two settings maps and returns the
// sorted paths that were added, changed or dropped.
func DiffMaps(old, new map[string]any) (added, modified, removed []string) {
	before, after := FlattenMap(old), FlattenMap(new)
	for path, v := range after {
		prev, ok := before[path]
		switch {
		case !ok:
			added = append(added, path)
		case !reflect.DeepEqual(prev, v):
			modified = append(modified, path)
		}
	}
	for path := range before {
		if _, ok := after[path]; !ok {
			removed = append(removed, path)
		}
	}
	sort.Strings(added)
	sort.Strings(modified)
	sort.Strings(removed)
	return added, modified, removed
}
