// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Version is an immutable version identifier: ordered numeric components
// plus an unordered set of string tags.
//
// Versions compare structurally: two versions are equal when their
// component sequences match and their tag sets match, regardless of the
// order tags were supplied in. Version has no algorithmic coupling to the
// evaluator; it is a plain value type the generic combinators can be
// instantiated over.
type Version struct {
	components []int
	tags       []string // sorted, deduplicated
}

// MakeVersion creates a Version from numeric components and optional tags.
// Inputs are copied; duplicate tags collapse into one.
func MakeVersion(components []int, tags ...string) Version {
	v := Version{components: slices.Clone(components)}
	if len(tags) > 0 {
		ts := slices.Clone(tags)
		slices.Sort(ts)
		v.tags = slices.Compact(ts)
	}
	return v
}

// Components returns a copy of the ordered numeric components.
func (v Version) Components() []int {
	return slices.Clone(v.components)
}

// Tags returns a copy of the tag set in sorted order.
func (v Version) Tags() []string {
	return slices.Clone(v.tags)
}

// HasTag reports whether the tag set contains tag.
func (v Version) HasTag(tag string) bool {
	_, ok := slices.BinarySearch(v.tags, tag)
	return ok
}

// Equal reports structural equality: same component sequence, same tag set.
func (v Version) Equal(o Version) bool {
	return slices.Equal(v.components, o.components) &&
		slices.Equal(v.tags, o.tags)
}

// Compare orders versions lexicographically by components; a missing
// component reads as 0, so 1.2 and 1.2.0 compare equal. Tags never
// participate in ordering.
func (v Version) Compare(o Version) int {
	for i := range max(len(v.components), len(o.components)) {
		var a, b int
		if i < len(v.components) {
			a = v.components[i]
		}
		if i < len(o.components) {
			b = o.components[i]
		}
		if c := cmp.Compare(a, b); c != 0 {
			return c
		}
	}
	return 0
}

// String renders the version: components dot-joined, then each tag
// appended with a '-' separator, e.g. "1.2.3-alpha-lts".
// Tags render in sorted order, so equal versions render identically.
func (v Version) String() string {
	var sb strings.Builder
	for i, c := range v.components {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	for _, t := range v.tags {
		sb.WriteByte('-')
		sb.WriteString(t)
	}
	return sb.String()
}
