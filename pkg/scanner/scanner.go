// Package scanner collapses raw installed-gem specs into the
// normalized records the renderer consumes.
package scanner

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/arthur-debert/binfile/pkg/gems"
	"github.com/arthur-debert/binfile/pkg/logging"
	"github.com/arthur-debert/binfile/pkg/types"
)

// Scan queries the source and groups the result: one record per gem
// name, versions sorted ascending, executables the sorted union across
// versions. Gems with no executables at all are dropped; they have no
// binaries worth replaying.
func Scan(ctx context.Context, source gems.SpecSource) ([]types.PackageRecord, error) {
	specs, err := source.InstalledSpecs(ctx)
	if err != nil {
		return nil, err
	}
	return Collapse(specs), nil
}

// Collapse groups specs by name and builds the ordered record list.
func Collapse(specs []gems.RawSpec) []types.PackageRecord {
	logger := logging.GetLogger("scanner")

	type group struct {
		versions    []string
		executables map[string]struct{}
	}
	groups := make(map[string]*group)

	for _, spec := range specs {
		g, ok := groups[spec.Name]
		if !ok {
			g = &group{executables: make(map[string]struct{})}
			groups[spec.Name] = g
		}
		g.versions = append(g.versions, spec.Version)
		for _, exe := range spec.Executables {
			g.executables[exe] = struct{}{}
		}
	}

	records := make([]types.PackageRecord, 0, len(groups))
	for name, g := range groups {
		if len(g.executables) == 0 {
			logger.Debug().Str("gem", name).Msg("Skipping gem without executables")
			continue
		}

		sort.Slice(g.versions, func(i, j int) bool {
			return CompareVersions(g.versions[i], g.versions[j]) < 0
		})

		executables := make([]string, 0, len(g.executables))
		for exe := range g.executables {
			executables = append(executables, exe)
		}
		sort.Strings(executables)

		records = append(records, types.PackageRecord{
			Name:        name,
			Versions:    dedupe(g.versions),
			Executables: executables,
		})
	}

	types.SortRecords(records)

	logger.Debug().
		Int("specs", len(specs)).
		Int("records", len(records)).
		Msg("Collapsed installed specs")

	return records
}

// CompareVersions orders two version strings. Strict semver ordering
// when both parse; RubyGems allows four-segment versions and
// pre-release suffixes semver rejects, so fall back to segment-wise
// numeric comparison, then plain string comparison.
func CompareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		na, errA := strconv.Atoi(as[i])
		nb, errB := strconv.Atoi(bs[i])
		if errA != nil || errB != nil {
			if as[i] != bs[i] {
				return strings.Compare(as[i], bs[i])
			}
			continue
		}
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
	}
	if len(as) != len(bs) {
		if len(as) < len(bs) {
			return -1
		}
		return 1
	}
	return 0
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	var prev string
	for i, v := range sorted {
		if i > 0 && v == prev {
			continue
		}
		out = append(out, v)
		prev = v
	}
	return out
}
