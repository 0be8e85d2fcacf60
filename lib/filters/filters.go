package filters

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"github.com/pescuma/bdcrime/lib/model"
)

// Filter returns the records of one year that belong to any of the areas, in dataset order.
func Filter(ds *model.Dataset, year int, areas []string) (*model.View, error) {
	if !ds.HasYear(year) {
		return nil, model.NewFilterError("year %v is not in the dataset (%v)", year, describeYears(ds.Years()))
	}

	selected, err := toSet(ds, areas)
	if err != nil {
		return nil, err
	}

	records := lo.Filter(ds.Records(), func(r *model.Record, _ int) bool {
		return r.Year == year && selected.Contains(r.Area)
	})

	return model.NewView(ds, &year, areas, records), nil
}

// FilterAreas returns the records of all years that belong to any of the areas, in dataset order.
func FilterAreas(ds *model.Dataset, areas []string) (*model.View, error) {
	selected, err := toSet(ds, areas)
	if err != nil {
		return nil, err
	}

	records := lo.Filter(ds.Records(), func(r *model.Record, _ int) bool {
		return selected.Contains(r.Area)
	})

	return model.NewView(ds, nil, areas, records), nil
}

func toSet(ds *model.Dataset, areas []string) (*set.Set[string], error) {
	for _, a := range areas {
		if !ds.HasArea(a) {
			return nil, model.NewFilterError("area '%v' is not in the dataset", a)
		}
	}

	return set.From(areas), nil
}

// ResolveAreas expands user supplied area names into the dataset areas they refer to.
// Matching ignores case and accepts * and ? wildcards. The result follows dataset order.
func ResolveAreas(ds *model.Dataset, patterns []string) ([]string, error) {
	fold := cases.Fold()

	folded := lo.Map(ds.Areas(), func(a string, _ int) string { return fold.String(a) })

	matched := set.New[int](len(folded))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if i := lo.IndexOf(ds.Areas(), p); i >= 0 {
			matched.Insert(i)
			continue
		}

		g, err := glob.Compile(fold.String(p))
		if err != nil {
			return nil, model.NewFilterError("invalid area pattern '%v': %v", p, err)
		}

		found := false
		for i, a := range folded {
			if g.Match(a) {
				matched.Insert(i)
				found = true
			}
		}

		if !found {
			return nil, model.NewFilterError("no area matches '%v'", p)
		}
	}

	result := make([]string, 0, matched.Size())
	for i, a := range ds.Areas() {
		if matched.Contains(i) {
			result = append(result, a)
		}
	}

	return result, nil
}

// ParseAreas resolves user supplied area values. A value naming an area is used as is,
// otherwise it holds patterns separated by commas.
func ParseAreas(ds *model.Dataset, values []string) ([]string, error) {
	patterns := lo.FlatMap(values, func(v string, _ int) []string {
		if ds.HasArea(strings.TrimSpace(v)) {
			return []string{v}
		}
		return strings.Split(v, ",")
	})

	return ResolveAreas(ds, patterns)
}

func describeYears(years []int) string {
	if len(years) == 0 {
		return "it has no rows"
	}

	return fmt.Sprintf("years %v to %v", years[0], years[len(years)-1])
}
