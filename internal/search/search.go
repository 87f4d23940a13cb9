// Package search implements the smart search bar: approximate matching
// over a heterogeneous set of assets, portfolios, and goals.
package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/SohamNaik26/wealth-management/internal/model"
)

// Kind tags the entity variant behind a search item.
type Kind string

// Search item kinds.
const (
	KindAsset     Kind = "Asset"
	KindPortfolio Kind = "Portfolio"
	KindGoal      Kind = "Goal"
)

// Item is the tagged-union search entry. Heterogeneous entities are adapted
// into this shape explicitly; nothing is matched by structural coincidence.
type Item struct {
	Kind        Kind   `json:"kind"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Collect adapts the three searchable collections into one item list.
// Assets come first, then portfolios, then goals, preserving insertion
// order within each collection. That order breaks ranking ties.
func Collect(assets []model.Asset, portfolios []model.Portfolio, goals []model.Goal) []Item {
	items := make([]Item, 0, len(assets)+len(portfolios)+len(goals))
	for _, a := range assets {
		items = append(items, Item{Kind: KindAsset, ID: a.ID, Name: a.Name, Description: a.AssetType})
	}
	for _, p := range portfolios {
		items = append(items, Item{Kind: KindPortfolio, ID: p.ID, Name: p.Name, Description: p.Description})
	}
	for _, g := range goals {
		items = append(items, Item{Kind: KindGoal, ID: g.ID, Name: g.Name, Description: g.Description})
	}
	return items
}

// Index is a searchable view over a fixed item set. It is rebuilt from a
// fresh snapshot on every query; there is no incremental maintenance.
type Index struct {
	items []Item
}

// NewIndex builds an index over items.
func NewIndex(items []Item) *Index {
	return &Index{items: items}
}

// source matches queries against "name description" so either field can
// contribute to a hit, mirroring the matched-field set of the search bar.
type source []Item

func (s source) String(i int) string {
	if s[i].Description == "" {
		return s[i].Name
	}
	return s[i].Name + " " + s[i].Description
}

func (s source) Len() int { return len(s) }

// Query returns items ranked by descending match quality. An empty query
// always returns no results, never the full item set. Ties keep input order.
func (idx *Index) Query(query string) []Item {
	if query == "" {
		return []Item{}
	}

	matches := fuzzy.FindFrom(query, source(idx.items))
	results := make([]Item, len(matches))
	for i, m := range matches {
		results[i] = idx.items[m.Index]
	}
	return results
}
