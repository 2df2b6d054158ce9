package mos

import (
	"sort"
	"strings"
)

// Relevance ranks for search ordering. Lower sorts first; ties keep table order.
const (
	rankExactCode = iota
	rankTitlePrefix
	rankOther
)

// Lookup returns the record for an occupational code, matched
// case-insensitively. When the code exists in more than one branch, a
// non-empty branch disambiguates; with no branch given, the first record in
// table order wins. Returns *NotFoundError when nothing matches.
func (t *Table) Lookup(code, branch string) (*Record, error) {
	indices := t.byCode[strings.ToLower(strings.TrimSpace(code))]
	if len(indices) == 0 {
		return nil, &NotFoundError{Code: code, Branch: branch}
	}

	if branch == "" {
		record := t.records[indices[0]]
		return &record, nil
	}

	for _, idx := range indices {
		if strings.EqualFold(t.records[idx].Branch, branch) {
			record := t.records[idx]
			return &record, nil
		}
	}
	return nil, &NotFoundError{Code: code, Branch: branch}
}

// Search returns all records matching the query by case-insensitive
// substring against code, title, civilian titles, skills, and keywords.
// Results are ordered exact-code match first, then title-prefix match, then
// everything else, with ties broken by table order. Queries shorter than
// two characters return no results.
func (t *Table) Search(query string) []Record {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil
	}
	q := strings.ToLower(query)

	type hit struct {
		rank  int
		index int
	}
	var hits []hit

	for i, record := range t.records {
		rank, ok := matchRank(&record, q)
		if !ok {
			continue
		}
		hits = append(hits, hit{rank: rank, index: i})
	}

	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].rank != hits[b].rank {
			return hits[a].rank < hits[b].rank
		}
		return hits[a].index < hits[b].index
	})

	results := make([]Record, len(hits))
	for i, h := range hits {
		results[i] = t.records[h.index]
	}
	return results
}

// matchRank reports whether a record matches the lowercase query and how
// strongly: exact code, title prefix, or any substring hit.
func matchRank(r *Record, q string) (int, bool) {
	code := strings.ToLower(r.Code)
	title := strings.ToLower(r.Title)

	if code == q {
		return rankExactCode, true
	}
	if strings.HasPrefix(title, q) {
		return rankTitlePrefix, true
	}

	if strings.Contains(code, q) || strings.Contains(title, q) {
		return rankOther, true
	}
	for _, t := range r.CivilianTitles {
		if strings.Contains(strings.ToLower(t), q) {
			return rankOther, true
		}
	}
	for _, s := range r.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return rankOther, true
		}
	}
	for _, k := range r.Keywords {
		if strings.Contains(strings.ToLower(k), q) {
			return rankOther, true
		}
	}
	return 0, false
}
