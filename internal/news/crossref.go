package news

import (
	"math"
	"sort"
)

// MaxCrossRefBoost caps both a single topic boost and an article's summed boost.
const MaxCrossRefBoost = 0.50

// CrossReferenceTopic is a topic covered independently by two or more sources
// in the current pool. It is derived per run and never persisted as state.
type CrossReferenceTopic struct {
	Topic            string
	SourceCount      int
	RelevanceBoost   float64
	MemberArticleIDs map[string]struct{}
}

// Has reports whether the article id belongs to this topic cluster.
func (t CrossReferenceTopic) Has(id string) bool {
	_, ok := t.MemberArticleIDs[id]
	return ok
}

// DetectCrossReferences scans the whole pool once per topic group. A group
// becomes a topic when articles mentioning any of its terms come from at least
// two distinct sources. Topics are ordered by descending source count.
func DetectCrossReferences(pool []Article, groups [][]string) []CrossReferenceTopic {
	texts := make([]string, len(pool))
	for i, a := range pool {
		texts[i] = NormalizeLight(a.Title + " " + a.Summary)
	}

	var topics []CrossReferenceTopic
	for _, group := range groups {
		members := make(map[string]struct{})
		sources := make(map[string]struct{})
		for i, a := range pool {
			if !containsAny(texts[i], group) {
				continue
			}
			members[a.ID] = struct{}{}
			sources[a.SourceName] = struct{}{}
		}
		if len(sources) < 2 {
			continue
		}

		name := "unknown"
		if len(group) > 0 {
			name = group[0]
		}
		topics = append(topics, CrossReferenceTopic{
			Topic:            name,
			SourceCount:      len(sources),
			RelevanceBoost:   CrossRefBoost(len(sources)),
			MemberArticleIDs: members,
		})
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].SourceCount > topics[j].SourceCount
	})
	return topics
}

// CrossRefBoost maps a distinct-source count to a boost:
// 2 -> 0.15, 3 -> 0.25, 4 -> 0.35, otherwise min(0.50, count*0.10).
func CrossRefBoost(sourceCount int) float64 {
	switch sourceCount {
	case 2:
		return 0.15
	case 3:
		return 0.25
	case 4:
		return 0.35
	}
	return math.Min(MaxCrossRefBoost, float64(sourceCount)*0.10)
}

// CrossRefBoostForArticle sums the boosts of every topic the article belongs
// to, capped at MaxCrossRefBoost.
func CrossRefBoostForArticle(id string, topics []CrossReferenceTopic) float64 {
	var total float64
	for _, t := range topics {
		if t.Has(id) {
			total += t.RelevanceBoost
		}
	}
	return math.Min(MaxCrossRefBoost, total)
}
