package news

const (
	nearDuplicateThreshold = 0.7
	relatedThreshold       = 0.5

	NoveltyNovel         = 1.0
	NoveltyRelated       = 0.5
	NoveltyNearDuplicate = 0.2
)

// TitleSet holds strictly-normalized titles surfaced by a previous digest.
// It is built once per run and only read during scoring.
type TitleSet map[string]struct{}

// NewTitleSet normalizes and collects titles. Blank titles are skipped.
func NewTitleSet(titles ...string) TitleSet {
	set := make(TitleSet, len(titles))
	for _, t := range titles {
		if n := NormalizeStrict(t); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Similarity is the Jaccard index of the word sets of a and b.
// It is 0 when either side has no words.
func Similarity(a, b string) float64 {
	wa, wb := wordSet(a), wordSet(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	intersection := 0
	for w := range wa {
		if _, ok := wb[w]; ok {
			intersection++
		}
	}
	union := len(wa) + len(wb) - intersection
	return float64(intersection) / float64(union)
}

// NoveltyScore compares a title with recently published titles.
// Any comparison above 0.7 yields 0.2, otherwise any above 0.5 yields 0.5,
// otherwise the title is novel (1.0). Similarities are never averaged.
func NoveltyScore(title string, recent TitleSet) float64 {
	if len(recent) == 0 {
		return NoveltyNovel
	}
	normalized := NormalizeStrict(title)

	related := false
	for r := range recent {
		sim := Similarity(normalized, r)
		if sim > nearDuplicateThreshold {
			return NoveltyNearDuplicate
		}
		if sim > relatedThreshold {
			related = true
		}
	}
	if related {
		return NoveltyRelated
	}
	return NoveltyNovel
}
