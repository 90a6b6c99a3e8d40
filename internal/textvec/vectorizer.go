package textvec

import (
	"fmt"
	"math"
	"sort"
)

// Options controls how a Vectorizer is fitted.
type Options struct {
	MaxFeatures int                 // Vocabulary cap; 0 means unlimited
	MinDF       int                 // Minimum number of documents a term must appear in
	NGramMax    int                 // Largest n-gram size (1 = unigrams only)
	SublinearTF bool                // Use 1 + ln(tf) instead of raw counts
	StopWords   map[string]struct{} // Terms removed before n-grams are formed
}

// DefaultOptions returns the permissive configuration used for small catalogs:
// English stop words, unigrams and bigrams, 10,000 features, min-df 1, sublinear tf.
func DefaultOptions() Options {
	return Options{
		MaxFeatures: 10000,
		MinDF:       1,
		NGramMax:    2,
		SublinearTF: true,
		StopWords:   EnglishStopWords(),
	}
}

// StrictOptions is DefaultOptions with terms required in at least two documents.
func StrictOptions() Options {
	opts := DefaultOptions()
	opts.MinDF = 2
	return opts
}

// OptionsByName resolves a named preset: "default" (or "") and "strict".
func OptionsByName(name string) (Options, error) {
	switch name {
	case "", "default":
		return DefaultOptions(), nil
	case "strict":
		return StrictOptions(), nil
	default:
		return Options{}, fmt.Errorf("unknown vectorizer preset %q", name)
	}
}

// Vectorizer maps documents into a fitted TF-IDF space. It is immutable after Fit
// and safe for concurrent use.
type Vectorizer struct {
	opts  Options
	vocab map[string]int
	terms []string
	idf   []float64
}

// Fit learns the vocabulary and inverse document frequencies of docs.
func Fit(docs []string, opts Options) *Vectorizer {
	if opts.MinDF < 1 {
		opts.MinDF = 1
	}
	if opts.NGramMax < 1 {
		opts.NGramMax = 1
	}

	df := make(map[string]int)
	tf := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range Analyze(doc, opts.StopWords, opts.NGramMax) {
			tf[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}

	candidates := make([]string, 0, len(df))
	for term, count := range df {
		if count >= opts.MinDF {
			candidates = append(candidates, term)
		}
	}

	if opts.MaxFeatures > 0 && len(candidates) > opts.MaxFeatures {
		sort.Slice(candidates, func(i, j int) bool {
			if tf[candidates[i]] != tf[candidates[j]] {
				return tf[candidates[i]] > tf[candidates[j]]
			}
			return candidates[i] < candidates[j]
		})
		candidates = candidates[:opts.MaxFeatures]
	}

	// Columns are assigned in lexical order so the space is independent of map iteration.
	sort.Strings(candidates)

	n := float64(len(docs))
	v := &Vectorizer{
		opts:  opts,
		vocab: make(map[string]int, len(candidates)),
		terms: candidates,
		idf:   make([]float64, len(candidates)),
	}
	for i, term := range candidates {
		v.vocab[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// Features returns the vocabulary size.
func (v *Vectorizer) Features() int {
	return len(v.terms)
}

// Term returns the vocabulary term of a column.
func (v *Vectorizer) Term(column int) string {
	return v.terms[column]
}

// Transform maps a document into the fitted space as an L2-normalized sparse vector.
// Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(doc string) SparseVector {
	counts := make(map[int]int)
	for _, term := range Analyze(doc, v.opts.StopWords, v.opts.NGramMax) {
		if col, ok := v.vocab[term]; ok {
			counts[col]++
		}
	}
	if len(counts) == 0 {
		return SparseVector{}
	}

	indices := make([]int, 0, len(counts))
	for col := range counts {
		indices = append(indices, col)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var sum float64
	for i, col := range indices {
		weight := float64(counts[col])
		if v.opts.SublinearTF {
			weight = 1 + math.Log(weight)
		}
		weight *= v.idf[col]
		values[i] = weight
		sum += weight * weight
	}

	if norm := math.Sqrt(sum); norm > 0 {
		for i := range values {
			values[i] /= norm
		}
	}

	return SparseVector{Indices: indices, Values: values}
}

// TransformAll maps every document, preserving order.
func (v *Vectorizer) TransformAll(docs []string) []SparseVector {
	out := make([]SparseVector, len(docs))
	for i, doc := range docs {
		out[i] = v.Transform(doc)
	}
	return out
}
