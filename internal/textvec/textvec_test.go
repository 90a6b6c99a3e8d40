package textvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Data-Science, A/B testing & C++ in 2024!")
	assert.Equal(t, []string{"data", "science", "testing", "in", "2024"}, tokens)
}

func TestTokenize_Unicode(t *testing.T) {
	assert.Equal(t, []string{"café", "naïve"}, Tokenize("Café NAÏVE x"))
}

func TestAnalyze_RemovesStopWordsBeforeBigrams(t *testing.T) {
	terms := Analyze("the art of negotiation", EnglishStopWords(), 2)
	assert.Equal(t, []string{"art", "negotiation", "art negotiation"}, terms)
}

func TestAnalyze_UnigramsOnly(t *testing.T) {
	terms := Analyze("risk management strategy", nil, 1)
	assert.Equal(t, []string{"risk", "management", "strategy"}, terms)
}

func TestFit_VocabularyAndIDF(t *testing.T) {
	docs := []string{
		"analytics strategy",
		"analytics leadership",
		"cooking",
	}
	v := Fit(docs, Options{NGramMax: 1, MinDF: 1})

	require.Equal(t, 4, v.Features())
	assert.Equal(t, "analytics", v.Term(0))
	assert.Equal(t, "cooking", v.Term(1))

	// analytics appears in 2 of 3 documents: ln(4/3) + 1
	assert.InDelta(t, math.Log(4.0/3.0)+1, v.idf[0], 1e-9)
	// cooking appears in 1 of 3 documents: ln(4/2) + 1
	assert.InDelta(t, math.Log(2.0)+1, v.idf[1], 1e-9)
}

func TestFit_MinDF(t *testing.T) {
	docs := []string{"analytics strategy", "analytics leadership"}
	v := Fit(docs, Options{NGramMax: 1, MinDF: 2})
	require.Equal(t, 1, v.Features())
	assert.Equal(t, "analytics", v.Term(0))
}

func TestFit_MaxFeaturesKeepsMostFrequent(t *testing.T) {
	docs := []string{"alpha alpha alpha beta gamma", "alpha beta"}
	v := Fit(docs, Options{NGramMax: 1, MaxFeatures: 2})
	require.Equal(t, 2, v.Features())
	assert.Equal(t, "alpha", v.Term(0))
	assert.Equal(t, "beta", v.Term(1))
}

func TestTransform_NormalizedAndSublinear(t *testing.T) {
	docs := []string{"sales sales sales growth", "growth"}
	v := Fit(docs, Options{NGramMax: 1, SublinearTF: true})

	vec := v.Transform("sales sales sales growth")
	require.Equal(t, 2, vec.Len())
	assert.InDelta(t, 1.0, vec.Norm(), 1e-9)

	raw := Fit(docs, Options{NGramMax: 1})
	rawVec := raw.Transform("sales sales sales growth")
	// Raw counts weight "sales" more heavily than sublinear scaling does.
	assert.Greater(t, rawVec.Values[1], vec.Values[1])
}

func TestTransform_OutOfVocabulary(t *testing.T) {
	v := Fit([]string{"engineering leadership"}, DefaultOptions())
	vec := v.Transform("underwater basket weaving")
	assert.Equal(t, 0, vec.Len())
	assert.Zero(t, vec.Norm())
}

func TestCosine(t *testing.T) {
	docs := []string{
		"analytics data science strategic decision making",
		"culinary mastery discipline sushi",
	}
	v := Fit(docs, DefaultOptions())
	matrix := v.TransformAll(docs)
	query := v.Transform("analytics data science")

	simAnalytics := Cosine(query, matrix[0])
	simSushi := Cosine(query, matrix[1])

	assert.Greater(t, simAnalytics, 0.0)
	assert.LessOrEqual(t, simAnalytics, 1.0+1e-9)
	assert.Zero(t, simSushi)
	assert.InDelta(t, 1.0, Cosine(matrix[0], matrix[0]), 1e-9)
	assert.Zero(t, Cosine(SparseVector{}, matrix[0]))
}

func TestDot(t *testing.T) {
	a := SparseVector{Indices: []int{0, 2, 5}, Values: []float64{1, 2, 3}}
	b := SparseVector{Indices: []int{2, 3, 5}, Values: []float64{4, 1, 1}}
	assert.InDelta(t, 11.0, Dot(a, b), 1e-9)
}

func TestOptionsByName(t *testing.T) {
	opts, err := OptionsByName("")
	require.NoError(t, err)
	assert.Equal(t, 1, opts.MinDF)
	assert.Equal(t, 10000, opts.MaxFeatures)

	opts, err = OptionsByName("strict")
	require.NoError(t, err)
	assert.Equal(t, 2, opts.MinDF)
	assert.Equal(t, 2, opts.NGramMax)

	_, err = OptionsByName("loose")
	assert.Error(t, err)
}

func TestFit_StrictOptionsDropsSingletons(t *testing.T) {
	docs := []string{"risk analytics", "analytics leadership", "cooking"}
	v := Fit(docs, StrictOptions())
	require.Equal(t, 1, v.Features())
	assert.Equal(t, "analytics", v.Term(0))
}
