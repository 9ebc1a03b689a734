package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsKeyword_CaseInsensitive(t *testing.T) {
	assert.True(t, ContainsKeyword("experience with pytorch required", "PyTorch"))
	assert.True(t, ContainsKeyword("DEEP LEARNING engineer", "Deep Learning"))
}

func TestContainsKeyword_KoreanSubstring(t *testing.T) {
	assert.True(t, ContainsKeyword("머신러닝 엔지니어 모집", "머신러닝"))
	assert.True(t, ContainsKeyword("경기도 양주시 소재", "양주"))
	assert.False(t, ContainsKeyword("서울 강남구", "양주"))
}

func TestContainsKeyword_AcronymRequiresWordBoundary(t *testing.T) {
	// "AI" must not fire inside unrelated words.
	assert.False(t, ContainsKeyword("he said hello", "AI"))
	assert.False(t, ContainsKeyword("html and css", "ML"))

	assert.True(t, ContainsKeyword("AI Research Engineer", "AI"))
	assert.True(t, ContainsKeyword("ML/DL experience", "ML"))
	assert.True(t, ContainsKeyword("looking for an ai engineer", "AI"))
}

func TestContainsKeyword_AcronymAtStringEdges(t *testing.T) {
	assert.True(t, ContainsKeyword("AI", "AI"))
	assert.True(t, ContainsKeyword("we use ML", "ML"))
	assert.False(t, ContainsKeyword("MLops", "ML"))
	assert.False(t, ContainsKeyword("OCaml", "ML"))
}

func TestContainsKeyword_LongerTermsMatchAsSubstring(t *testing.T) {
	// Terms longer than an acronym keep plain substring semantics.
	assert.True(t, ContainsKeyword("infrastructure team", "Infra"))
}

func TestContainsKeyword_EmptyKeyword(t *testing.T) {
	assert.False(t, ContainsKeyword("anything", ""))
}

func TestMatchKeywords_PreservesKeywordOrder(t *testing.T) {
	text := "Deep Learning and Computer Vision with AI"
	keywords := []string{"AI", "Machine Learning", "Deep Learning", "Computer Vision"}

	matched := MatchKeywords(text, keywords)

	assert.Equal(t, []string{"AI", "Deep Learning", "Computer Vision"}, matched)
}

func TestMatchKeywords_NoMatches(t *testing.T) {
	matched := MatchKeywords("frontend developer", []string{"블록체인", "Rust"})
	assert.Empty(t, matched)
}
