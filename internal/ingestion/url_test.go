package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL_LowercasesSchemeAndHost(t *testing.T) {
	got, err := NormalizeURL("HTTPS://Jobs.Example.COM/posting/1")
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.example.com/posting/1", got)
}

func TestNormalizeURL_DropsFragment(t *testing.T) {
	got, err := NormalizeURL("https://jobs.example.com/posting/1#apply")
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.example.com/posting/1", got)
}

func TestNormalizeURL_StripsBareTrailingSlash(t *testing.T) {
	got, err := NormalizeURL("https://jobs.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.example.com", got)
}

func TestNormalizeURL_KeepsQuery(t *testing.T) {
	got, err := NormalizeURL("https://jobs.example.com/search?id=42")
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.example.com/search?id=42", got)
}

func TestNormalizeURL_RejectsRelative(t *testing.T) {
	_, err := NormalizeURL("/posting/1")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestNormalizeURL_RejectsEmpty(t *testing.T) {
	_, err := NormalizeURL("   ")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestNormalizeURL_Idempotent(t *testing.T) {
	once, err := NormalizeURL("HTTPS://jobs.example.com/posting/1#x")
	require.NoError(t, err)
	twice, err := NormalizeURL(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
