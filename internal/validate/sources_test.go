package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSources_Valid(t *testing.T) {
	got, err := Sources([]string{"s3://b/a.tif", "s3://b/b.tif"})
	require.NoError(t, err)
	assert.Equal(t, []string{"s3://b/a.tif", "s3://b/b.tif"}, got)
}

func TestSources_Empty(t *testing.T) {
	got, err := Sources(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSources_Duplicate(t *testing.T) {
	_, err := Sources([]string{"s3://b/a.tif", "s3://b/a.tif", "s3://b/a.tif"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSource)
	assert.NotErrorIs(t, err, ErrSourceScheme)

	var sErr *SourceError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, []string{"s3://b/a.tif"}, sErr.Duplicates)
}

func TestSources_BadScheme(t *testing.T) {
	_, err := Sources([]string{"s3://b/a.tif", "http://b/a.tif"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceScheme)
	assert.NotErrorIs(t, err, ErrDuplicateSource)
	assert.Contains(t, err.Error(), `"http://b/a.tif"`)
}

func TestSources_ReportsEveryOffender(t *testing.T) {
	_, err := Sources([]string{"http://x/1.tif", "s3://b/a.tif", "", "s3://b/a.tif", "s3:/b/c.tif"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceScheme)
	assert.ErrorIs(t, err, ErrDuplicateSource)

	var sErr *SourceError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, []string{"http://x/1.tif", "", "s3:/b/c.tif"}, sErr.NonS3)
	assert.Equal(t, []string{"s3://b/a.tif"}, sErr.Duplicates)
}

func TestSources_NoNormalization(t *testing.T) {
	got, err := Sources([]string{"s3://b/dir", "s3://b/dir/", "s3://b/a%20b.tif", "s3://b/a b.tif"})
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestSources_InvalidUTF8(t *testing.T) {
	_, err := Sources([]string{"s3://b/\xffa.tif", "s3://b/\xfea.tif", "s3://b/ok.tif"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceEncoding)
	assert.NotErrorIs(t, err, ErrDuplicateSource)

	var sErr *SourceError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, []string{"s3://b/\xffa.tif", "s3://b/\xfea.tif"}, sErr.BadEncoding)
	assert.Contains(t, err.Error(), `"s3://b/\xffa.tif"`)
}

func TestSources_InvalidUTF8ReportedWithOtherOffenders(t *testing.T) {
	_, err := Sources([]string{"http://\xff", "ftp://b/a.tif", "s3://b/a.tif", "s3://b/a.tif"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceEncoding)
	assert.ErrorIs(t, err, ErrSourceScheme)
	assert.ErrorIs(t, err, ErrDuplicateSource)

	var sErr *SourceError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, []string{"http://\xff"}, sErr.BadEncoding)
	assert.Equal(t, []string{"ftp://b/a.tif"}, sErr.NonS3)
}
