package catalog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/awscmds/internal/errors"
)

func sampleCatalog() *Catalog {
	c := New()
	c.Add("ec2", []string{"describe-instances", "run-instances"})
	c.Add("s3", []string{"cp"})
	return c
}

func TestWrite_Lines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleCatalog(), FormatLines))

	assert.Equal(t, "ec2:describe-instances\nec2:run-instances\ns3:cp\n", buf.String())
}

func TestWrite_EmptyFormatIsLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleCatalog(), ""))

	assert.Equal(t, "ec2:describe-instances\nec2:run-instances\ns3:cp\n", buf.String())
}

func TestWrite_LinesEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(), FormatLines))
	assert.Empty(t, buf.String())
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleCatalog(), FormatJSON))

	var got []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleCatalog().Entries(), got)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleCatalog(), FormatYAML))

	assert.Contains(t, buf.String(), "- service: ec2\n")

	var got []Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleCatalog().Entries(), got)
}

func TestWrite_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleCatalog(), FormatTOML))

	assert.Contains(t, buf.String(), "[[services]]")

	var got tomlDocument
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleCatalog().Entries(), got.Services)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, sampleCatalog(), Format("xml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
}

func TestValidFormat(t *testing.T) {
	for _, f := range Formats() {
		assert.True(t, ValidFormat(f), f)
	}
	assert.False(t, ValidFormat("xml"))
	assert.False(t, ValidFormat(""))
}
