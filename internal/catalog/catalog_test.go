package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_AddKeepsInsertionOrder(t *testing.T) {
	c := New()
	c.Add("s3", []string{"cp", "ls"})
	c.Add("ec2", []string{"run-instances"})
	c.Add("acm", []string{"list-certificates"})

	assert.Equal(t, []string{"s3", "ec2", "acm"}, c.Services())
	assert.Equal(t, 3, c.Len())
}

func TestCatalog_AddIgnoresEmpty(t *testing.T) {
	c := New()

	assert.False(t, c.Add("empty", nil))
	assert.False(t, c.Add("empty", []string{}))
	assert.Equal(t, 0, c.Len())

	_, ok := c.Lookup("empty")
	assert.False(t, ok)
}

func TestCatalog_AddReplacesInPlace(t *testing.T) {
	c := New()
	c.Add("s3", []string{"cp"})
	c.Add("ec2", []string{"run-instances"})
	c.Add("s3", []string{"ls", "mb"})

	assert.Equal(t, []string{"s3", "ec2"}, c.Services())
	got, ok := c.Lookup("s3")
	assert.True(t, ok)
	assert.Equal(t, []string{"ls", "mb"}, got)
}

func TestCatalog_Pairs(t *testing.T) {
	c := New()
	c.Add("ec2", []string{"describe-instances", "run-instances"})
	c.Add("s3", []string{"cp", "ls"})

	assert.Equal(t, []string{
		"ec2:describe-instances",
		"ec2:run-instances",
		"s3:cp",
		"s3:ls",
	}, c.Pairs())
}

func TestCatalog_EntriesIsCopy(t *testing.T) {
	c := New()
	c.Add("s3", []string{"cp"})

	entries := c.Entries()
	entries[0].Service = "changed"

	assert.Equal(t, []string{"s3"}, c.Services())
}

func TestCatalog_EmptyPairs(t *testing.T) {
	assert.Empty(t, New().Pairs())
}
