package aws

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseCredentialsFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "credentials", `
[default]
aws_access_key_id = AKIA123
region = us-east-1

; a comment
[prod]
aws_access_key_id = AKIA456
`)

	profiles, err := parseProfileFile(path, "credentials")
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "default", profiles[0].Name)
	assert.Equal(t, "us-east-1", profiles[0].Region)
	assert.Equal(t, "prod", profiles[1].Name)
	assert.Empty(t, profiles[1].Region)
}

func TestParseConfigFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config", `
[default]
region = eu-west-1

[profile staging]
region = ap-southeast-1
`)

	profiles, err := parseProfileFile(path, "config")
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "default", profiles[0].Name)
	assert.Equal(t, "eu-west-1", profiles[0].Region)
	assert.Equal(t, "staging", profiles[1].Name)
	assert.Equal(t, "ap-southeast-1", profiles[1].Region)
}

func TestParseProfileFileMissing(t *testing.T) {
	_, err := parseProfileFile(filepath.Join(t.TempDir(), "nope"), "credentials")
	assert.Error(t, err)
}
