package processor

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"create-sets/internal/config"
)

func sampleManifest() *Manifest {
	return &Manifest{
		Dataset:      "orl",
		TrainPercent: 70,
		TestPercent:  30,
		Seed:         12345,
		TrainDir:     "train_images",
		TestDir:      "test_images",
		Classes: []ClassSplit{
			{Class: 0, Path: "datasets/orl_faces/s1", Total: 3, Train: []string{"s1_2.pgm", "s1_3.pgm"}, Test: []string{"s1_1.pgm"}},
			{Class: 1, Path: "datasets/orl_faces/s2", Total: 0, Train: []string{}, Test: []string{}},
		},
	}
}

func TestManifest_Counts(t *testing.T) {
	m := sampleManifest()

	assert.Equal(t, 2, m.NumTrain())
	assert.Equal(t, 1, m.NumTest())
}

func TestManifest_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, WriteManifest(fs, "split.yaml", sampleManifest()))

	b, err := afero.ReadFile(fs, "split.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(b), "dataset: orl")
	assert.Contains(t, string(b), "seed: 12345")
	assert.Contains(t, string(b), "- s1_2.pgm")

	m, err := LoadManifest(fs, "split.yaml")
	require.NoError(t, err)
	assert.Equal(t, "orl", m.Dataset)
	assert.Equal(t, []string{"s1_1.pgm"}, m.Classes[0].Test)
}

func TestManifest_JSON(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, WriteManifest(fs, "split.json", sampleManifest()))

	b, err := afero.ReadFile(fs, "split.json")
	require.NoError(t, err)
	assert.Contains(t, string(b), `"dataset": "orl"`)
	assert.Contains(t, string(b), `"train_dir": "train_images"`)

	m, err := LoadManifest(fs, "split.json")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), m.Seed)
	assert.Len(t, m.Classes, 2)
}

func TestManifest_UnsupportedExtension(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := WriteManifest(fs, "split.toml", sampleManifest())
	require.Error(t, err)
	assert.True(t, config.IsUsage(err))

	exists, err := afero.Exists(fs, "split.toml")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(afero.NewMemMapFs(), "nope.yaml")
	assert.Error(t, err)
}
