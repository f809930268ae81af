package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: tritanopia\nparticle_count: 40\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tritanopia", s.Profile)
	assert.Equal(t, 40, s.ParticleCount)
	assert.Equal(t, DefaultSplit, s.Split)
	assert.Equal(t, DefaultMobileFill, s.MobileFill)
	assert.Equal(t, DefaultDesktopFill, s.DesktopFill)
	assert.Equal(t, DefaultMobileBreakpoint, s.MobileBreakpoint)
	require.NoError(t, s.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, Default(), s)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("split: [1, 2\n"), 0644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := Default()
	want.Split = 12.5
	want.ShowParticles = true
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidate(t *testing.T) {
	s := Default()
	s.Split = 101
	assert.ErrorIs(t, s.Validate(), ErrSplitRange)

	s = Default()
	s.MobileFill = 0
	assert.ErrorIs(t, s.Validate(), ErrFillFraction)

	s = Default()
	s.ParticleCount = -1
	assert.Error(t, s.Validate())

	assert.NoError(t, Default().Validate())
}
