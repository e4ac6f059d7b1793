package counter

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {

	path := writeFile(t, "counter.json", `{
		"region": [[100, 0], [100, 200]],
		"show_out": false
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, verticalLine, cfg.Points())
	assert.True(t, cfg.ShowInLabel())
	assert.False(t, cfg.ShowOutLabel())
	assert.Equal(t, DefaultLineWidth, cfg.Width())
}

func TestLoadConfigErrors(t *testing.T) {

	_, err := LoadConfig(writeFile(t, "counter.yaml", `region: []`))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.json", `{"region": [1,2]`))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "neg.json", `{"line_width": -1}`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigValidate(t *testing.T) {

	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Nil(t, cfg.Points())

	cfg.Region = [][2]float64{{1, math.NaN()}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.RegionMargin = math.Inf(1)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestParseRegion(t *testing.T) {

	region, err := ParseRegion(" 100,0 ; 100.5,200 ")
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{100, 0}, {100.5, 200}}, region)

	region, err = ParseRegion("")
	require.NoError(t, err)
	assert.Nil(t, region)

	_, err = ParseRegion("100;200")
	assert.Error(t, err)

	_, err = ParseRegion("a,1")
	assert.Error(t, err)
}

func TestLoadClassNames(t *testing.T) {

	path := writeFile(t, "labels.txt", "person\n bicycle \n\ncar\n\n")

	names, err := LoadClassNames(path)
	require.NoError(t, err)

	assert.Equal(t, ClassNames{"person", "bicycle", "", "car"}, names)
	assert.Equal(t, "bicycle", names.Name(1))
	assert.Equal(t, UnknownClass, names.Name(2))
	assert.Equal(t, "car", names.Name(3))
	assert.Equal(t, UnknownClass, names.Name(4))
	assert.Equal(t, UnknownClass, names.Name(-1))

	_, err = LoadClassNames(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
