package catalogsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
)

const yamlCatalog = `
adventures:
  - id: seneca-rocks
    type: trail
    title: Seneca Rocks
    location: Pendleton County
    season: [spring, summer, fall]
    difficulty: challenging
    elevationGain: 900
    suitability: [dog-friendly]
    gear: [hiking, climbing]
    driveTime: 3h 10m
    images:
      - src: /images/seneca.jpg
        alt: Seneca Rocks at sunrise
  - id: burnsville-wma
    type: wma
    title: Burnsville Lake WMA
    season: [fall, winter]
    difficulty: moderate
    gear: [hunting]
`

func TestFileSourceLoadsYAML(t *testing.T) {
	path := writeFile(t, "adventures.yaml", yamlCatalog)

	items, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	require.Equal(t, "seneca-rocks", first.ID)
	require.Equal(t, adventure.KindTrail, first.Type)
	require.Equal(t, []adventure.Season{adventure.SeasonSpring, adventure.SeasonSummer, adventure.SeasonFall}, first.Season)
	require.NotNil(t, first.ElevationGain)
	require.Equal(t, 900, *first.ElevationGain)
	require.Equal(t, "3h 10m", first.DriveTime)
	require.Equal(t, []adventure.Image{{Src: "/images/seneca.jpg", Alt: "Seneca Rocks at sunrise"}}, first.Images)

	require.Nil(t, items[1].ElevationGain)

	_, err = adventure.NewCatalog(items)
	require.NoError(t, err)
}

func TestFileSourceLoadsJSON(t *testing.T) {
	path := writeFile(t, "adventures.json", `{"adventures":[{"id":"a","type":"lake","title":"Lake","difficulty":"easy","elevationGain":0}]}`)

	items, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 0, *items[0].ElevationGain)
}

func TestFileSourceErrors(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	require.Error(t, err)

	path := writeFile(t, "broken.json", `{"adventures":`)
	_, err = NewFileSource(path).Load(context.Background())
	require.Error(t, err)
}

func TestSanitizeEndpoint(t *testing.T) {
	require.Equal(t, "account.r2.cloudflarestorage.com", sanitizeEndpoint("https://account.r2.cloudflarestorage.com/"))
	require.Equal(t, "localhost:9000", sanitizeEndpoint(" http://localhost:9000 "))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
