package hanzi

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanjaplatform/hanja-api/internal/services/cache"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

const sampleDict = `# CC-CEDICT sample
#! version=1
學 学 [xue2] /to learn/to study/
而 而 [er2] /and/as well as/
學生 学生 [xue2 sheng5] /student/
習 习 [xi2] /to practice/
習 习 [Xi2] /surname Xi/
`

func TestLoad(t *testing.T) {
	d, err := Load(strings.NewReader(sampleDict))
	require.NoError(t, err)

	assert.Equal(t, []string{"to learn", "to study"}, d.Definitions('學'))
	assert.Equal(t, []string{"to learn", "to study"}, d.Definitions('学'))
	assert.Equal(t, []string{"to practice", "surname Xi"}, d.Definitions('習'))
	assert.Nil(t, d.Definitions('生'))
	assert.Equal(t, 5, d.Len())
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(strings.NewReader("學 学 xue2 /to learn/\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestLoadFile(t *testing.T) {
	d, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())

	path := filepath.Join(t.TempDir(), "cedict.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleDict), 0o644))
	d, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestService_Lookup(t *testing.T) {
	d, err := Load(strings.NewReader(sampleDict))
	require.NoError(t, err)

	mc := cache.NewMemoryCache(1)
	defer mc.Stop()
	svc := NewService(d, mc, time.Minute)

	got, err := svc.Lookup(context.Background(), "學 而\n者")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"學": {"to learn", "to study"},
		"而": {"and", "as well as"},
	}, got)

	again, err := svc.Lookup(context.Background(), "學 而\n者")
	require.NoError(t, err)
	assert.Equal(t, got, again)
	assert.Equal(t, int64(1), mc.Stats().Hits)

	_, err = svc.Lookup(context.Background(), "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}
