package storage

import (
	"io"
	"strings"
	"testing"

	apperrors "condo-maintenance-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutOpenDelete(t *testing.T) {
	b, err := NewLocalBucket(t.TempDir())
	require.NoError(t, err)

	key := ObjectKey(uuid.New(), "os", uuid.New(), "laudo.pdf")
	n, err := b.Put(key, strings.NewReader("conteudo"), 1024)
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)

	rc, err := b.Open(key)
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "conteudo", string(data))

	require.NoError(t, b.Delete(key))
	require.NoError(t, b.Delete(key))
	_, err = b.Open(key)
	assert.ErrorIs(t, err, apperrors.ErrAttachmentNotFound)
}

func TestPutRejectsOversizedFile(t *testing.T) {
	b, err := NewLocalBucket(t.TempDir())
	require.NoError(t, err)

	key := ObjectKey(uuid.New(), "os", uuid.New(), "grande.bin")
	_, err = b.Put(key, strings.NewReader(strings.Repeat("x", 11)), 10)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)

	_, err = b.Open(key)
	assert.ErrorIs(t, err, apperrors.ErrAttachmentNotFound)
}

func TestObjectKeySanitizesName(t *testing.T) {
	condo, id := uuid.New(), uuid.New()
	key := ObjectKey(condo, "chamado", id, "../../etc/pass wd")
	assert.Equal(t, condo.String()+"/chamado/"+id.String()+"-pass_wd", key)

	assert.True(t, strings.HasSuffix(ObjectKey(condo, "os", id, "..."), "-arquivo"))
}

func TestRejectsTraversalKeys(t *testing.T) {
	b, err := NewLocalBucket(t.TempDir())
	require.NoError(t, err)
	_, err = b.Put("../escape", strings.NewReader("x"), 10)
	assert.Error(t, err)
}
