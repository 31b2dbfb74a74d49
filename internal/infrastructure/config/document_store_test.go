package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
	"github.com/alexisbeaulieu97/tablestyles/internal/infrastructure/logging"
)

func newTestStore() *DocumentStore {
	return NewDocumentStore(logging.NewNoOpLogger())
}

func writeDoc(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDocumentStoreLoadSuccess(t *testing.T) {
	path := writeDoc(t, "styles.yaml", `templates:
  - id: t1
    table:
      width: 100 px
    rows:
      - index: 1
        bgColor: "#fff"
`)

	doc, err := newTestStore().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, []string{"t1"}, doc.IDs())
	require.Equal(t, "#fff", doc.Templates[0].Rows[0].Declarations[style.PropBgColor])
}

func TestDocumentStoreLoadErrors(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	t.Run("missing file", func(t *testing.T) {
		_, err := store.Load(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
		require.True(t, template.HasCode(err, template.ErrCodeNotFound))
	})

	t.Run("directory", func(t *testing.T) {
		_, err := store.Load(ctx, t.TempDir())
		require.True(t, template.HasCode(err, template.ErrCodeValidation))
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeDoc(t, "broken.yaml", "templates: [\n")
		_, err := store.Load(ctx, path)
		require.True(t, template.HasCode(err, template.ErrCodeFormat))
	})

	t.Run("schema errors are all reported", func(t *testing.T) {
		path := writeDoc(t, "bad.yaml", `templates:
  - id: t1
    rows:
      - index: "x"
        color: "??"
  - id: t1
`)
		_, err := store.Load(ctx, path)
		require.Len(t, multierr.Errors(err), 3)
		require.True(t, template.HasCode(err, template.ErrCodeValidation))
		require.True(t, template.HasCode(err, template.ErrCodeConflict))
	})

	t.Run("bad template id", func(t *testing.T) {
		path := writeDoc(t, "id.json", `{"templates": [{"id": "9lives"}]}`)
		_, err := store.Load(ctx, path)
		require.True(t, template.HasCode(err, template.ErrCodeFormat))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Load(cancelled, "whatever.yaml")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDocumentStoreSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	tpl := template.New("t1")
	value := "2px"
	require.NoError(t, tpl.Set(template.ColumnAddress("3", true), style.PropWidth, &value))
	red := "red"
	require.NoError(t, tpl.Set(template.CellAddress(0, 2), style.PropColor, &red))
	doc := template.NewDocument(tpl)
	expected, err := doc.Normalized()
	require.NoError(t, err)

	for _, name := range []string{"out.yaml", "out.json"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, store.Save(ctx, path, doc))

		_, err := os.Stat(path + ".tmp")
		require.True(t, os.IsNotExist(err))

		loaded, err := store.Load(ctx, path)
		require.NoError(t, err)
		require.Equal(t, expected, loaded)
	}
}

func TestDocumentStoreSaveRejectsUnknownExtension(t *testing.T) {
	err := newTestStore().Save(context.Background(), filepath.Join(t.TempDir(), "out.txt"), template.NewDocument())
	require.True(t, template.HasCode(err, template.ErrCodeValidation))
}
