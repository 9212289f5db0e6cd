package index

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/OpenTraceLab/vinst/pkg/verilog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func extract(t *testing.T, src string) []*verilog.Module {
	t.Helper()
	mods := verilog.NewExtractor().ExtractString(src)
	require.NotEmpty(t, mods)
	return mods
}

func TestPutAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	mods := extract(t, "module fifo #(parameter D=4)(input clk, output q);\nendmodule")
	require.NoError(t, store.PutFile("rtl/fifo.v", mods))

	rec, err := store.Get("fifo")
	require.NoError(t, err)
	assert.Equal(t, "rtl/fifo.v", rec.File)
	assert.Equal(t, mods[0], rec.Module)

	_, err = store.Get("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPutFileReplacesPreviousModules(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.PutFile("a.v", extract(t, "module x(); endmodule\nmodule y(); endmodule")))
	require.NoError(t, store.PutFile("a.v", extract(t, "module x(input c); endmodule")))

	_, err := store.Get("y")
	assert.True(t, errors.Is(err, ErrNotFound))

	rec, err := store.Get("x")
	require.NoError(t, err)
	assert.Len(t, rec.Module.Ports, 1)
}

func TestModuleMovedBetweenFiles(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.PutFile("old.v", extract(t, "module m(); endmodule")))
	require.NoError(t, store.PutFile("new.v", extract(t, "module m(input a); endmodule")))

	// Removing the old file must not drop the module now owned by new.v.
	require.NoError(t, store.RemoveFile("old.v"))
	rec, err := store.Get("m")
	require.NoError(t, err)
	assert.Equal(t, "new.v", rec.File)

	require.NoError(t, store.RemoveFile("new.v"))
	_, err = store.Get("m")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListSortedAndPersistent(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.PutFile("b.v", extract(t, "module zeta(); endmodule\nmodule alpha(); endmodule")))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	recs, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "alpha", recs[0].Module.Name)
	assert.Equal(t, "zeta", recs[1].Module.Name)
}
