package module

import (
	"testing"

	"evalsnap/internal/modkit"
	mmodule "evalsnap/internal/modkit/module"
	"evalsnap/internal/platform/config"
	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/layout"
	"evalsnap/internal/services/peek/domain"
)

func TestFromConfig_Defaults(t *testing.T) {
	t.Setenv("EVALSNAP_PEEK_PARQUET", "")
	t.Setenv("EVALSNAP_PEEK_ROWS", "")

	lay := layout.New("/srv")
	o := FromConfig(config.New(), lay)
	if o.Parquet != lay.Parquet() || o.Rows != domain.DefaultRows {
		t.Fatalf("FromConfig defaults = %+v", o)
	}
}

func TestNew_RowsOverride(t *testing.T) {
	t.Setenv("EVALSNAP_PEEK_ROWS", "3")

	m, err := New(modkit.Deps{Cfg: config.New(), Layout: layout.New(".")}, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Name() != "peek" || mmodule.MustPortsOf[Ports](m).Runner == nil {
		t.Fatalf("module not wired: %q", m.Name())
	}
}

func TestNew_RejectsTooManyRows(t *testing.T) {
	t.Setenv("EVALSNAP_PEEK_ROWS", "5000")

	_, err := New(modkit.Deps{Cfg: config.New(), Layout: layout.New(".")}, 0)
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("New(rows=5000) = %v, want InvalidArgument", err)
	}
}
