// Package loader drives a full load session: discover mods, settle the load
// order, evaluate every data file and register the results, then validate
// references and resource claims over the finished table.
package loader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/datastage/internal/ctxlog"
	"github.com/vk/datastage/internal/datatable"
	"github.com/vk/datastage/internal/modmeta"
	"github.com/vk/datastage/internal/proto"
	"github.com/vk/datastage/internal/source"
)

// DataFileExt is the extension of evaluable data files inside a mod.
const DataFileExt = ".hcl"

// Options configures a load session.
type Options struct {
	// ModsDir is the directory holding mod folders, symlinks and zips, plus
	// an optional mod-list.json enablement manifest.
	ModsDir string

	// Resources, when set, checks the resource claims accumulated during the
	// session. Nil skips resource validation.
	Resources datatable.ResourceValidator
}

// Result is the outcome of a successful session.
type Result struct {
	// Table holds every registered record.
	Table *datatable.Table

	// Mods lists the enabled mods in the order their data was loaded.
	Mods []*modmeta.Mod
}

// Run executes one load session. Registration is strictly sequential in mod
// order, so later mods overwrite records registered by earlier ones.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	mods, err := modmeta.ScanDir(opts.ModsDir)
	if err != nil {
		return nil, fmt.Errorf("scan mods: %w", err)
	}
	logger.Debug("Mods directory scanned.", "dir", opts.ModsDir, "mods", len(mods))

	list, err := modmeta.LoadModList(filepath.Join(opts.ModsDir, "mod-list.json"))
	if err != nil {
		return nil, fmt.Errorf("read mod-list.json: %w", err)
	}
	if err := modmeta.ApplyModList(mods, list); err != nil {
		return nil, err
	}

	enabled := mods[:0]
	for _, m := range mods {
		if m.Enabled() {
			enabled = append(enabled, m)
		}
	}
	if err := modmeta.SortMods(enabled); err != nil {
		return nil, err
	}

	tbl := datatable.New()
	for _, m := range enabled {
		if err := loadMod(ctx, tbl, m); err != nil {
			return nil, fmt.Errorf("mod %q: %w", m.Name, err)
		}
	}

	if err := tbl.ValidateReferences(); err != nil {
		return nil, err
	}
	if opts.Resources != nil {
		if err := tbl.ValidateResources(opts.Resources); err != nil {
			return nil, err
		}
	}

	total := 0
	for _, n := range tbl.Counts() {
		total += n
	}
	logger.Info("Load session complete.", "mods", len(enabled), "records", total)
	return &Result{Table: tbl, Mods: enabled}, nil
}

// loadMod evaluates and registers every data file of one mod, in lexical
// file order.
func loadMod(ctx context.Context, tbl *datatable.Table, m *modmeta.Mod) error {
	logger := ctxlog.FromContext(ctx)
	decoders := proto.Decoders()

	files, err := m.Release.DataFiles(DataFileExt)
	if err != nil {
		return err
	}
	logger.Debug("Loading mod data.", "mod", m.Name, "version", m.Release.Version, "files", len(files))

	for _, name := range files {
		data, err := m.Release.ReadFile(name)
		if err != nil {
			return err
		}
		raws, err := source.EvalBytes(data, m.Name+"/"+name)
		if err != nil {
			return err
		}
		for _, raw := range raws {
			decode, ok := decoders[raw.Kind]
			if !ok {
				return fmt.Errorf("%s: unknown record kind %q", name, raw.Kind)
			}
			if err := decode(raw.Name, raw.Value, tbl); err != nil {
				return fmt.Errorf("%s: record %q: %w", name, raw.Name, err)
			}
		}
	}
	return nil
}
