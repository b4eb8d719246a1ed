package modmeta

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/vk/datastage/internal/fsutil"
)

// Structure describes how a mod release sits on disk.
type Structure int

const (
	// StructureDirectory is an unpacked mod folder containing info.json.
	StructureDirectory Structure = iota
	// StructureSymlink is a symlink to an unpacked mod folder.
	StructureSymlink
	// StructureZip is a zipped release, conventionally name_version.zip.
	StructureZip
)

// ErrInvalidModStructure marks a mods-directory entry that is neither a zip
// nor a folder with an info.json.
var ErrInvalidModStructure = errors.New("invalid mod structure")

// Release is one concrete on-disk version of a mod.
type Release struct {
	Version      *semver.Version
	Dependencies []Dependency
	Structure    Structure
	Path         string
}

// CompareReleases orders two releases of the same mod: newer versions win,
// and for equal versions an unpacked release beats a zipped one.
func CompareReleases(a, b *Release) int {
	if c := a.Version.Compare(b.Version); c != 0 {
		return c
	}
	if a.Structure == StructureZip && b.Structure != StructureZip {
		return -1
	}
	if b.Structure == StructureZip && a.Structure != StructureZip {
		return 1
	}
	return 0
}

// Classify determines a mods-directory entry's structure. Zip files go by
// extension; anything else must be a folder (or symlink to one) with an
// info.json at its top level.
func Classify(entryPath string, d fs.DirEntry) (Structure, error) {
	if !d.IsDir() && d.Type()&fs.ModeSymlink == 0 {
		if strings.EqualFold(filepath.Ext(entryPath), ".zip") {
			return StructureZip, nil
		}
		return 0, fmt.Errorf("%w: %s", ErrInvalidModStructure, entryPath)
	}

	structure := StructureDirectory
	if d.Type()&fs.ModeSymlink != 0 {
		structure = StructureSymlink
		target, err := os.Stat(entryPath)
		if err != nil || !target.IsDir() {
			return 0, fmt.Errorf("%w: %s", ErrInvalidModStructure, entryPath)
		}
	}
	if _, err := os.Stat(filepath.Join(entryPath, "info.json")); err != nil {
		return 0, fmt.Errorf("%w: %s has no info.json", ErrInvalidModStructure, entryPath)
	}
	return structure, nil
}

// ReadFile returns the contents of one file inside the release, named by a
// slash-separated path relative to the mod root. For zipped releases the
// archive's single top-level folder is transparent.
func (r *Release) ReadFile(name string) ([]byte, error) {
	if r.Structure != StructureZip {
		b, err := os.ReadFile(filepath.Join(r.Path, filepath.FromSlash(name)))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", name)
		}
		return b, err
	}

	archive, err := zip.OpenReader(r.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.Path, err)
	}
	defer archive.Close()

	for _, f := range archive.File {
		if f.FileInfo().IsDir() || !zipPathMatches(f.Name, name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// DataFiles lists the release's files with the given extension, as
// slash-separated paths relative to the mod root, in lexical order.
func (r *Release) DataFiles(ext string) ([]string, error) {
	if r.Structure != StructureZip {
		return fsutil.FindFilesByExtension(r.Path, ext)
	}
	var files []string

	archive, err := zip.OpenReader(r.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.Path, err)
	}
	defer archive.Close()
	for _, f := range archive.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(f.Name, ext) {
			continue
		}
		files = append(files, stripZipRoot(f.Name))
	}
	sort.Strings(files)
	return files, nil
}

// zipPathMatches reports whether an archive entry corresponds to the given
// mod-relative path, tolerating the conventional name_version/ root folder.
func zipPathMatches(entry, name string) bool {
	return entry == name || stripZipRoot(entry) == name
}

func stripZipRoot(entry string) string {
	if i := strings.Index(entry, "/"); i >= 0 {
		return entry[i+1:]
	}
	return entry
}
