package configfile

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/byd-android-2017/args"
	"github.com/byd-android-2017/args/internal/ctxlog"
	"github.com/byd-android-2017/args/internal/fsutil"
	"github.com/rotisserie/eris"
)

// ErrNotFound is returned, wrapped, when the config path does not exist.
var ErrNotFound = eris.New("config file not found")

// extensions lists the supported config file extensions.
var extensions = []string{".hcl", ".yaml", ".yml"}

// Load reads option defaults from path. A file is decoded according to its
// extension. A directory is searched recursively for supported files, which
// are merged in lexical path order so later files override earlier ones.
func Load(ctx context.Context, path string) (args.Defaults, error) {
	logger := ctxlog.FromContext(ctx).With("path", path)
	logger.Debug("Config file loader started.")

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, eris.Wrapf(ErrNotFound, "failed to read config file %s", path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "error accessing path %s", path)
	}

	if !info.IsDir() {
		return loadFile(logger, path)
	}

	files, err := fsutil.FindFilesByExtension(path, extensions...)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to search config directory %s", path)
	}
	logger.Debug("Discovered config files.", "count", len(files))

	merged := make(args.Defaults)
	for _, file := range files {
		defaults, err := loadFile(logger, file)
		if err != nil {
			return nil, err
		}
		maps.Copy(merged, defaults)
	}
	return merged, nil
}

func loadFile(logger *slog.Logger, path string) (args.Defaults, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var decode func(src []byte, path string) (args.Defaults, error)
	switch ext {
	case ".hcl":
		decode = decodeHCL
	case ".yaml", ".yml":
		decode = decodeYAML
	default:
		return nil, eris.Errorf("unsupported config file extension %q for %s", ext, path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read config file %s", path)
	}

	defaults, err := decode(src, path)
	if err != nil {
		return nil, err
	}

	logger.Debug("Config file loaded.", "file", path, "format", strings.TrimPrefix(ext, "."), "entries", len(defaults))
	return defaults, nil
}
