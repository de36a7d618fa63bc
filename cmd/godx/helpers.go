package godx

import (
	"fmt"
	"strings"
	"time"

	"github.com/Lodziarka/GOD-X/internal/app"
	"github.com/Lodziarka/GOD-X/internal/catalog"
	"github.com/Lodziarka/GOD-X/internal/provider/foodlens"
	"github.com/Lodziarka/GOD-X/internal/store"
)

func withStore(run func(*store.Store) error) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	path := strings.TrimSpace(dbPath)
	if path == "" {
		path = cfg.DBPath
	}
	if path == "" {
		path, err = app.DefaultDBPath()
		if err != nil {
			return err
		}
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	blobs, err := store.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer blobs.Close()

	st, err := store.Open(blobs)
	if err != nil {
		return err
	}
	return run(st)
}

func lookupClient() (*foodlens.Client, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &foodlens.Client{BaseURL: cfg.LookupURL, APIKey: cfg.LookupAPIKey}, nil
}

func loadCatalog() (*catalog.Catalog, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.Default(), nil
}

func parseDateOrNow(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func exerciseName(cat *catalog.Catalog, id string) string {
	if ex, ok := cat.Get(id); ok {
		return ex.Name
	}
	return id
}
