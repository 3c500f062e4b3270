package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Asset paths relative to the static directory
const (
	SiteCSS = "css/site.css"
	SiteJS  = "js/site.js"
	Favicon = "images/favicon.svg"
)

var (
	assetVersions   = map[string]string{}
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes for cache busting at startup.
// Missing files keep the default version "1".
func InitAssetVersions(staticDir string, logger *zap.Logger) {
	versions := make(map[string]string, 3)
	for _, name := range []string{SiteCSS, SiteJS, Favicon} {
		hash, err := computeFileHash(filepath.Join(staticDir, name))
		if err != nil {
			logger.Warn("asset not hashed", zap.String("asset", name), zap.Error(err))
			continue
		}
		versions[name] = hash
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	logger.Info("asset versions initialized", zap.Int("count", len(versions)))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(hash.Sum(nil))[:8], nil
}

// AssetVersion returns the cache-busting version for a static asset
func AssetVersion(name string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if v, ok := assetVersions[name]; ok {
		return v
	}
	return "1"
}

// AssetURL returns the versioned public URL of a static asset
func AssetURL(name string) string {
	return "/static/" + name + "?v=" + AssetVersion(name)
}
