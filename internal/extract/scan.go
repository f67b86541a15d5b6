package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tkaraca/icra-analiz/constants"
)

// Skipped records a file the scanner could not turn into a document. These
// stay visible in the batch result; a bad file never aborts the walk.
type Skipped struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// ScanStats summarizes a directory walk.
type ScanStats struct {
	Scanned      int `json:"scanned"`
	Matched      int `json:"matched"`
	Extracted    int `json:"extracted"`
	Deduplicated int `json:"deduplicated"`
	Failed       int `json:"failed"`
}

// ScanDirectory walks root, extracts every supported file into documents
// and de-duplicates identical file contents by sha256. Hidden files are
// skipped; per-file failures land in the skipped list and the walk
// continues. Honors ctx cancellation between files; documents gathered so
// far stay valid.
func ScanDirectory(ctx context.Context, root string, logger *slog.Logger) ([]Document, []Skipped, ScanStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(root) == "" {
		return nil, nil, ScanStats{}, errors.New("root path is required")
	}

	var (
		docs    []Document
		skipped []Skipped
		stats   ScanStats
		seen    = map[string]struct{}{}
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			skipped = append(skipped, Skipped{Path: path, Reason: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		stats.Matched++

		hash, err := hashFile(path)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Reason: err.Error()})
			stats.Failed++
			return nil
		}
		if _, dup := seen[hash]; dup {
			stats.Deduplicated++
			logger.Debug("scan.dedup", "path", path, "sha256", hash)
			return nil
		}
		seen[hash] = struct{}{}

		fileDocs, err := ExtractFile(path)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Reason: err.Error()})
			stats.Failed++
			logger.Warn("scan.extract.failed", "path", path, "err", err)
			return nil
		}
		docs = append(docs, fileDocs...)
		stats.Extracted += len(fileDocs)
		return nil
	})
	if err != nil {
		return docs, skipped, stats, fmt.Errorf("walk: %w", err)
	}

	logger.Info("scan.done",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"extracted", stats.Extracted,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)
	return docs, skipped, stats, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
