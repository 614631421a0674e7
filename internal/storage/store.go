package storage

import (
	"os"
	"sync"

	json "github.com/goccy/go-json"

	"sbd/internal/providers"
	"sbd/internal/services"
	"sbd/internal/structures"
)

const snapshotVersion = 1

type snapshot struct {
	Version int                        `json:"version"`
	Entries map[string]json.RawMessage `json:"entries"`
}

// FileStore implements services.Store. It keeps all entries in memory and
// mirrors every write into a single zstd-compressed snapshot file, written
// atomically (tmp + fsync + rename).
type FileStore struct {
	mu         sync.RWMutex
	path       string
	entries    map[string]json.RawMessage
	compressor Compressor
	logger     providers.Logger
}

func NewFileStore(conf *structures.Config, compressor Compressor, logger providers.Logger) (services.Store, error) {
	fs := &FileStore{
		path:       conf.Persistence.FilePath,
		entries:    make(map[string]json.RawMessage),
		compressor: compressor,
		logger:     logger,
	}
	fs.load()
	return fs, nil
}

// load reads the snapshot file. A missing or unreadable snapshot is not
// fatal: the store starts empty and every reader falls back to its default.
func (fs *FileStore) load() {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.Warnf(providers.TypeApp, "Cannot read snapshot %s: %s", fs.path, err)
		}
		return
	}

	decompressed, err := fs.compressor.Decompress(data)
	if err != nil {
		// Early snapshots were written uncompressed.
		decompressed = data
	}

	var snap snapshot
	if err := json.Unmarshal(decompressed, &snap); err == nil && snap.Entries != nil {
		fs.entries = snap.Entries
		return
	}

	// Legacy format: a naked entries map with no envelope.
	var legacy map[string]json.RawMessage
	if err := json.Unmarshal(decompressed, &legacy); err == nil && legacy != nil {
		fs.logger.Warnf(providers.TypeApp, "Old snapshot format found, migrating")
		fs.entries = legacy
		return
	}

	fs.logger.Warnf(providers.TypeApp, "Corrupt snapshot %s, starting empty", fs.path)
}

func (fs *FileStore) Read(key string, out any) bool {
	fs.mu.RLock()
	raw, ok := fs.entries[key]
	fs.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		fs.logger.Warnf(providers.TypeApp, "Malformed value under key %q: %s", key, err)
		return false
	}
	return true
}

func (fs *FileStore) Write(key string, val any) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.entries[key] = raw
	return fs.saveLocked()
}

func (fs *FileStore) saveLocked() error {
	jsonData, err := json.Marshal(snapshot{Version: snapshotVersion, Entries: fs.entries})
	if err != nil {
		return err
	}
	data, err := fs.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fs.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fs.path)
}
