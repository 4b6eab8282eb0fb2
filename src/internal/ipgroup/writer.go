package ipgroup

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/maksimkurb/ikuai-ipgroups/src/internal/errors"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/hashing"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/log"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/utils"
)

const checksumSuffix = ".md5"

// removeOldFile is replaced in tests.
var removeOldFile = utils.RemoveIfExists

type WriteOptions struct {
	// TypeField emits "type=0" in every line.
	TypeField bool
	// WriteChecksum writes <path>.md5 next to the file.
	WriteChecksum bool
}

type WriteResult struct {
	Path     string
	Records  int
	Bytes    int64
	Checksum string
	// Changed is false only when the previous file is known to have the same content.
	Changed bool
}

// Render returns the file content for records.
func Render(records []AddressGroupRecord, typeField bool) string {
	lines := make([]string, len(records))
	for i, record := range records {
		lines[i] = record.Line(typeField)
	}
	return strings.Join(lines, "\n")
}

// WriteFile replaces the file at path with the rendered records.
// Failures are returned as IO errors.
func WriteFile(records []AddressGroupRecord, path string, opts WriteOptions) (*WriteResult, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, apperrors.NewIOError("failed to create output directory", err)
	}

	previous := previousChecksum(path, opts.WriteChecksum)

	if removed, err := removeOldFile(path); err != nil {
		log.Warnf("Failed to remove old file %s, overwriting it: %v", path, err)
	} else if removed {
		log.Debugf("Removed old file %s", path)
	}

	checksum, size, err := writeContent(path, Render(records, opts.TypeField))
	if err != nil {
		return nil, apperrors.NewIOError("failed to write "+path, err)
	}

	if opts.WriteChecksum {
		if err := os.WriteFile(path+checksumSuffix, []byte(checksum), 0644); err != nil {
			return nil, apperrors.NewIOError("failed to write checksum file", err)
		}
	}

	return &WriteResult{
		Path:     path,
		Records:  len(records),
		Bytes:    size,
		Checksum: checksum,
		Changed:  previous == "" || previous != checksum,
	}, nil
}

func writeContent(path, content string) (string, int64, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", 0, err
	}

	buffered := bufio.NewWriter(file)
	proxy := hashing.NewMD5WriterProxy(buffered)
	if _, err := io.WriteString(proxy, content); err != nil {
		utils.CloseOrWarn(file)
		return "", 0, err
	}
	if err := buffered.Flush(); err != nil {
		utils.CloseOrWarn(file)
		return "", 0, err
	}
	if err := file.Close(); err != nil {
		return "", 0, err
	}

	return proxy.GetChecksum(), proxy.Size(), nil
}

// previousChecksum returns the checksum of the file currently at path: from
// the sidecar when present, otherwise by hashing the file. Empty when unknown.
func previousChecksum(path string, useSidecar bool) string {
	if useSidecar {
		if data, err := os.ReadFile(path + checksumSuffix); err == nil {
			return strings.TrimSpace(string(data))
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Debugf("Failed to read checksum file %s: %v", path+checksumSuffix, err)
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer utils.CloseOrWarn(file)

	proxy := hashing.NewMD5ReaderProxy(file)
	if _, err := io.Copy(io.Discard, proxy); err != nil {
		log.Debugf("Failed to read old file %s: %v", path, err)
		return ""
	}
	return proxy.GetChecksum()
}
