package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
)

// ChecksumReaderProxy calculates the MD5 checksum of data as it's read.
type ChecksumReaderProxy struct {
	reader   io.Reader
	checksum hash.Hash
	size     int64
}

// NewMD5ReaderProxy creates a new instance of ChecksumReaderProxy.
func NewMD5ReaderProxy(reader io.Reader) *ChecksumReaderProxy {
	return &ChecksumReaderProxy{
		reader:   reader,
		checksum: md5.New(),
	}
}

// Read reads data from the underlying reader and feeds it to the checksum.
func (p *ChecksumReaderProxy) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		// hash.Hash.Write never returns an error
		_, _ = p.checksum.Write(buf[:n])
		p.size += int64(n)
	}
	return n, err
}

// GetChecksum returns the MD5 checksum of everything read so far as a hex string.
func (p *ChecksumReaderProxy) GetChecksum() string {
	return hex.EncodeToString(p.checksum.Sum(nil))
}

// Size returns the number of bytes read so far.
func (p *ChecksumReaderProxy) Size() int64 {
	return p.size
}

// ChecksumWriterProxy calculates the MD5 checksum of data as it's written.
type ChecksumWriterProxy struct {
	writer   io.Writer
	checksum hash.Hash
	size     int64
}

// NewMD5WriterProxy creates a new instance of ChecksumWriterProxy.
func NewMD5WriterProxy(writer io.Writer) *ChecksumWriterProxy {
	return &ChecksumWriterProxy{
		writer:   writer,
		checksum: md5.New(),
	}
}

// Write writes data to the underlying writer. Only bytes accepted by the
// underlying writer are added to the checksum.
func (p *ChecksumWriterProxy) Write(buf []byte) (int, error) {
	n, err := p.writer.Write(buf)
	if n > 0 {
		_, _ = p.checksum.Write(buf[:n])
		p.size += int64(n)
	}
	return n, err
}

// GetChecksum returns the MD5 checksum of everything written so far as a hex string.
func (p *ChecksumWriterProxy) GetChecksum() string {
	return hex.EncodeToString(p.checksum.Sum(nil))
}

// Size returns the number of bytes written so far.
func (p *ChecksumWriterProxy) Size() int64 {
	return p.size
}

// ChecksumOf returns the MD5 checksum of s as a hex string.
func ChecksumOf(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
