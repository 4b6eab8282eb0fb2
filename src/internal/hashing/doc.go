// Package hashing provides MD5 checksum calculation utilities.
//
// The proxies compute a checksum incrementally while data flows through an
// io.Reader or io.Writer. Fetched source bodies are hashed for diagnostics
// and generated group files are hashed while written so a checksum sidecar
// can be stored next to them.
//
// # Example Usage
//
//	proxy := hashing.NewMD5WriterProxy(file)
//	_, err := io.WriteString(proxy, content)
//	sum := proxy.GetChecksum()
package hashing
