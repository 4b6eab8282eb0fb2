// Package log provides simple leveled logging for ikuai-ipgroups.
//
// Messages are printf-formatted and prefixed with a coloured level tag:
// [DBG], [INF], [WRN] or [ERR]. Debug messages are only printed in verbose
// mode. Errors go to stderr, everything else to stdout unless
// SetForceStdErr is enabled.
//
// # Example Usage
//
//	log.Infof("Fetching source %s", url)
//	log.Warnf("Source %s failed: %v", url, err)
//
//	log.SetVerbose(true)
//	log.Debugf("Body checksum: %s", sum)
//
// Tests can capture output:
//
//	var out, errOut bytes.Buffer
//	log.SetOutput(&out, &errOut)
//	defer log.ResetOutput()
package log
