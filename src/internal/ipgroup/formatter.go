package ipgroup

import (
	"fmt"
	"strings"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
)

// Formatter builds records from chunks according to a pipeline's naming and
// formatting options.
type Formatter struct {
	Naming              config.GroupNaming
	BaseLabel           string
	ScopeSuffix         string
	IncludePrefixInPool bool
	CommentMode         config.CommentMode
	CommentSeparator    string
}

// NewFormatter creates a formatter for the given pipeline.
func NewFormatter(p *config.PipelineConfig) *Formatter {
	return &Formatter{
		Naming:              p.GroupNaming,
		BaseLabel:           p.BaseLabel,
		ScopeSuffix:         p.ScopeSuffix,
		IncludePrefixInPool: p.IncludePrefixInPool,
		CommentMode:         p.CommentMode,
		CommentSeparator:    p.CommentSeparator,
	}
}

// Format returns one record per chunk with IDs startID, startID+1, ...
// globalOrdinal is the number of groups already emitted in this run and is
// only used by global-sequential naming.
func (f *Formatter) Format(chunks [][]string, startID int, scopeLabel string, globalOrdinal int) []AddressGroupRecord {
	records := make([]AddressGroupRecord, 0, len(chunks))
	for i, chunk := range chunks {
		records = append(records, AddressGroupRecord{
			ID:          startID + i,
			GroupName:   f.GroupName(scopeLabel, i, len(chunks), globalOrdinal),
			Comment:     f.comment(chunk),
			AddressPool: f.pool(chunk),
		})
	}
	return records
}

// GroupName returns the name of the index-th (0-based) of total groups of a scope.
func (f *Formatter) GroupName(scopeLabel string, index, total, globalOrdinal int) string {
	if f.Naming == config.NamingGlobalSequential {
		return fmt.Sprintf("%s-%d", f.BaseLabel, globalOrdinal+index+1)
	}

	label := scopeLabel + f.ScopeSuffix
	if total == 1 {
		return label
	}

	n := index + 1
	switch f.Naming {
	case config.NamingDashSuffix:
		return fmt.Sprintf("%s-%d", label, n)
	case config.NamingParenSuffix:
		return fmt.Sprintf("%s(%d)", label, n)
	default:
		return fmt.Sprintf("%s%d", label, n)
	}
}

func (f *Formatter) comment(chunk []string) string {
	if f.CommentMode != config.CommentCIDRList {
		return ""
	}
	return strings.Join(chunk, f.CommentSeparator)
}

func (f *Formatter) pool(chunk []string) []string {
	pool := make([]string, len(chunk))
	for i, cidr := range chunk {
		if f.IncludePrefixInPool {
			pool[i] = cidr
		} else {
			pool[i], _, _ = strings.Cut(cidr, "/")
		}
	}
	return pool
}
