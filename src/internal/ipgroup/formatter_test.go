package ipgroup

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
)

func TestFormatIDsAreContiguous(t *testing.T) {
	f := &Formatter{Naming: config.NamingGlobalSequential, BaseLabel: "国内IPv4", IncludePrefixInPool: true}
	chunks := [][]string{{"1.0.1.0/24"}, {"1.0.2.0/23"}, {"1.0.8.0/21"}}

	records := f.Format(chunks, 60, "", 0)

	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, record := range records {
		if record.ID != 60+i {
			t.Errorf("records[%d].ID = %d, want %d", i, record.ID, 60+i)
		}
	}
}

func TestFormatEmptyChunks(t *testing.T) {
	f := &Formatter{Naming: config.NamingPlain, ScopeSuffix: "IP"}
	if records := f.Format(nil, 60, "北京", 0); len(records) != 0 {
		t.Errorf("expected no records, got %v", records)
	}
}

func TestGroupName(t *testing.T) {
	tests := []struct {
		name          string
		naming        config.GroupNaming
		index, total  int
		globalOrdinal int
		want          string
	}{
		{"global first", config.NamingGlobalSequential, 0, 3, 0, "国内IPv4-1"},
		{"global continues", config.NamingGlobalSequential, 1, 2, 5, "国内IPv4-7"},
		{"global single", config.NamingGlobalSequential, 0, 1, 0, "国内IPv4-1"},
		{"plain single", config.NamingPlain, 0, 1, 9, "广东IP"},
		{"plain multi", config.NamingPlain, 1, 2, 9, "广东IP2"},
		{"dash single", config.NamingDashSuffix, 0, 1, 0, "广东IP"},
		{"dash multi", config.NamingDashSuffix, 0, 2, 0, "广东IP-1"},
		{"paren multi", config.NamingParenSuffix, 2, 3, 0, "广东IP(3)"},
		{"paren single", config.NamingParenSuffix, 0, 1, 0, "广东IP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Formatter{Naming: tt.naming, BaseLabel: "国内IPv4", ScopeSuffix: "IP"}
			if got := f.GroupName("广东", tt.index, tt.total, tt.globalOrdinal); got != tt.want {
				t.Errorf("GroupName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPool(t *testing.T) {
	chunks := [][]string{{"2001:250::/35", "2001:da8::/32"}}

	withPrefix := (&Formatter{IncludePrefixInPool: true}).Format(chunks, 70, "", 0)
	if diff := cmp.Diff([]string{"2001:250::/35", "2001:da8::/32"}, withPrefix[0].AddressPool); diff != "" {
		t.Errorf("pool mismatch (-want +got):\n%s", diff)
	}

	stripped := (&Formatter{IncludePrefixInPool: false}).Format(chunks, 70, "", 0)
	if diff := cmp.Diff([]string{"2001:250::", "2001:da8::"}, stripped[0].AddressPool); diff != "" {
		t.Errorf("pool mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatComment(t *testing.T) {
	chunks := [][]string{{"1.0.1.0/24", "1.0.2.0/23"}}

	tests := []struct {
		name      string
		mode      config.CommentMode
		separator string
		want      string
	}{
		{"none", config.CommentNone, ", ", ""},
		{"list with space", config.CommentCIDRList, ", ", "1.0.1.0/24, 1.0.2.0/23"},
		{"list url-encoded", config.CommentCIDRList, ",%20", "1.0.1.0/24,%201.0.2.0/23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Formatter{CommentMode: tt.mode, CommentSeparator: tt.separator}
			records := f.Format(chunks, 1, "", 0)
			if records[0].Comment != tt.want {
				t.Errorf("Comment = %q, want %q", records[0].Comment, tt.want)
			}
		})
	}
}

func TestNewFormatter(t *testing.T) {
	p := &config.PipelineConfig{
		GroupNaming:         config.NamingDashSuffix,
		BaseLabel:           "国内",
		ScopeSuffix:         "IP",
		IncludePrefixInPool: true,
		CommentMode:         config.CommentCIDRList,
		CommentSeparator:    ",%20",
	}

	want := &Formatter{
		Naming:              config.NamingDashSuffix,
		BaseLabel:           "国内",
		ScopeSuffix:         "IP",
		IncludePrefixInPool: true,
		CommentMode:         config.CommentCIDRList,
		CommentSeparator:    ",%20",
	}
	if diff := cmp.Diff(want, NewFormatter(p)); diff != "" {
		t.Errorf("formatter mismatch (-want +got):\n%s", diff)
	}
}
