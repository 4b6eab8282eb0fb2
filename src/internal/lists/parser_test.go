package lists

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
)

const registrySample = `2|apnic|20261013|71970|19830613|20261012|+1000
# comment line
apnic|*|ipv4|*|49936|summary
apnic|CN|ipv4|1.0.1.0|256|20110414|allocated
apnic|CN|ipv4|1.0.8.0|768|20110412|allocated
apnic|JP|ipv4|1.0.16.0|4096|20110412|allocated
apnic|CN|ipv6|2001:250::|35|20000426|allocated
apnic|CN|ipv6|2001:DA8::|32|20020619|allocated
apnic|JP|ipv6|2001:200::|35|19990813|allocated
apnic|CN|asn|4134|1|20020801|allocated
apnic|CN|ipv6|2400:1
`

func TestParsePlain(t *testing.T) {
	text := "# header\n1.0.1.0/24\n\n  1.0.2.0/23  \nnot-a-cidr\r\n1.0.8.0/21\r\n2001:db8::/32\n"

	got := Parse(text, config.FormatPlain, config.Ipv4, "CN")

	want := []string{"1.0.1.0/24", "1.0.2.0/23", "1.0.8.0/21"}
	if diff := cmp.Diff(want, got.CIDRs); diff != "" {
		t.Errorf("CIDRs mismatch (-want +got):\n%s", diff)
	}
	if got.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", got.Skipped)
	}
}

func TestParsePlainKeepsDuplicatesAndOrder(t *testing.T) {
	text := "1.0.8.0/21\n1.0.1.0/24\n1.0.8.0/21\n"

	got := Parse(text, config.FormatPlain, config.Ipv4, "CN")

	want := []string{"1.0.8.0/21", "1.0.1.0/24", "1.0.8.0/21"}
	if diff := cmp.Diff(want, got.CIDRs); diff != "" {
		t.Errorf("CIDRs mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePlainIPv6Permissive(t *testing.T) {
	got := Parse("::/999\n2001:DB8::/32\n1.0.1.0/24\n", config.FormatPlain, config.Ipv6, "CN")

	want := []string{"::/999", "2001:db8::/32"}
	if diff := cmp.Diff(want, got.CIDRs); diff != "" {
		t.Errorf("CIDRs mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePlainKeepsLinesAfterOversizedLine(t *testing.T) {
	text := "1.0.0.0/24\n" + strings.Repeat("x", 2<<20) + "\n2.0.0.0/24\n"

	got := Parse(text, config.FormatPlain, config.Ipv4, "CN")

	want := []string{"1.0.0.0/24", "2.0.0.0/24"}
	if diff := cmp.Diff(want, got.CIDRs); diff != "" {
		t.Errorf("CIDRs mismatch (-want +got):\n%s", diff)
	}
	if got.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", got.Skipped)
	}
}

func TestParseEmptyText(t *testing.T) {
	got := Parse("", config.FormatPlain, config.Ipv4, "CN")
	if len(got.CIDRs) != 0 || got.Skipped != 0 {
		t.Errorf("Parse(\"\") = %+v, want empty result", got)
	}
}

func TestParseRegistryIPv6(t *testing.T) {
	got := Parse(registrySample, config.FormatRegistryStatistics, config.Ipv6, "CN")

	want := []string{"2001:250::/35", "2001:da8::/32"}
	if diff := cmp.Diff(want, got.CIDRs); diff != "" {
		t.Errorf("CIDRs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRegistryIPv4(t *testing.T) {
	got := Parse(registrySample, config.FormatRegistryStatistics, config.Ipv4, "CN")

	want := []string{"1.0.1.0/24", "1.0.8.0/23", "1.0.10.0/24"}
	if diff := cmp.Diff(want, got.CIDRs); diff != "" {
		t.Errorf("CIDRs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRegistryOtherCountry(t *testing.T) {
	got := Parse(registrySample, config.FormatRegistryStatistics, config.Ipv6, "JP")

	want := []string{"2001:200::/35"}
	if diff := cmp.Diff(want, got.CIDRs); diff != "" {
		t.Errorf("CIDRs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRegistryRejectsShortAndInvalidLines(t *testing.T) {
	text := "apnic|CN|ipv6|2001:250::|35|20000426\n" +
		"apnic|CN|ipv4|1.0.1.0|abc|20110414|allocated\n" +
		"apnic|CN|ipv4|300.0.1.0|256|20110414|allocated\n"

	for _, family := range []config.IPFamily{config.Ipv4, config.Ipv6} {
		got := Parse(text, config.FormatRegistryStatistics, family, "CN")
		if len(got.CIDRs) != 0 {
			t.Errorf("family %v: CIDRs = %v, want none", family, got.CIDRs)
		}
		if got.Skipped != 3 {
			t.Errorf("family %v: Skipped = %d, want 3", family, got.Skipped)
		}
	}
}
