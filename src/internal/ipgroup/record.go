package ipgroup

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	typeFieldToken = "type=0"
	poolSeparator  = ","
)

// AddressGroupRecord is one iKuai address group.
type AddressGroupRecord struct {
	ID          int      `json:"id"`
	GroupName   string   `json:"group_name"`
	Comment     string   `json:"comment"`
	AddressPool []string `json:"addr_pool"`
}

// Line renders the record in the import file syntax.
func (r AddressGroupRecord) Line(typeField bool) string {
	var sb strings.Builder
	sb.WriteString("id=")
	sb.WriteString(strconv.Itoa(r.ID))
	sb.WriteString(" comment=")
	sb.WriteString(r.Comment)
	sb.WriteByte(' ')
	if typeField {
		sb.WriteString(typeFieldToken)
		sb.WriteByte(' ')
	}
	sb.WriteString("group_name=")
	sb.WriteString(r.GroupName)
	sb.WriteString(" addr_pool=")
	sb.WriteString(strings.Join(r.AddressPool, poolSeparator))
	return sb.String()
}

// ParseRecordLine reads back a line produced by Line. The second return value
// reports whether the line carried the type field.
func ParseRecordLine(line string) (AddressGroupRecord, bool, error) {
	var record AddressGroupRecord

	rest, ok := strings.CutPrefix(line, "id=")
	if !ok {
		return record, false, fmt.Errorf("record line must start with \"id=\": %q", line)
	}

	idText, rest, ok := strings.Cut(rest, " comment=")
	if !ok {
		return record, false, fmt.Errorf("record line has no comment field: %q", line)
	}
	id, err := strconv.Atoi(idText)
	if err != nil {
		return record, false, fmt.Errorf("invalid record id %q: %w", idText, err)
	}
	record.ID = id

	comment, rest, ok := strings.Cut(rest, " group_name=")
	if !ok {
		return record, false, fmt.Errorf("record line has no group_name field: %q", line)
	}

	// An empty comment leaves a leading space before the type token.
	comment, typeField := strings.CutSuffix(comment, " "+typeFieldToken)
	record.Comment = comment

	idx := strings.LastIndex(rest, " addr_pool=")
	if idx < 0 {
		return record, false, fmt.Errorf("record line has no addr_pool field: %q", line)
	}
	record.GroupName = rest[:idx]
	if pool := rest[idx+len(" addr_pool="):]; pool != "" {
		record.AddressPool = strings.Split(pool, poolSeparator)
	}

	return record, typeField, nil
}

// ParseRecords reads back a whole rendered file. A trailing blank line is ignored.
func ParseRecords(text string) ([]AddressGroupRecord, error) {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	records := make([]AddressGroupRecord, 0, len(lines))
	for i, line := range lines {
		record, _, err := ParseRecordLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}
