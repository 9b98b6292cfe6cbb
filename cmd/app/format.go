package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vestalumina/vls-api/internal/api/dto"
)

type entryFilter struct {
	ActionType string
	ActorEmail string
}

func (f entryFilter) matches(entry *dto.ActionLogResponse) bool {
	if f.ActionType != "" && entry.ActionType != f.ActionType {
		return false
	}
	if f.ActorEmail != "" && !strings.EqualFold(entry.ActorEmail, f.ActorEmail) {
		return false
	}
	return true
}

// formatEntry renders one entry per line, details sorted by key.
func formatEntry(entry *dto.ActionLogResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %-28s %s", entry.Timestamp.UTC().Format(time.RFC3339), entry.ActionType, entry.ActorEmail)
	if entry.TargetID != "" {
		fmt.Fprintf(&b, "  target=%s", entry.TargetID)
	}
	if entry.BrandID != "" {
		fmt.Fprintf(&b, "  brand=%s", entry.BrandID)
	}

	keys := make([]string, 0, len(entry.Details))
	for k := range entry.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s=%v", k, entry.Details[k])
	}
	return b.String()
}
