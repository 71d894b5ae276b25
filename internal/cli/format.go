package cli

import (
	"fmt"
	"time"
)

func formatRelativeTime(ts int64, now time.Time) string {
	diff := now.UnixMilli() - ts
	minutes := diff / 60000
	hours := diff / 3600000
	days := diff / 86400000

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%dd ago", days)
	}
}
