package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Makepad-fr/tada/internal/model"
)

const maxTextRunes = 80

// ListLines renders the full panel body: header, progress, items and a tip.
func ListLines(items model.List, group bool) []string {
	t := Current()
	d, p := items.Stats()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, "Todos"),
		C(t.Success, t.SymDone), d,
		C(t.Pending, t.SymPending), p,
		C(t.Accent, "Total"), len(items),
	)

	lines := []string{header, C(t.Muted, ProgressBar(d, d+p, 28)), ""}
	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, itemLines(items, nil)...)
	}
	lines = append(lines, "", C(t.Muted, "Tip: address items in scripts as @N or by the id shown"))
	return lines
}

// itemLines renders one line per item. pos maps each item to its position in
// the full list; nil means the items are the full list.
func itemLines(items model.List, pos []int) []string {
	t := Current()
	if len(items) == 0 {
		return []string{C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		n := i + 1
		if pos != nil {
			n = pos[i]
		}
		box, color := t.BoxUnchecked, t.Muted
		if it.Complete {
			box, color = t.BoxChecked, t.Success
		}
		out = append(out, fmt.Sprintf("%s %s %s %s",
			C(dim, fmt.Sprintf("@%-2d", n)), C(color, box), Truncate(Printable(it.Text), maxTextRunes), C(t.Muted, ShortID(it.ID))))
	}
	return out
}

func groupLines(items model.List) []string {
	t := Current()
	var pend, done model.List
	var pendPos, donePos []int
	for i, it := range items {
		if it.Complete {
			done, donePos = append(done, it), append(donePos, i+1)
		} else {
			pend, pendPos = append(pend, it), append(pendPos, i+1)
		}
	}
	section := func(title string, l model.List, pos []int) []string {
		out := []string{C(t.Accent, title)}
		if len(l) == 0 {
			return append(out, C(t.Muted, "(none)"))
		}
		return append(out, itemLines(l, pos)...)
	}
	lines := section("Pending", pend, pendPos)
	lines = append(lines, "")
	return append(lines, section("Done", done, donePos)...)
}

// Printable escapes control characters so text stays on one line.
func Printable(s string) string {
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			q := strconv.QuoteRune(r)
			b.WriteString(q[1 : len(q)-1])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Truncate shortens s to n runes, ending in "..." when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// ShortID abbreviates UUIDs for display; short ids pass through.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
