package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/model"
)

// step is one parsed script line. Either act is set (JSON envelope) or verb
// with text or ref.
type step struct {
	line int
	verb string
	text string
	ref  string
	act  action.Action
}

// ScriptError points at the script line that could not be used.
type ScriptError struct {
	Line int
	Msg  string
}

func (e *ScriptError) Error() string { return fmt.Sprintf("line %d: %s", e.Line, e.Msg) }

// parseScript reads one action per line:
//
//	add <text...>
//	toggle <ref>   (alias: done)
//	delete <ref>   (alias: rm)
//	{"type": "...", "payload": {...}}
//
// A ref is an item id or @N for the N-th item (1-based) at that point.
// Blank lines and lines starting with # are skipped.
func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		ln := strings.TrimSpace(sc.Text())
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		if strings.HasPrefix(ln, "{") {
			a, err := action.Decode([]byte(ln))
			if err != nil {
				return nil, &ScriptError{Line: n, Msg: err.Error()}
			}
			steps = append(steps, step{line: n, act: a})
			continue
		}

		verb, rest, _ := strings.Cut(ln, " ")
		rest = strings.TrimSpace(rest)
		switch verb {
		case "add":
			if rest == "" {
				return nil, &ScriptError{Line: n, Msg: "usage: add <text...>"}
			}
			steps = append(steps, step{line: n, verb: "add", text: rest})
		case "toggle", "done":
			if rest == "" || strings.ContainsAny(rest, " \t") {
				return nil, &ScriptError{Line: n, Msg: "usage: " + verb + " <id|@N>"}
			}
			steps = append(steps, step{line: n, verb: "toggle", ref: rest})
		case "delete", "rm":
			if rest == "" || strings.ContainsAny(rest, " \t") {
				return nil, &ScriptError{Line: n, Msg: "usage: " + verb + " <id|@N>"}
			}
			steps = append(steps, step{line: n, verb: "delete", ref: rest})
		default:
			return nil, &ScriptError{Line: n, Msg: "unknown verb: " + verb}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

// resolve turns a ref into an item id against the current list. A plain ref
// may be a full id or a unique id prefix, as shown in list output. Refs that
// match nothing are returned as-is; the reducer treats those as no-ops.
func resolve(items model.List, ref string) (string, error) {
	if !strings.HasPrefix(ref, "@") {
		return resolveID(items, ref)
	}
	n, err := strconv.Atoi(ref[1:])
	if err != nil {
		return "", fmt.Errorf("not a position: %s", ref)
	}
	it, ok := items.At(n)
	if !ok {
		return "", fmt.Errorf("position out of range: have %d, got %d", len(items), n)
	}
	return it.ID, nil
}

func resolveID(items model.List, ref string) (string, error) {
	if items.Has(ref) {
		return ref, nil
	}
	match := ""
	for _, it := range items {
		if !strings.HasPrefix(it.ID, ref) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("ambiguous id prefix: %s", ref)
		}
		match = it.ID
	}
	if match == "" {
		return ref, nil
	}
	return match, nil
}

// toAction builds the action for s against the current list.
func (s step) toAction(items model.List) (action.Action, error) {
	if s.act != nil {
		return s.act, nil
	}
	switch s.verb {
	case "add":
		return action.AddItem{Text: s.text}, nil
	case "toggle":
		id, err := resolve(items, s.ref)
		if err != nil {
			return nil, err
		}
		return action.ToggleItem{ID: id}, nil
	default:
		id, err := resolve(items, s.ref)
		if err != nil {
			return nil, err
		}
		return action.DeleteItem{ID: id}, nil
	}
}
