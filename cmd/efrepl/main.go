// efrepl is an interactive shell for building and querying Elias-Fano
// sequences.
//
// Usage:
//
//	efrepl [-u upper-bound] [-c config-file] [-o]
//
// Options:
//
//	-u, --upper-bound   Upper bound for built monotone sequences
//	-c, --config        Path to a hujson config file (default ~/.efrepl.json)
//	-o, --offline       Build arbitrary sequences via the offline (temp-file)
//	                    construction path instead of in-memory
//
// Commands (in REPL):
//
//	build <v1,v2,...>      Build a new monotone sequence (non-decreasing)
//	buildarb <v1,v2,...>   Build a new arbitrary (unordered) sequence
//	getarb <i>             Return the value at index i in the arbitrary sequence
//	get <i>                Return the value at index i
//	successor <v>          Smallest value >= v
//	strictsuccessor <v>    Smallest value > v
//	predecessor <v>        Largest value < v
//	weakpredecessor <v>    Largest value <= v
//	indexof <v>            Index of the first occurrence of v, or -1
//	contains <v>           Whether v is present
//	len                    Number of elements in the current sequence
//	save <file>            Save the current sequence as JSON
//	load <file>            Load a sequence saved by save and rebuild it
//	help                   Show this help
//	exit / quit / q        Exit
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/vigna/eliasfano/internal/efconfig"
	"github.com/vigna/eliasfano/pkg/eliasfano"
)

func main() {
	var (
		upperBound uint64
		configPath string
		offline    bool
	)

	flag.Uint64VarP(&upperBound, "upper-bound", "u", 0, "upper bound for built sequences (0 = use config default)")
	flag.StringVarP(&configPath, "config", "c", efconfig.Path(), "path to config file")
	flag.BoolVarP(&offline, "offline", "o", false, "build arbitrary sequences via the offline (temp-file) construction path")
	flag.Parse()

	cfg, err := efconfig.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "efrepl:", err)
		os.Exit(1)
	}

	if upperBound == 0 {
		upperBound = cfg.DefaultUpperBound
	}

	r := &repl{upperBound: upperBound, historySize: cfg.HistorySize, offline: offline}
	if err := r.run(); err != nil {
		fmt.Fprintln(os.Stderr, "efrepl:", err)
		os.Exit(1)
	}
}

// repl is the interactive command loop, holding at most one built sequence
// at a time.
type repl struct {
	seq         *eliasfano.EliasFanoIndexedMonotoneLongBigList
	values      []int64
	upperBound  uint64
	historySize int
	offline     bool
	liner       *liner.State

	arb       *eliasfano.EliasFanoLongBigList
	arbValues []int64
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return home + "/.efrepl_history"
}

func (r *repl) run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("efrepl - Elias-Fano sequence shell (upper_bound=%d)\n", r.upperBound)
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("efrepl> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println("\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()

			return nil
		case "help", "?":
			r.printHelp()
		case "build":
			r.cmdBuild(args)
		case "buildarb":
			r.cmdBuildArbitrary(args)
		case "getarb":
			r.cmdGetArbitrary(args)
		case "get":
			r.cmdGet(args)
		case "successor":
			r.cmdQuery(args, "successor")
		case "strictsuccessor":
			r.cmdQuery(args, "strictsuccessor")
		case "predecessor":
			r.cmdQuery(args, "predecessor")
		case "weakpredecessor":
			r.cmdQuery(args, "weakpredecessor")
		case "indexof":
			r.cmdIndexOf(args)
		case "contains":
			r.cmdContains(args)
		case "len":
			r.cmdLen()
		case "save":
			r.cmdSave(args)
		case "load":
			r.cmdLoad(args)
		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()

	return nil
}

func (r *repl) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}

	var buf strings.Builder
	if _, err := r.liner.WriteHistory(&buf); err != nil {
		return
	}

	history := buf.String()

	if r.historySize > 0 {
		// WriteHistory ends every entry with a newline, so SplitAfter
		// yields one trailing empty element after the last entry.
		lines := strings.SplitAfter(history, "\n")
		if n := len(lines) - 1; n > r.historySize {
			history = strings.Join(lines[n-r.historySize:], "")
		}
	}

	_ = atomic.WriteFile(path, strings.NewReader(history))
}

func (r *repl) completer(line string) []string {
	cmds := []string{
		"build", "buildarb", "getarb", "get", "successor", "strictsuccessor",
		"predecessor", "weakpredecessor", "indexof", "contains", "len", "save",
		"load", "help", "exit", "quit",
	}

	var out []string

	for _, c := range cmds {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}

	return out
}

func (r *repl) printHelp() {
	fmt.Println(`Commands:
  build <v1,v2,...>      Build a new monotone sequence (non-decreasing)
  buildarb <v1,v2,...>   Build a new arbitrary (unordered) sequence
  getarb <i>             Return the value at index i in the arbitrary sequence
  get <i>                Return the value at index i
  successor <v>          Smallest value >= v
  strictsuccessor <v>    Smallest value > v
  predecessor <v>        Largest value < v
  weakpredecessor <v>    Largest value <= v
  indexof <v>            Index of the first occurrence of v, or -1
  contains <v>           Whether v is present
  len                    Number of elements in the current sequence
  save <file>            Save the current sequence as JSON
  load <file>            Load a sequence saved by save and rebuild it
  help                   Show this help
  exit / quit / q        Exit`)
}

func (r *repl) requireSeq() bool {
	if r.seq == nil {
		fmt.Println("no sequence built yet; use 'build' or 'load' first")

		return false
	}

	return true
}

func (r *repl) cmdBuild(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: build <v1,v2,...>")

		return
	}

	vals, err := parseValues(args[0])
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	r.buildFrom(vals)
}

func (r *repl) buildFrom(vals []int64) {
	u := r.upperBound

	for _, v := range vals {
		if uint64(v) > u {
			u = uint64(v)
		}
	}

	seq, err := eliasfano.NewIndexedMonotoneLongBigList(u, len(vals), eliasfano.SliceIterator(vals))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	r.seq = seq
	r.values = vals

	fmt.Printf("built sequence of %d values (upper bound %d)\n", len(vals), u)
}

func (r *repl) cmdBuildArbitrary(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: buildarb <v1,v2,...>")

		return
	}

	vals, err := parseValues(args[0])
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var arb *eliasfano.EliasFanoLongBigList

	if r.offline {
		arb, err = eliasfano.NewLongBigListOffline(0, eliasfano.SliceIterator(vals))
	} else {
		arb, err = eliasfano.NewLongBigList(0, eliasfano.SliceIterator(vals))
	}

	if err != nil {
		fmt.Println("error:", err)

		return
	}

	r.arb = arb
	r.arbValues = vals

	mode := "in-memory"
	if r.offline {
		mode = "offline"
	}

	fmt.Printf("built arbitrary sequence of %d values (%s construction)\n", len(vals), mode)
}

func (r *repl) cmdGetArbitrary(args []string) {
	if r.arb == nil {
		fmt.Println("no arbitrary sequence built yet; use 'buildarb' first")

		return
	}

	if len(args) != 1 {
		fmt.Println("usage: getarb <i>")

		return
	}

	i, err := strconv.Atoi(args[0])
	if err != nil || i < 0 || i >= r.arb.Len() {
		fmt.Println("error: index out of range")

		return
	}

	fmt.Println(r.arb.Get(i))
}

func (r *repl) cmdGet(args []string) {
	if !r.requireSeq() || len(args) != 1 {
		fmt.Println("usage: get <i>")

		return
	}

	i, err := strconv.Atoi(args[0])
	if err != nil || i < 0 || i >= r.seq.Len() {
		fmt.Println("error: index out of range")

		return
	}

	fmt.Println(r.seq.Get(i))
}

func (r *repl) cmdQuery(args []string, kind string) {
	if !r.requireSeq() || len(args) != 1 {
		fmt.Printf("usage: %s <v>\n", kind)

		return
	}

	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var res eliasfano.QueryResult

	switch kind {
	case "successor":
		res = r.seq.Successor(v)
	case "strictsuccessor":
		res = r.seq.StrictSuccessor(v)
	case "predecessor":
		res = r.seq.Predecessor(v)
	case "weakpredecessor":
		res = r.seq.WeakPredecessor(v)
	}

	if res.Index < 0 {
		fmt.Println("not found")

		return
	}

	fmt.Printf("value=%d index=%d\n", res.Value, res.Index)
}

func (r *repl) cmdIndexOf(args []string) {
	if !r.requireSeq() || len(args) != 1 {
		fmt.Println("usage: indexof <v>")

		return
	}

	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(r.seq.IndexOf(v))
}

func (r *repl) cmdContains(args []string) {
	if !r.requireSeq() || len(args) != 1 {
		fmt.Println("usage: contains <v>")

		return
	}

	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(r.seq.Contains(v))
}

func (r *repl) cmdLen() {
	if !r.requireSeq() {
		return
	}

	fmt.Println(r.seq.Len())
}

func (r *repl) cmdSave(args []string) {
	if !r.requireSeq() || len(args) != 1 {
		fmt.Println("usage: save <file>")

		return
	}

	data, err := json.Marshal(r.values)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if err := atomic.WriteFile(args[0], strings.NewReader(string(data))); err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("saved %d values to %s\n", len(r.values), args[0])
}

func (r *repl) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: load <file>")

		return
	}

	data, err := os.ReadFile(args[0]) //nolint:gosec // user-provided path is the point of this command
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var vals []int64
	if err := json.Unmarshal(data, &vals); err != nil {
		fmt.Println("error:", err)

		return
	}

	r.buildFrom(vals)
}

func parseValues(csv string) ([]int64, error) {
	parts := strings.Split(csv, ",")
	vals := make([]int64, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", p, err)
		}

		vals = append(vals, v)
	}

	return vals, nil
}
