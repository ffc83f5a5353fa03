// cmd/obtree-repl/main.go
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/lattice-tree/obtree/internal/config"
	"github.com/lattice-tree/obtree/internal/obtree"
)

// repl holds the single in-process Tree and its optional cursor that every
// command operates on. Unlike the teacher's cmd/cli, which dialed a TCP
// server and relayed lines to it, this REPL has no server to dial: the
// index it drives lives in this process, per SPEC_FULL.md §4.7.
type repl struct {
	tree   *obtree.Tree
	cursor *obtree.Cursor
}

func main() {
	cfg, err := config.ParseFlags("obtree-repl", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "obtree-repl:", err)
		os.Exit(1)
	}

	tree, err := obtree.New(cfg.Order)
	if err != nil {
		fmt.Fprintln(os.Stderr, "obtree-repl:", err)
		os.Exit(1)
	}
	tree.SetCollectStats(cfg.CollectStats)

	r := &repl{tree: tree}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".obtree_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("obtree interactive shell (order=%d). Type 'help' for commands.\n", cfg.Order)

	for {
		input, err := line.Prompt("obtree> ")
		if err != nil {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == "exit" || input == "quit" {
			break
		}

		r.dispatch(input)
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func (r *repl) dispatch(input string) {
	fields := strings.Fields(input)
	cmd := fields[0]
	args := fields[1:]

	var err error
	switch cmd {
	case "help":
		printHelp()
	case "insert":
		err = r.cmdInsert(args)
	case "search":
		err = r.cmdSearch(args)
	case "contains":
		err = r.cmdContains(args)
	case "delete":
		err = r.cmdDelete(args)
	case "first":
		err = r.cmdFirst()
	case "last":
		err = r.cmdLast()
	case "next":
		err = r.cmdNext()
	case "prev":
		err = r.cmdPrev()
	case "seek":
		err = r.cmdSeek(args)
	case "get":
		err = r.cmdGet()
	case "stats":
		r.cmdStats()
	case "validate":
		r.cmdValidate()
	case "print":
		fmt.Print(r.tree.Print())
	case "height":
		fmt.Println(r.tree.Height())
	case "size":
		fmt.Println(r.tree.Size())
	default:
		fmt.Printf("unknown command %q; type 'help'\n", cmd)
	}

	if err != nil {
		reportErr(err)
	}
}

func reportErr(err error) {
	var oerr *obtree.Error
	if errors.As(err, &oerr) {
		fmt.Printf("error: %s (%s)\n", oerr.Status, oerr.Op)
		return
	}
	fmt.Println("error:", err)
}

func parseKey(s string) (obtree.Key, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return obtree.Key(n), nil
}

func (r *repl) cmdInsert(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: insert <key> <value>")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}
	if err := r.tree.Insert(key, args[1]); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

func (r *repl) cmdSearch(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: search <key>")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}
	value, found := r.tree.Search(key)
	if !found {
		fmt.Println("not found")
		return nil
	}
	fmt.Printf("found: %v\n", value)
	return nil
}

func (r *repl) cmdContains(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: contains <key>")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}
	fmt.Println(r.tree.Contains(key))
	return nil
}

func (r *repl) cmdDelete(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete <key>")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}
	if err := r.tree.Delete(key); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

func (r *repl) ensureCursor() error {
	if r.cursor != nil {
		return nil
	}
	c, err := obtree.NewCursor(r.tree)
	if err != nil {
		return err
	}
	r.cursor = c
	return nil
}

func (r *repl) cmdFirst() error {
	if err := r.ensureCursor(); err != nil {
		return err
	}
	return r.cursor.First()
}

func (r *repl) cmdLast() error {
	if err := r.ensureCursor(); err != nil {
		return err
	}
	return r.cursor.Last()
}

func (r *repl) cmdNext() error {
	if r.cursor == nil {
		return errors.New("no cursor positioned; use first/last/seek")
	}
	return r.cursor.Next()
}

func (r *repl) cmdPrev() error {
	if r.cursor == nil {
		return errors.New("no cursor positioned; use first/last/seek")
	}
	return r.cursor.Prev()
}

func (r *repl) cmdSeek(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: seek <key>")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}
	if err := r.ensureCursor(); err != nil {
		return err
	}
	return r.cursor.Seek(key)
}

func (r *repl) cmdGet() error {
	if r.cursor == nil || !r.cursor.Valid() {
		return errors.New("cursor not positioned")
	}
	key, value, err := r.cursor.Get()
	if err != nil {
		return err
	}
	fmt.Printf("%d = %v\n", key, value)
	return nil
}

func (r *repl) cmdStats() {
	st := r.tree.StatsGet()
	fmt.Printf("nodes=%d keys=%d height=%d comparisons=%d nodeVisits=%d splits=%d searches=%d inserts=%d deletes=%d fillFactor=%.2f\n",
		st.NodeCount, st.KeyCount, st.Height, st.Comparisons, st.NodeVisits,
		st.Splits, st.SearchOps, st.InsertOps, st.DeleteOps, st.AvgFillFactor)
}

func (r *repl) cmdValidate() {
	if r.tree.Validate() {
		fmt.Println("valid")
	} else {
		fmt.Println("INVALID")
	}
}

func printHelp() {
	fmt.Print(`commands:
  insert <key> <value>   upsert a key/value pair
  search <key>            look up a key, printing its value if found
  contains <key>           report whether a key is present
  delete <key>             remove a key (degenerate: decrements size only)
  first / last             position the cursor at the smallest/largest key
  next / prev              step the cursor forward/backward
  seek <key>               position the cursor at the first key >= key
  get                      read the key/value at the cursor's position
  stats                    print the counter snapshot
  validate                 check structural invariants
  print                    dump the tree structure
  height / size            print height / key count
  exit                     leave the shell
`)
}
