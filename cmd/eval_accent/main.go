package main

import "bufio"
import "flag"
import "os"
import "strings"
import "sync/atomic"

import "github.com/neurlang/accent/alphabet"
import "github.com/neurlang/accent/codec"
import "github.com/neurlang/accent/config"
import "github.com/neurlang/accent/lexicon"
import "github.com/neurlang/accent/parallel"
import "github.com/neurlang/accent/predictor"
import "github.com/neurlang/accent/restorer"

func readLines(filename string) (lines []string) {
	file, err := os.Open(filename)
	if err != nil {
		println("Error opening file:", err.Error())
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// a two column line carries the accented text in its second column
		if columns := strings.Split(line, "\t"); len(columns) == 2 {
			line = columns[1]
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		println("Error reading file:", err.Error())
	}
	return
}

func main() {
	configfile := flag.String("config", "", "yaml configuration file")
	corpus := flag.String("lexicon", "", "accented corpus .tsv or .tsv.zst file")
	evaltsv := flag.String("evaltsv", "", "accented reference file")
	flag.Parse()

	if corpus == nil || *corpus == "" || evaltsv == nil || *evaltsv == "" {
		println("lexicon and evaltsv are mandatory")
		os.Exit(2)
	}

	var cfg = config.Default()
	if *configfile != "" {
		var err error
		cfg, err = config.Load(*configfile)
		if err != nil {
			println(err.Error())
			os.Exit(1)
		}
	}
	a, err := cfg.NewAlphabet()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
	c, err := codec.New(a, cfg.MaxLen)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
	lex, err := lexicon.Load(*corpus, c, alphabet.Vietnamese, cfg.Invert)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
	// lines run in parallel, the windows of a line sequentially
	var threads = cfg.Threads
	cfg.Threads = 1
	r, err := restorer.New(cfg, predictor.New(c, lex, cfg.Invert), alphabet.Vietnamese)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	lines := readLines(*evaltsv)
	if len(lines) == 0 {
		println("no reference lines")
		return
	}

	var correct, total, failed atomic.Uint64
	parallel.ForEach(len(lines), threads, func(j int) {
		want := strings.Fields(lines[j])
		total.Add(uint64(len(want)))
		out, err := r.AddAccent(alphabet.Vietnamese.RemoveAccent(lines[j]))
		if err != nil {
			failed.Add(1)
			return
		}
		got := strings.Fields(out)
		for i := range want {
			if i < len(got) && got[i] == want[i] {
				correct.Add(1)
			}
		}
	})
	if total.Load() == 0 {
		println("no reference words")
		return
	}
	success := correct.Load() * 100 / total.Load()
	println("[success rate]", success, "%", "of", total.Load(), "words with", failed.Load(), "failed lines")
}
