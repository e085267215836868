package main

import "bufio"
import "flag"
import "fmt"
import "os"

import "github.com/neurlang/accent/alphabet"
import "github.com/neurlang/accent/codec"
import "github.com/neurlang/accent/config"
import "github.com/neurlang/accent/lexicon"
import "github.com/neurlang/accent/predictor"
import "github.com/neurlang/accent/restorer"

func main() {
	configfile := flag.String("config", "", "yaml configuration file")
	corpus := flag.String("lexicon", "", "accented corpus .tsv or .tsv.zst file")
	text := flag.String("text", "", "text to restore, stdin lines if empty")
	ngram := flag.Int("ngram", 0, "words per window, overrides the configuration")
	threads := flag.Int("threads", 0, "windows predicted concurrently, overrides the configuration")
	logfile := flag.String("log", "", "request log file")
	fallback := flag.Bool("fallback", false, "print the input unchanged when restoration fails")
	flag.Parse()

	if corpus == nil || *corpus == "" {
		println("lexicon is mandatory")
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
	if *ngram > 0 {
		cfg.NGram = *ngram
	}
	if *threads > 0 {
		cfg.Threads = *threads
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
	read, skipped := lex.Lines()
	println("lexicon:", lex.Len(), "words from", read, "lines,", skipped, "skipped")

	r, err := restorer.New(cfg, predictor.New(c, lex, cfg.Invert), alphabet.Vietnamese)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
	if *logfile != "" {
		if err := r.SetLogger(*logfile); err != nil {
			println(err.Error())
			os.Exit(1)
		}
	}

	restore := func(line string) {
		if *fallback {
			fmt.Println(r.AddAccentOrFallback(line))
			return
		}
		out, err := r.AddAccent(line)
		if err != nil {
			println(err.Error())
			return
		}
		fmt.Println(out)
	}

	if *text != "" {
		restore(*text)
		return
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		restore(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		println("Error reading stdin:", err.Error())
		os.Exit(1)
	}
}
