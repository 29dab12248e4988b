// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Radixtrie demonstrates search suggestions served from a compressed radix
// trie: every positional argument is "typed" one byte at a time and the
// matching keys are printed after each keystroke.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/safecast"
	"fortio.org/sets"
	"fortio.org/struct2env"
	"github.com/absolutelightning/go-radix-trie/suggest"
)

func main() {
	os.Exit(Main())
}

type Config struct {
	WordsFile  string
	CacheSize  int
	MaxResults int
}

var config = Config{CacheSize: suggest.DefaultCacheSize}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("RADIXTRIE_", res, true)
	fmt.Fprintln(w, "# Radixtrie environment variables:")
	fmt.Fprint(w, str)
}

// searchTerms is the corpus used when no words file is given.
var searchTerms = []struct {
	key   string
	value uint16
}{
	{"mobile", 10},
	{"mandala", 67},
	{"mousy brown hair dye", 23},
	{"moneypot", 45},
	{"mexican sombrero", 27},
	{"muscle cars", 11},
	{"mouthguard", 8},
	{"monitor", 7},
	{"mousepad", 2361},
	{"muave eraser", 98},
}

func Main() int {
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	errs := struct2env.SetFromEnv("RADIXTRIE_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	wordsFile := flag.String("words", config.WordsFile, "`file` with one key per line, the built-in search terms are used when empty")
	cacheSize := flag.Int("cache", config.CacheSize, "number of prefixes whose suggestions are cached, 0 disables the cache")
	maxResults := flag.Int("max", config.MaxResults, "maximum number of suggestions printed per prefix, 0 for no limit")
	showLabels := flag.Bool("labels", false, "print the sorted set of edge labels")
	longest := flag.String("longest", "", "print the longest stored key that is a prefix of `query`")
	dump := flag.Bool("dump", false, "print the tree structure")
	cli.ArgsHelp = "words to type one byte at a time..."
	cli.MinArgs = 0
	cli.MaxArgs = -1
	cli.Main()

	idx, err := suggest.New[uint64](suggest.Config{CacheSize: *cacheSize, MaxResults: *maxResults})
	if err != nil {
		return log.FErrf("Error creating index: %v", err)
	}
	if *wordsFile != "" {
		err = loadWords(*wordsFile, idx)
		if err != nil {
			return log.FErrf("Error loading %s: %v", *wordsFile, err)
		}
	} else {
		for _, term := range searchTerms {
			idx.Insert(term.key, uint64(term.value))
		}
	}
	log.Infof("Loaded %d keys", idx.Len())

	if *showLabels {
		labels := sets.FromSlice(idx.Labels())
		for _, l := range sets.Sort(labels) {
			fmt.Println(strconv.Quote(l))
		}
	}
	if *dump {
		idx.Dump(os.Stdout)
	}
	if *longest != "" {
		k, v, ok := idx.LongestPrefix(*longest)
		if ok {
			fmt.Printf("longest prefix of %q: %q (%d)\n", *longest, k, v)
		} else {
			fmt.Printf("longest prefix of %q: none\n", *longest)
		}
	}
	for _, word := range flag.Args() {
		typeWord(idx, word)
	}
	return 0
}

// typeWord prints the suggestions seen after each typed byte of word.
func typeWord(idx *suggest.Index[uint64], word string) {
	for i := 1; i <= len(word); i++ {
		typed := word[:i]
		keys, ok := idx.Suggest(typed)
		if !ok {
			fmt.Printf("%q -> none\n", typed)
			continue
		}
		fmt.Printf("%q -> %q\n", typed, keys)
	}
}

func loadWords(name string, idx *suggest.Index[uint64]) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if line == "" {
			continue
		}
		value := safecast.MustConvert[uint64](lineNumber)
		idx.Insert(line, value)
	}
	return scanner.Err()
}
